package segment

import (
	"fmt"
	"sort"
)

// Store holds the segment set for one waveform, ordered by start time.
type Store struct {
	byID  map[string]*Segment
	order []*Segment
}

func NewStore() *Store {
	return &Store{
		byID: make(map[string]*Segment),
	}
}

func (st *Store) Add(seg *Segment) error {
	if seg == nil {
		return fmt.Errorf("segment must not be nil")
	}
	if _, exists := st.byID[seg.id]; exists {
		return fmt.Errorf("duplicate segment id: %s", seg.id)
	}
	st.byID[seg.id] = seg
	st.order = append(st.order, seg)
	return nil
}

func (st *Store) Remove(id string) bool {
	seg, ok := st.byID[id]
	if !ok {
		return false
	}
	delete(st.byID, id)
	for i, s := range st.order {
		if s == seg {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	return true
}

func (st *Store) Get(id string) *Segment {
	return st.byID[id]
}

func (st *Store) Len() int {
	return len(st.order)
}

// All returns the segments sorted by start time. Segment times change
// during dragging, so the order is recomputed on every call.
func (st *Store) All() []*Segment {
	out := make([]*Segment, len(st.order))
	copy(out, st.order)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].startTime < out[j].startTime
	})
	return out
}

// FindPreviousSegment returns the segment immediately before seg in
// start-time order, or nil when seg is first or not in the store.
func (st *Store) FindPreviousSegment(seg *Segment) *Segment {
	ordered := st.All()
	for i, s := range ordered {
		if s == seg {
			if i == 0 {
				return nil
			}
			return ordered[i-1]
		}
	}
	return nil
}

// FindNextSegment returns the segment immediately after seg in
// start-time order, or nil when seg is last or not in the store.
func (st *Store) FindNextSegment(seg *Segment) *Segment {
	ordered := st.All()
	for i, s := range ordered {
		if s == seg {
			if i == len(ordered)-1 {
				return nil
			}
			return ordered[i+1]
		}
	}
	return nil
}

// SegmentAt returns the first segment whose interval contains t, or nil.
func (st *Store) SegmentAt(t float64) *Segment {
	for _, s := range st.All() {
		if s.Contains(t) {
			return s
		}
	}
	return nil
}
