package drag

import "github.com/mgpai22/tarang/internal/segment"

// Session is the state captured at pointer-down and held for the
// lifetime of one drag gesture: the anchor position, the dragged
// segment's boundary times, and the neighbor pair with their boundary
// times at drag start. It is treated as immutable; every move sample
// is computed from the same snapshot.
//
// Neighbors are omitted under the overlap policy, where ordering
// constraints do not apply. Neighbor identities are not refreshed
// mid-drag; externally reordering segments during a gesture is not
// supported.
type Session struct {
	Policy  Policy
	AnchorX float64 // frame-relative pixel X at pointer-down
	Anchor  Boundaries

	Prev       *segment.Segment
	Next       *segment.Segment
	PrevBounds Boundaries
	NextBounds Boundaries
}

// NewSession snapshots the drag state for seg at the given anchor
// pixel position.
func NewSession(
	policy Policy,
	seg *segment.Segment,
	prev, next *segment.Segment,
	anchorX float64,
) Session {
	if policy == PolicyOverlap {
		prev, next = nil, nil
	}

	sess := Session{
		Policy:  policy,
		AnchorX: anchorX,
		Anchor:  Boundaries{Start: seg.StartTime(), End: seg.EndTime()},
		Prev:    prev,
		Next:    next,
	}
	if prev != nil {
		sess.PrevBounds = Boundaries{Start: prev.StartTime(), End: prev.EndTime()}
	}
	if next != nil {
		sess.NextBounds = Boundaries{Start: next.StartTime(), End: next.EndTime()}
	}
	return sess
}

// prevFloor is the smallest duration the compress policy may leave the
// previous neighbor: the constant floor, or the neighbor's own
// duration at drag start when it was already shorter.
func (s Session) prevFloor() float64 {
	if d := s.PrevBounds.Duration(); d < MinDuration {
		return d
	}
	return MinDuration
}

func (s Session) nextFloor() float64 {
	if d := s.NextBounds.Duration(); d < MinDuration {
		return d
	}
	return MinDuration
}
