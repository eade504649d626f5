package drag

import "fmt"

// Policy selects how a dragged segment interacts with its neighbors.
type Policy string

const (
	// PolicyOverlap permits segments to overlap freely.
	PolicyOverlap Policy = "overlap"
	// PolicyNoOverlap keeps the dragged segment outside its neighbors,
	// pushing or clamping it at their boundaries.
	PolicyNoOverlap Policy = "no-overlap"
	// PolicyCompress shrinks a neighbor to make room for the dragged
	// segment, down to the minimum duration floor.
	PolicyCompress Policy = "compress"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyOverlap, PolicyNoOverlap, PolicyCompress:
		return Policy(s), nil
	default:
		return "", fmt.Errorf(
			"unknown collision policy %q: use overlap, no-overlap, or compress",
			s,
		)
	}
}

// resolver is the per-policy collision behavior. Body drag and handle
// drag both go through the same resolver, one implementation per
// policy.
type resolver interface {
	// resolveStart adjusts candidate body-drag boundaries against the
	// previous neighbor.
	resolveStart(sess Session, b Boundaries) (Boundaries, *NeighborUpdate)
	// resolveEnd adjusts candidate body-drag boundaries against the
	// next neighbor.
	resolveEnd(sess Session, b Boundaries) (Boundaries, *NeighborUpdate)
	// startLowerLimit is the leftmost frame-relative pixel a start
	// handle may reach.
	startLowerLimit(sess Session, tr Transform) float64
	// endUpperLimit is the rightmost frame-relative pixel an end
	// handle may reach.
	endUpperLimit(sess Session, tr Transform) float64
	// trackNeighbor reports the neighbor boundary write for a handle
	// committed at time t, or nil when no neighbor gives way.
	trackNeighbor(sess Session, startMarker bool, t float64) *NeighborUpdate
}

func (p Policy) resolver() resolver {
	switch p {
	case PolicyNoOverlap:
		return noOverlapPolicy{}
	case PolicyCompress:
		return compressPolicy{}
	default:
		return overlapPolicy{}
	}
}

// overlapPolicy applies no inter-segment constraints.
type overlapPolicy struct{}

func (overlapPolicy) resolveStart(_ Session, b Boundaries) (Boundaries, *NeighborUpdate) {
	return b, nil
}

func (overlapPolicy) resolveEnd(_ Session, b Boundaries) (Boundaries, *NeighborUpdate) {
	return b, nil
}

func (overlapPolicy) startLowerLimit(_ Session, _ Transform) float64 {
	return 0
}

func (overlapPolicy) endUpperLimit(_ Session, tr Transform) float64 {
	return tr.Width()
}

func (overlapPolicy) trackNeighbor(_ Session, _ bool, _ float64) *NeighborUpdate {
	return nil
}

// noOverlapPolicy keeps the dragged segment clear of its neighbors
// without mutating them.
type noOverlapPolicy struct{}

func (noOverlapPolicy) resolveStart(sess Session, b Boundaries) (Boundaries, *NeighborUpdate) {
	if sess.Prev == nil || b.Start >= sess.Prev.EndTime() {
		return b, nil
	}
	shift := sess.Prev.EndTime() - b.Start
	b.Start += shift
	b.End += shift
	return b, nil
}

func (noOverlapPolicy) resolveEnd(sess Session, b Boundaries) (Boundaries, *NeighborUpdate) {
	if sess.Next == nil || b.End <= sess.Next.StartTime() {
		return b, nil
	}
	shift := b.End - sess.Next.StartTime()
	b.Start -= shift
	b.End -= shift
	return b, nil
}

func (noOverlapPolicy) startLowerLimit(sess Session, tr Transform) float64 {
	if sess.Prev == nil {
		return 0
	}
	limit := tr.TimeToPixels(sess.PrevBounds.End) - tr.FrameOffset()
	if limit < 0 {
		limit = 0
	}
	return limit
}

func (noOverlapPolicy) endUpperLimit(sess Session, tr Transform) float64 {
	if sess.Next == nil {
		return tr.Width()
	}
	limit := tr.TimeToPixels(sess.NextBounds.Start) - tr.FrameOffset()
	if limit > tr.Width() {
		limit = tr.Width()
	}
	return limit
}

func (noOverlapPolicy) trackNeighbor(_ Session, _ bool, _ float64) *NeighborUpdate {
	return nil
}

// compressPolicy lets the dragged segment take room from a neighbor,
// shrinking it down to the minimum duration floor.
type compressPolicy struct{}

func (compressPolicy) resolveStart(sess Session, b Boundaries) (Boundaries, *NeighborUpdate) {
	if sess.Prev == nil || b.Start >= sess.Prev.EndTime() {
		return b, nil
	}
	if b.Start-sess.PrevBounds.Start >= sess.prevFloor() {
		return b, &NeighborUpdate{
			Segment: sess.Prev,
			Edge:    EdgeEnd,
			Time:    b.Start,
		}
	}
	// the neighbor cannot shrink any further; fall back to the
	// no-overlap behavior against its current end
	shift := sess.Prev.EndTime() - b.Start
	b.Start += shift
	b.End += shift
	return b, nil
}

func (compressPolicy) resolveEnd(sess Session, b Boundaries) (Boundaries, *NeighborUpdate) {
	if sess.Next == nil || b.End <= sess.Next.StartTime() {
		return b, nil
	}
	if sess.NextBounds.End-b.End >= sess.nextFloor() {
		return b, &NeighborUpdate{
			Segment: sess.Next,
			Edge:    EdgeStart,
			Time:    b.End,
		}
	}
	shift := b.End - sess.Next.StartTime()
	b.Start -= shift
	b.End -= shift
	return b, nil
}

func (compressPolicy) startLowerLimit(sess Session, tr Transform) float64 {
	if sess.Prev == nil {
		return 0
	}
	floorTime := sess.PrevBounds.Start + sess.prevFloor()
	limit := tr.TimeToPixels(floorTime) - tr.FrameOffset()
	if limit < 0 {
		limit = 0
	}
	return limit
}

func (compressPolicy) endUpperLimit(sess Session, tr Transform) float64 {
	if sess.Next == nil {
		return tr.Width()
	}
	floorTime := sess.NextBounds.End - sess.nextFloor()
	limit := tr.TimeToPixels(floorTime) - tr.FrameOffset()
	if limit > tr.Width() {
		limit = tr.Width()
	}
	return limit
}

// trackNeighbor gives way continuously: as a handle crosses into the
// neighbor, the neighbor's facing boundary follows the committed time.
// A sample that jumps past the floor in one move has already been
// clamped to the floor position, so the neighbor lands exactly on it.
func (compressPolicy) trackNeighbor(sess Session, startMarker bool, t float64) *NeighborUpdate {
	if startMarker {
		if sess.Prev == nil || t >= sess.Prev.EndTime() {
			return nil
		}
		return &NeighborUpdate{Segment: sess.Prev, Edge: EdgeEnd, Time: t}
	}
	if sess.Next == nil || t <= sess.Next.StartTime() {
		return nil
	}
	return &NeighborUpdate{Segment: sess.Next, Edge: EdgeStart, Time: t}
}
