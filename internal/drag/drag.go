// Package drag converts pointer-drag input into updated segment time
// boundaries. Whole-segment drags and single-handle drags are computed
// as pure functions of an immutable drag session plus the current
// pointer position, so the constraint logic is testable without any
// rendering surface.
package drag

import "github.com/mgpai22/tarang/internal/segment"

// MinDuration is the smallest duration, in seconds, the compress
// policy will leave a neighboring segment.
const MinDuration = 0.25

// bidirectional mapping between pixel offsets and playback time,
// parameterized by the current scroll and zoom
type Transform interface {
	// PixelsToTime converts a pixel delta to a time delta in seconds.
	PixelsToTime(pixels float64) float64
	// TimeToPixels converts an absolute time to an absolute pixel
	// position from the waveform origin.
	TimeToPixels(time float64) float64
	// PixelOffsetToTime converts a frame-relative pixel offset to an
	// absolute time.
	PixelOffsetToTime(offset float64) float64
	// FrameOffset is the scroll position of the visible frame, in
	// pixels from the waveform origin.
	FrameOffset() float64
	// Width is the visible frame width in pixels.
	Width() float64
}

// lookup of a segment's neighbors in start-time order
type NeighborResolver interface {
	FindPreviousSegment(seg *segment.Segment) *segment.Segment
	FindNextSegment(seg *segment.Segment) *segment.Segment
}

// Boundaries is a start/end time pair in seconds.
type Boundaries struct {
	Start float64
	End   float64
}

func (b Boundaries) Duration() float64 {
	return b.End - b.Start
}

// Edge identifies which boundary of a segment a write targets.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// NeighborUpdate names a neighbor boundary write required to resolve a
// collision. The constraint functions return updates instead of
// writing through back-references, so the cross-segment coupling stays
// visible at the call site.
type NeighborUpdate struct {
	Segment *segment.Segment
	Edge    Edge
	Time    float64
}

// Apply commits the named boundary write.
func (u NeighborUpdate) Apply() {
	if u.Segment == nil {
		return
	}
	if u.Edge == EdgeStart {
		u.Segment.SetStartTime(u.Time)
	} else {
		u.Segment.SetEndTime(u.Time)
	}
}

func clamp(x, lower, upper float64) float64 {
	if x < lower {
		x = lower
	}
	if x > upper {
		x = upper
	}
	return x
}
