package drag

import (
	"math"

	"github.com/mgpai22/tarang/internal/event"
	"github.com/mgpai22/tarang/internal/segment"
)

// DefaultHandleWidth is the pixel footprint assumed for a boundary
// marker when the caller does not supply one.
const DefaultHandleWidth = 10

// Options wire a Machine to its collaborators.
type Options struct {
	Policy      Policy
	Resolver    NeighborResolver
	Transform   Transform
	Emitter     *event.Emitter // optional
	HandleWidth float64
}

type dragMode int

const (
	modeIdle dragMode = iota
	modeBody
	modeHandle
)

// Machine runs the drag lifecycle (idle, dragging, idle) for one
// segment shape. A non-editable segment never enters a session; a
// pointer-move while idle is ignored; ending an idle machine is a
// no-op, so an externally forced termination simply resets to idle.
//
// All methods must be called from the one goroutine that delivers
// pointer events.
type Machine struct {
	seg  *segment.Segment
	opts Options

	mode        dragMode
	sess        Session
	startMarker bool

	// last observed positions, for signal suppression
	lastX      float64
	lastStartX float64
	lastEndX   float64
}

func NewMachine(seg *segment.Segment, opts Options) *Machine {
	if opts.HandleWidth <= 0 {
		opts.HandleWidth = DefaultHandleWidth
	}
	return &Machine{seg: seg, opts: opts}
}

func (m *Machine) Segment() *segment.Segment { return m.seg }

func (m *Machine) Dragging() bool { return m.mode != modeIdle }

// StartBodyDrag opens a whole-segment drag session anchored at the
// pointer position. It reports whether a session was entered.
func (m *Machine) StartBodyDrag(p event.Pointer) bool {
	if m.mode != modeIdle || !m.seg.Editable() {
		return false
	}
	m.sess = m.newSession(p.X)
	m.mode = modeBody
	m.lastX = math.NaN() // first move sample always computes
	m.emit(event.SegmentDragStart, false, p)
	return true
}

// StartHandleDrag opens a drag session on the start or end boundary
// handle. It reports whether a session was entered.
func (m *Machine) StartHandleDrag(startMarker bool, p event.Pointer) bool {
	if m.mode != modeIdle || !m.seg.Editable() {
		return false
	}
	m.sess = m.newSession(p.X)
	m.mode = modeHandle
	m.startMarker = startMarker

	g := m.geometry()
	m.lastStartX = g.StartX
	m.lastEndX = g.EndX

	m.emit(event.SegmentDragStart, startMarker, p)
	return true
}

func (m *Machine) newSession(anchorX float64) Session {
	var prev, next *segment.Segment
	if m.opts.Policy != PolicyOverlap && m.opts.Resolver != nil {
		prev = m.opts.Resolver.FindPreviousSegment(m.seg)
		next = m.opts.Resolver.FindNextSegment(m.seg)
	}
	return NewSession(m.opts.Policy, m.seg, prev, next, anchorX)
}

// Move processes one pointer-move sample. Vertical motion is ignored;
// only the X coordinate participates in boundary computation.
func (m *Machine) Move(p event.Pointer) {
	switch m.mode {
	case modeBody:
		m.moveBody(p)
	case modeHandle:
		m.moveHandle(p)
	}
}

func (m *Machine) moveBody(p event.Pointer) {
	if p.X == m.lastX {
		return
	}
	m.lastX = p.X

	b, updates := BodyMove(m.sess, p.X, m.opts.Transform)
	for _, u := range updates {
		u.Apply()
	}
	m.commit(b)

	// body drag signals on every sample with actual motion; the clamp
	// absorbing the motion does not suppress it
	m.emit(event.SegmentDragged, false, p)
}

func (m *Machine) moveHandle(p event.Pointer) {
	res := HandleMove(m.sess, m.startMarker, p.X, m.geometry(), m.opts.Transform)
	if res.Neighbor != nil {
		res.Neighbor.Apply()
	}
	if m.startMarker {
		m.seg.SetStartTime(res.Time)
	} else {
		m.seg.SetEndTime(res.Time)
	}

	// signal only when either marker visibly moved: shrinking the clip
	// from one end shifts the other marker's rendering too
	g := m.geometry()
	if g.StartX != m.lastStartX || g.EndX != m.lastEndX {
		m.lastStartX = g.StartX
		m.lastEndX = g.EndX
		m.emit(event.SegmentDragged, m.startMarker, p)
	}
}

// End closes the session and discards the snapshot. A half-completed
// collision is left as committed by the last move sample.
func (m *Machine) End(p event.Pointer) {
	if m.mode == modeIdle {
		return
	}
	startMarker := m.mode == modeHandle && m.startMarker
	m.mode = modeIdle
	m.sess = Session{}
	m.emit(event.SegmentDragEnd, startMarker, p)
}

// commit writes both boundaries, ordered so the entity-level
// endTime > startTime backstop never rejects a transient state.
func (m *Machine) commit(b Boundaries) {
	if b.End > m.seg.EndTime() {
		m.seg.SetEndTime(b.End)
		m.seg.SetStartTime(b.Start)
	} else {
		m.seg.SetStartTime(b.Start)
		m.seg.SetEndTime(b.End)
	}
}

func (m *Machine) geometry() Geometry {
	tr := m.opts.Transform
	return Geometry{
		StartX:     tr.TimeToPixels(m.seg.StartTime()) - tr.FrameOffset(),
		EndX:       tr.TimeToPixels(m.seg.EndTime()) - tr.FrameOffset(),
		StartWidth: m.opts.HandleWidth,
		EndWidth:   m.opts.HandleWidth,
	}
}

func (m *Machine) emit(t event.Type, startMarker bool, p event.Pointer) {
	if m.opts.Emitter == nil {
		return
	}
	m.opts.Emitter.Emit(t, event.Drag{
		Segment:     m.seg,
		StartMarker: startMarker,
		Pointer:     p,
	})
}
