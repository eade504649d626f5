package event

import "github.com/mgpai22/tarang/internal/segment"

// semantic drag interaction milestones
type Type string

const (
	SegmentDragStart Type = "segments.dragstart"
	SegmentDragged   Type = "segments.dragged"
	SegmentDragEnd   Type = "segments.dragend"
)

// raw pointer position, in frame-relative pixels
type Pointer struct {
	X float64
	Y float64
}

// Drag is the payload carried by every segment drag event.
type Drag struct {
	Segment     *segment.Segment
	StartMarker bool // true when a start handle is the drag target
	Pointer     Pointer
}

type Handler func(Drag)

// Emitter dispatches drag events synchronously to subscribed handlers.
// It is not goroutine safe; all interaction runs on one goroutine.
type Emitter struct {
	handlers map[Type][]Handler
}

func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[Type][]Handler),
	}
}

// On registers a handler for an event type. Handlers are observational
// only; they run inline and must not block.
func (e *Emitter) On(t Type, h Handler) {
	e.handlers[t] = append(e.handlers[t], h)
}

func (e *Emitter) Emit(t Type, d Drag) {
	for _, h := range e.handlers[t] {
		h(d)
	}
}
