package segment

import (
	"fmt"

	"github.com/google/uuid"
)

// a labeled time interval over the waveform, in seconds from the
// waveform origin
type Segment struct {
	id        string
	startTime float64
	endTime   float64
	editable  bool
	color     string
	labelText string
}

// creation parameters for a segment
type Options struct {
	ID        string // generated when empty
	StartTime float64
	EndTime   float64
	Editable  bool
	Color     string
	LabelText string
}

func New(opts Options) (*Segment, error) {
	if opts.StartTime < 0 {
		return nil, fmt.Errorf(
			"segment start time must not be negative, got %v",
			opts.StartTime,
		)
	}
	if opts.EndTime <= opts.StartTime {
		return nil, fmt.Errorf(
			"segment end time (%v) must be after start time (%v)",
			opts.EndTime,
			opts.StartTime,
		)
	}

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &Segment{
		id:        id,
		startTime: opts.StartTime,
		endTime:   opts.EndTime,
		editable:  opts.Editable,
		color:     opts.Color,
		labelText: opts.LabelText,
	}, nil
}

func (s *Segment) ID() string { return s.id }

func (s *Segment) StartTime() float64 { return s.startTime }

func (s *Segment) EndTime() float64 { return s.endTime }

func (s *Segment) Editable() bool { return s.editable }

func (s *Segment) Color() string { return s.color }

func (s *Segment) LabelText() string { return s.labelText }

func (s *Segment) Duration() float64 {
	return s.endTime - s.startTime
}

// SetStartTime moves the segment's start boundary. Negative times clamp
// to zero; a write that would not leave endTime > startTime is ignored.
func (s *Segment) SetStartTime(t float64) {
	if t < 0 {
		t = 0
	}
	if t >= s.endTime {
		return
	}
	s.startTime = t
}

// SetEndTime moves the segment's end boundary. A write that would not
// leave endTime > startTime is ignored.
func (s *Segment) SetEndTime(t float64) {
	if t <= s.startTime {
		return
	}
	s.endTime = t
}

func (s *Segment) SetLabelText(text string) {
	s.labelText = text
}

func (s *Segment) SetColor(color string) {
	s.color = color
}

func (s *Segment) SetEditable(editable bool) {
	s.editable = editable
}

// reports whether t falls inside the segment's interval
func (s *Segment) Contains(t float64) bool {
	return t >= s.startTime && t < s.endTime
}
