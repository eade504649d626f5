// Package tui is the terminal editor: a waveform rendered from peak
// data with a segment overlay that can be dragged with the mouse,
// whole or by its boundary handles.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/mgpai22/tarang/internal/drag"
	"github.com/mgpai22/tarang/internal/event"
	"github.com/mgpai22/tarang/internal/logging"
	"github.com/mgpai22/tarang/internal/segment"
	"github.com/mgpai22/tarang/internal/view"
	"github.com/mgpai22/tarang/internal/waveform"
)

// terminal cells are the pixel unit, so one column is one handle
const handleWidth = 1

// Options configure an editor session.
type Options struct {
	SegmentsPath string
	Store        *segment.Store
	Peaks        *waveform.Peaks
	Policy       drag.Policy
	Logger       *logging.Logger
}

type model struct {
	path   string
	store  *segment.Store
	peaks  *waveform.Peaks // base zoom, as loaded
	shown  *waveform.Peaks // resampled to the view's zoom
	view   *view.View
	policy drag.Policy
	logger *logging.Logger

	emitter *event.Emitter
	active  *drag.Machine

	watcher *fsnotify.Watcher

	width  int
	height int
	dirty  bool
	status string
}

// Run opens the editor and blocks until the user quits.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}

	v, err := view.New(opts.Peaks.SampleRate, opts.Peaks.SamplesPerPixel, 80)
	if err != nil {
		return err
	}

	watcher, err := newSegmentsWatcher(opts.SegmentsPath)
	if err != nil {
		opts.Logger.Debugw("File watching disabled", "error", err)
	}

	m := &model{
		path:    opts.SegmentsPath,
		store:   opts.Store,
		peaks:   opts.Peaks,
		shown:   opts.Peaks,
		view:    v,
		policy:  opts.Policy,
		logger:  opts.Logger,
		emitter: event.NewEmitter(),
		watcher: watcher,
		status:  fmt.Sprintf("%d segments", opts.Store.Len()),
	}

	m.emitter.On(event.SegmentDragged, func(d event.Drag) {
		m.dirty = true
		m.status = fmt.Sprintf(
			"%.3fs - %.3fs  %s",
			d.Segment.StartTime(),
			d.Segment.EndTime(),
			d.Segment.LabelText(),
		)
	})

	defer func() {
		if m.watcher != nil {
			m.watcher.Close()
		}
	}()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func (m *model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForChange(m.watcher, m.path)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.SetWidth(float64(msg.Width))
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil

	case fileChangedMsg:
		m.reloadFromDisk()
		return m, waitForChange(m.watcher, m.path)

	case watchErrMsg:
		m.status = fmt.Sprintf("watch error: %v", msg.err)
		return m, waitForChange(m.watcher, m.path)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "s":
		if err := m.store.Save(m.path); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.dirty = false
		m.status = "saved " + m.path

	case "p":
		m.cancelDrag()
		m.policy = nextPolicy(m.policy)
		m.status = "policy: " + string(m.policy)

	case "+", "=":
		m.setZoom(m.view.SamplesPerPixel() / 2)

	case "-":
		m.setZoom(m.view.SamplesPerPixel() * 2)

	case "left":
		m.view.ScrollBy(-m.view.Width() / 4)

	case "right":
		m.view.ScrollBy(m.view.Width() / 4)

	case "home":
		m.view.ScrollTo(0)

	case "r":
		m.dirty = false
		m.reloadFromDisk()
	}
	return m, nil
}

func (m *model) updateMouse(msg tea.MouseMsg) {
	p := event.Pointer{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.Y >= m.overlayRow() && msg.Y <= m.overlayRow()+1 {
			m.startDrag(msg.X, p)
		}

	case tea.MouseActionMotion:
		if m.active != nil {
			m.active.Move(p)
		}

	case tea.MouseActionRelease:
		if m.active != nil {
			m.active.End(p)
			m.active = nil
		}
	}
}

// startDrag hit-tests the overlay at column x. Boundary markers win
// over segment bodies so adjacent segments stay individually grabbable.
func (m *model) startDrag(x int, p event.Pointer) {
	segments := m.store.All()

	if seg, startMarker, ok := m.markerAt(x, segments); ok {
		machine := m.newMachine(seg)
		if machine.StartHandleDrag(startMarker, p) {
			m.active = machine
		}
		return
	}

	t := m.view.PixelOffsetToTime(float64(x))
	if seg := m.store.SegmentAt(t); seg != nil {
		machine := m.newMachine(seg)
		if machine.StartBodyDrag(p) {
			m.active = machine
		}
	}
}

func (m *model) markerAt(x int, segments []*segment.Segment) (*segment.Segment, bool, bool) {
	for _, s := range segments {
		startX, endX := m.segmentCells(s)
		switch x {
		case startX:
			return s, true, true
		case endX - 1:
			return s, false, true
		}
	}
	return nil, false, false
}

// segmentCells maps a segment to its frame-relative cell span [start, end).
func (m *model) segmentCells(s *segment.Segment) (int, int) {
	startX := int(m.view.TimeToPixelOffset(s.StartTime()))
	endX := int(m.view.TimeToPixelOffset(s.EndTime()))
	if endX <= startX {
		endX = startX + 1
	}
	return startX, endX
}

func (m *model) newMachine(seg *segment.Segment) *drag.Machine {
	return drag.NewMachine(seg, drag.Options{
		Policy:      m.policy,
		Resolver:    m.store,
		Transform:   m.view,
		Emitter:     m.emitter,
		HandleWidth: handleWidth,
	})
}

func (m *model) cancelDrag() {
	if m.active != nil {
		m.active.End(event.Pointer{})
		m.active = nil
	}
}

// setZoom re-renders the peaks at a new samples-per-pixel scale. Only
// scales at or coarser than the loaded data are reachable.
func (m *model) setZoom(samplesPerPixel int) {
	if samplesPerPixel < m.peaks.SamplesPerPixel {
		samplesPerPixel = m.peaks.SamplesPerPixel
	}
	shown, err := m.peaks.Resample(samplesPerPixel)
	if err != nil {
		m.status = fmt.Sprintf("zoom failed: %v", err)
		return
	}
	m.shown = shown
	m.view.SetZoom(samplesPerPixel)
	m.status = fmt.Sprintf("zoom: %d samples/px", samplesPerPixel)
}

func (m *model) reloadFromDisk() {
	if m.dirty {
		m.status = "file changed on disk; unsaved edits kept (press r to reload)"
		return
	}
	store, err := segment.Load(m.path)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.cancelDrag()
	m.store = store
	m.status = fmt.Sprintf("reloaded %d segments", store.Len())
	m.logger.Debugw("Segments reloaded", "path", m.path, "segments", store.Len())
}

func nextPolicy(p drag.Policy) drag.Policy {
	switch p {
	case drag.PolicyOverlap:
		return drag.PolicyNoOverlap
	case drag.PolicyNoOverlap:
		return drag.PolicyCompress
	default:
		return drag.PolicyOverlap
	}
}
