package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgpai22/tarang/internal/drag"
	"github.com/mgpai22/tarang/internal/event"
	"github.com/mgpai22/tarang/internal/logging"
	"github.com/mgpai22/tarang/internal/segment"
	"github.com/mgpai22/tarang/internal/view"
	"github.com/mgpai22/tarang/internal/waveform"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testPeaks(t *testing.T, seconds int) *waveform.Peaks {
	t.Helper()
	samples := make([]int16, seconds*1000)
	for i := range samples {
		samples[i] = int16(i % 8000)
	}
	peaks, err := waveform.FromSamples(samples, 1000, 10)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	return peaks
}

func testSegment(t *testing.T, start, end float64, label string) *segment.Segment {
	t.Helper()
	seg, err := segment.New(segment.Options{
		StartTime: start,
		EndTime:   end,
		Editable:  true,
		LabelText: label,
	})
	if err != nil {
		t.Fatalf("segment.New: %v", err)
	}
	return seg
}

// 1000 Hz at 10 samples/px gives 100 px per second, so cell positions
// in these tests read as centiseconds.
func testModel(t *testing.T, segments ...*segment.Segment) *model {
	t.Helper()
	store := segment.NewStore()
	for _, s := range segments {
		if err := store.Add(s); err != nil {
			t.Fatalf("store.Add: %v", err)
		}
	}
	peaks := testPeaks(t, 10)
	v, err := view.New(peaks.SampleRate, peaks.SamplesPerPixel, 80)
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}
	m := &model{
		path:    "test.segments.json",
		store:   store,
		peaks:   peaks,
		shown:   peaks,
		view:    v,
		policy:  drag.PolicyNoOverlap,
		logger:  logging.NewNopLogger(),
		emitter: event.NewEmitter(),
		width:   80,
		height:  20,
	}
	return m
}

func TestSegmentCells(t *testing.T) {
	seg := testSegment(t, 0.2, 0.5, "a")
	m := testModel(t, seg)

	startX, endX := m.segmentCells(seg)
	if startX != 20 || endX != 50 {
		t.Fatalf("cells = [%d, %d), want [20, 50)", startX, endX)
	}
}

func TestSegmentCellsDegenerateSpan(t *testing.T) {
	// narrower than one cell still occupies one cell
	seg := testSegment(t, 0.2, 0.205, "a")
	m := testModel(t, seg)

	startX, endX := m.segmentCells(seg)
	if endX != startX+1 {
		t.Fatalf("cells = [%d, %d), want one cell wide", startX, endX)
	}
}

func TestMarkerAtPrefersHandles(t *testing.T) {
	a := testSegment(t, 0.2, 0.5, "a")
	b := testSegment(t, 0.5, 0.8, "b")
	m := testModel(t, a, b)

	tests := []struct {
		name        string
		x           int
		wantSeg     *segment.Segment
		startMarker bool
		ok          bool
	}{
		{"start handle of a", 20, a, true, true},
		{"end handle of a", 49, a, false, true},
		{"start handle of b", 50, b, true, true},
		{"end handle of b", 79, b, false, true},
		{"body of a", 35, nil, false, false},
		{"empty space", 10, nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, startMarker, ok := m.markerAt(tt.x, m.store.All())
			if ok != tt.ok || seg != tt.wantSeg || startMarker != tt.startMarker {
				t.Fatalf(
					"markerAt(%d) = (%v, %v, %v), want (%v, %v, %v)",
					tt.x, seg, startMarker, ok,
					tt.wantSeg, tt.startMarker, tt.ok,
				)
			}
		})
	}
}

func TestMousePressStartsBodyDrag(t *testing.T) {
	seg := testSegment(t, 0.2, 0.5, "a")
	m := testModel(t, seg)

	row := m.overlayRow()
	m.updateMouse(tea.MouseMsg{
		X:      35,
		Y:      row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.active == nil || !m.active.Dragging() {
		t.Fatal("press on segment body did not start a drag")
	}
	if m.active.Segment() != seg {
		t.Fatal("drag targets the wrong segment")
	}

	m.updateMouse(tea.MouseMsg{
		X:      45,
		Y:      row,
		Action: tea.MouseActionMotion,
		Button: tea.MouseButtonLeft,
	})
	if got := seg.StartTime(); !approx(got, 0.3) {
		t.Fatalf("startTime after 10px motion = %v, want 0.3", got)
	}

	m.updateMouse(tea.MouseMsg{
		X:      45,
		Y:      row,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	if m.active != nil {
		t.Fatal("release did not end the drag")
	}
}

func TestMousePressOutsideOverlayIgnored(t *testing.T) {
	seg := testSegment(t, 0.2, 0.5, "a")
	m := testModel(t, seg)

	m.updateMouse(tea.MouseMsg{
		X:      35,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.active != nil {
		t.Fatal("press on the waveform area should not start a drag")
	}
}

func TestMousePressOnHandleDragsBoundary(t *testing.T) {
	seg := testSegment(t, 0.2, 0.5, "a")
	m := testModel(t, seg)

	row := m.overlayRow()
	m.updateMouse(tea.MouseMsg{
		X:      49,
		Y:      row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.active == nil {
		t.Fatal("press on end handle did not start a drag")
	}

	m.updateMouse(tea.MouseMsg{
		X:      69,
		Y:      row,
		Action: tea.MouseActionMotion,
		Button: tea.MouseButtonLeft,
	})
	// handle drags commit the absolute pointer position: cell 69 is 0.69s
	if got := seg.EndTime(); !approx(got, 0.69) {
		t.Fatalf("endTime after handle drag = %v, want 0.69", got)
	}
	if got := seg.StartTime(); !approx(got, 0.2) {
		t.Fatalf("startTime moved during handle drag: %v", got)
	}
}

func TestPolicyCycle(t *testing.T) {
	order := []drag.Policy{
		drag.PolicyNoOverlap,
		drag.PolicyCompress,
		drag.PolicyOverlap,
		drag.PolicyNoOverlap,
	}
	p := drag.PolicyNoOverlap
	for i := 1; i < len(order); i++ {
		p = nextPolicy(p)
		if p != order[i] {
			t.Fatalf("cycle step %d = %v, want %v", i, p, order[i])
		}
	}
}

func TestZoomFloorsAtLoadedScale(t *testing.T) {
	m := testModel(t)

	m.setZoom(m.peaks.SamplesPerPixel / 2)
	if got := m.view.SamplesPerPixel(); got != m.peaks.SamplesPerPixel {
		t.Fatalf("zoom in past the data = %d, want %d", got, m.peaks.SamplesPerPixel)
	}

	m.setZoom(m.peaks.SamplesPerPixel * 4)
	if got := m.view.SamplesPerPixel(); got != m.peaks.SamplesPerPixel*4 {
		t.Fatalf("zoom out = %d, want %d", got, m.peaks.SamplesPerPixel*4)
	}
	if got := m.shown.SamplesPerPixel; got != m.peaks.SamplesPerPixel*4 {
		t.Fatalf("shown peaks at %d samples/px, want %d", got, m.peaks.SamplesPerPixel*4)
	}
}

func TestViewRendersMarkers(t *testing.T) {
	seg := testSegment(t, 0.2, 0.5, "hello")
	m := testModel(t, seg)

	out := m.View()
	if !strings.Contains(out, "[") || !strings.Contains(out, "]") {
		t.Fatal("render is missing boundary markers")
	}
	if !strings.Contains(out, "hello") {
		t.Fatal("render is missing the segment label")
	}
}

func TestDragMarksDirty(t *testing.T) {
	seg := testSegment(t, 0.2, 0.5, "a")
	m := testModel(t, seg)
	m.emitter.On(event.SegmentDragged, func(event.Drag) { m.dirty = true })

	row := m.overlayRow()
	press := tea.MouseMsg{X: 35, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.updateMouse(press)
	m.updateMouse(tea.MouseMsg{X: 36, Y: row, Action: tea.MouseActionMotion})

	if !m.dirty {
		t.Fatal("drag motion did not mark the session dirty")
	}
}
