package view

import (
	"math"
	"testing"
)

func newView(t *testing.T) *View {
	t.Helper()
	v, err := New(44100, 441, 1000)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return v
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name            string
		sampleRate      int
		samplesPerPixel int
		width           float64
		wantErr         bool
	}{
		{"valid", 44100, 512, 1000, false},
		{"zero sample rate", 0, 512, 1000, true},
		{"zero zoom", 44100, 0, 1000, true},
		{"zero width", 44100, 512, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.sampleRate, tt.samplesPerPixel, tt.width)
			if (err != nil) != tt.wantErr {
				t.Errorf("New error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPixelTimeRoundTrip(t *testing.T) {
	v := newView(t)
	v.ScrollTo(273)

	for _, time := range []float64{0, 0.25, 1.0, 3.333, 59.994} {
		px := v.TimeToPixels(time)
		back := v.PixelsToTime(px)
		if math.Abs(back-time) > 1e-9 {
			t.Errorf("round trip of %v drifted to %v", time, back)
		}

		offset := v.TimeToPixelOffset(time)
		if math.Abs(v.PixelOffsetToTime(offset)-time) > 1e-9 {
			t.Errorf("offset round trip of %v drifted", time)
		}
	}
}

func TestPixelsToTimeScale(t *testing.T) {
	// 44100 Hz at 441 samples per pixel: 100 px per second
	v := newView(t)

	if got := v.PixelsToTime(100); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("PixelsToTime(100) = %v, want 1.0", got)
	}
	if got := v.TimeToPixels(2.5); math.Abs(got-250) > 1e-9 {
		t.Errorf("TimeToPixels(2.5) = %v, want 250", got)
	}
	if got := v.FrameDuration(); math.Abs(got-10.0) > 1e-9 {
		t.Errorf("FrameDuration() = %v, want 10", got)
	}
}

func TestPixelOffsetToTimeWithScroll(t *testing.T) {
	v := newView(t)
	v.ScrollTo(150)

	if got := v.PixelOffsetToTime(0); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("left edge time = %v, want 1.5", got)
	}
	if got := v.PixelOffsetToTime(50); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("PixelOffsetToTime(50) = %v, want 2.0", got)
	}
}

func TestScrollClampsAtOrigin(t *testing.T) {
	v := newView(t)
	v.ScrollBy(-500)
	if v.FrameOffset() != 0 {
		t.Errorf("frame offset = %v, want clamped to 0", v.FrameOffset())
	}
}

func TestSetZoomKeepsLeftEdge(t *testing.T) {
	v := newView(t)
	v.ScrollTo(200) // left edge at 2.0 s

	v.SetZoom(882) // zoom out 2x

	if got := v.PixelOffsetToTime(0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("left edge moved to %v, want 2.0", got)
	}
	if v.SamplesPerPixel() != 882 {
		t.Errorf("samples per pixel = %d, want 882", v.SamplesPerPixel())
	}

	v.SetZoom(0) // ignored
	if v.SamplesPerPixel() != 882 {
		t.Error("invalid zoom should be ignored")
	}
}
