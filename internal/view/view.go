package view

import "fmt"

// View holds the visible-frame state of a waveform display: how many
// audio samples each pixel spans (zoom), how far the frame is scrolled
// (in pixels from the waveform origin), and the frame width in pixels.
// It is the bidirectional mapping between pixel offsets and playback
// time used by segment dragging.
type View struct {
	sampleRate      int
	samplesPerPixel int
	frameOffset     float64
	width           float64
}

func New(sampleRate, samplesPerPixel int, width float64) (*View, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if samplesPerPixel <= 0 {
		return nil, fmt.Errorf(
			"samples per pixel must be positive, got %d",
			samplesPerPixel,
		)
	}
	if width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %v", width)
	}
	return &View{
		sampleRate:      sampleRate,
		samplesPerPixel: samplesPerPixel,
		width:           width,
	}, nil
}

// PixelsToTime converts a pixel delta to a time delta in seconds.
func (v *View) PixelsToTime(pixels float64) float64 {
	return pixels * float64(v.samplesPerPixel) / float64(v.sampleRate)
}

// TimeToPixels converts an absolute time to an absolute pixel position
// measured from the waveform origin.
func (v *View) TimeToPixels(time float64) float64 {
	return time * float64(v.sampleRate) / float64(v.samplesPerPixel)
}

// PixelOffsetToTime converts a frame-relative pixel offset to an
// absolute time.
func (v *View) PixelOffsetToTime(offset float64) float64 {
	return v.PixelsToTime(offset + v.frameOffset)
}

// TimeToPixelOffset converts an absolute time to a frame-relative pixel
// offset.
func (v *View) TimeToPixelOffset(time float64) float64 {
	return v.TimeToPixels(time) - v.frameOffset
}

func (v *View) FrameOffset() float64 { return v.frameOffset }

func (v *View) Width() float64 { return v.width }

func (v *View) SampleRate() int { return v.sampleRate }

func (v *View) SamplesPerPixel() int { return v.samplesPerPixel }

// seconds spanned by the visible frame
func (v *View) FrameDuration() float64 {
	return v.PixelsToTime(v.width)
}

func (v *View) SetWidth(width float64) {
	if width > 0 {
		v.width = width
	}
}

// SetZoom changes the samples-per-pixel scale, keeping the time at the
// left edge of the frame fixed.
func (v *View) SetZoom(samplesPerPixel int) {
	if samplesPerPixel <= 0 {
		return
	}
	leftEdge := v.PixelsToTime(v.frameOffset)
	v.samplesPerPixel = samplesPerPixel
	v.frameOffset = v.TimeToPixels(leftEdge)
}

// ScrollTo moves the frame offset, clamped at the waveform origin.
func (v *View) ScrollTo(frameOffset float64) {
	if frameOffset < 0 {
		frameOffset = 0
	}
	v.frameOffset = frameOffset
}

// ScrollBy moves the frame by a pixel delta.
func (v *View) ScrollBy(pixels float64) {
	v.ScrollTo(v.frameOffset + pixels)
}
