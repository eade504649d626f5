package waveform

import "fmt"

// Peaks holds the min/max sample pairs that render one zoom level of a
// waveform. Pair i covers samples [i*SamplesPerPixel, (i+1)*SamplesPerPixel).
type Peaks struct {
	SampleRate      int
	SamplesPerPixel int
	Bits            int // 8 or 16

	// interleaved min,max pairs at 16-bit range
	data []int16
}

// FromSamples reduces raw 16-bit PCM to min/max pairs at the given
// zoom. A trailing partial window still produces a pair.
func FromSamples(samples []int16, sampleRate, samplesPerPixel int) (*Peaks, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if samplesPerPixel <= 0 {
		return nil, fmt.Errorf(
			"samples per pixel must be positive, got %d",
			samplesPerPixel,
		)
	}

	pairs := (len(samples) + samplesPerPixel - 1) / samplesPerPixel
	data := make([]int16, 0, pairs*2)

	for i := 0; i < len(samples); i += samplesPerPixel {
		end := i + samplesPerPixel
		if end > len(samples) {
			end = len(samples)
		}
		lo, hi := samples[i], samples[i]
		for _, s := range samples[i+1 : end] {
			if s < lo {
				lo = s
			}
			if s > hi {
				hi = s
			}
		}
		data = append(data, lo, hi)
	}

	return &Peaks{
		SampleRate:      sampleRate,
		SamplesPerPixel: samplesPerPixel,
		Bits:            16,
		data:            data,
	}, nil
}

// Length is the number of min/max pairs, i.e. the waveform width in
// pixels at this zoom.
func (p *Peaks) Length() int {
	return len(p.data) / 2
}

func (p *Peaks) Min(i int) int16 {
	return p.data[2*i]
}

func (p *Peaks) Max(i int) int16 {
	return p.data[2*i+1]
}

// Duration is the audio length in seconds covered by the peaks.
func (p *Peaks) Duration() float64 {
	return float64(p.Length()) * float64(p.SamplesPerPixel) / float64(p.SampleRate)
}

// Resample merges pairs to a coarser zoom level. The target scale must
// be a multiple of the current one.
func (p *Peaks) Resample(samplesPerPixel int) (*Peaks, error) {
	if samplesPerPixel < p.SamplesPerPixel || samplesPerPixel%p.SamplesPerPixel != 0 {
		return nil, fmt.Errorf(
			"cannot resample %d samples/px to %d: target must be a coarser multiple",
			p.SamplesPerPixel,
			samplesPerPixel,
		)
	}
	if samplesPerPixel == p.SamplesPerPixel {
		return p, nil
	}

	factor := samplesPerPixel / p.SamplesPerPixel
	length := p.Length()
	data := make([]int16, 0, ((length+factor-1)/factor)*2)

	for i := 0; i < length; i += factor {
		end := i + factor
		if end > length {
			end = length
		}
		lo, hi := p.Min(i), p.Max(i)
		for j := i + 1; j < end; j++ {
			if p.Min(j) < lo {
				lo = p.Min(j)
			}
			if p.Max(j) > hi {
				hi = p.Max(j)
			}
		}
		data = append(data, lo, hi)
	}

	return &Peaks{
		SampleRate:      p.SampleRate,
		SamplesPerPixel: samplesPerPixel,
		Bits:            p.Bits,
		data:            data,
	}, nil
}
