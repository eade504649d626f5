package waveform

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// audiowaveform binary header flag: pairs stored as 8-bit values
const flagEightBit = 0x1

// WriteDat writes the peaks in the audiowaveform version 1 binary
// format (little endian, 16-bit pairs).
func (p *Peaks) WriteDat(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer

	header := []any{
		int32(1), // version
		uint32(0),
		int32(p.SampleRate),
		int32(p.SamplesPerPixel),
		uint32(p.Length()),
	}
	for _, v := range header {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("failed to encode header: %w", err)
		}
	}

	if err := binary.Write(&buf, binary.LittleEndian, p.data); err != nil {
		return fmt.Errorf("failed to encode peak data: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ReadDat reads an audiowaveform binary file. Version 1 and
// single-channel version 2 files are supported, in both 8-bit and
// 16-bit resolutions.
func ReadDat(path string) (*Peaks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read waveform data file: %w", err)
	}
	r := bytes.NewReader(data)

	var version int32
	var flags uint32
	var sampleRate, samplesPerPixel int32
	var length uint32

	for _, v := range []any{&version, &flags, &sampleRate, &samplesPerPixel, &length} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("failed to parse waveform header: %w", err)
		}
	}

	channels := int32(1)
	switch version {
	case 1:
	case 2:
		if err := binary.Read(r, binary.LittleEndian, &channels); err != nil {
			return nil, fmt.Errorf("failed to parse waveform header: %w", err)
		}
		if channels != 1 {
			return nil, fmt.Errorf(
				"unsupported channel count %d: only mono waveform data is supported",
				channels,
			)
		}
	default:
		return nil, fmt.Errorf("unsupported waveform data version %d", version)
	}

	if sampleRate <= 0 || samplesPerPixel <= 0 {
		return nil, fmt.Errorf(
			"invalid waveform header: sample rate %d, samples per pixel %d",
			sampleRate,
			samplesPerPixel,
		)
	}

	pairs := make([]int16, 2*length)
	bits := 16
	if flags&flagEightBit != 0 {
		bits = 8
		raw := make([]int8, 2*length)
		if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
			return nil, fmt.Errorf("failed to parse peak data: %w", err)
		}
		// widen to the 16-bit range used internally
		for i, v := range raw {
			pairs[i] = int16(v) * 256
		}
	} else {
		if err := binary.Read(r, binary.LittleEndian, pairs); err != nil {
			return nil, fmt.Errorf("failed to parse peak data: %w", err)
		}
	}

	return &Peaks{
		SampleRate:      int(sampleRate),
		SamplesPerPixel: int(samplesPerPixel),
		Bits:            bits,
		data:            pairs,
	}, nil
}

// JSON representation used by waveform rendering clients
type jsonPeaks struct {
	Version         int     `json:"version"`
	Channels        int     `json:"channels"`
	SampleRate      int     `json:"sample_rate"`
	SamplesPerPixel int     `json:"samples_per_pixel"`
	Bits            int     `json:"bits"`
	Length          int     `json:"length"`
	Data            []int16 `json:"data"`
}

// WriteJSON writes the peaks in the audiowaveform JSON format.
func (p *Peaks) WriteJSON(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out := jsonPeaks{
		Version:         2,
		Channels:        1,
		SampleRate:      p.SampleRate,
		SamplesPerPixel: p.SamplesPerPixel,
		Bits:            16,
		Length:          p.Length(),
		Data:            p.data,
	}
	if out.Data == nil {
		out.Data = []int16{}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode waveform data: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadJSON reads an audiowaveform JSON file.
func ReadJSON(path string) (*Peaks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read waveform data file: %w", err)
	}

	var in jsonPeaks
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse waveform data: %w", err)
	}
	if in.Channels > 1 {
		return nil, fmt.Errorf(
			"unsupported channel count %d: only mono waveform data is supported",
			in.Channels,
		)
	}
	if in.SampleRate <= 0 || in.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf(
			"invalid waveform data: sample rate %d, samples per pixel %d",
			in.SampleRate,
			in.SamplesPerPixel,
		)
	}
	if len(in.Data)%2 != 0 {
		return nil, fmt.Errorf("waveform data has an odd number of values")
	}

	pairs := in.Data
	bits := in.Bits
	if bits == 8 {
		for i, v := range pairs {
			pairs[i] = v * 256
		}
	} else {
		bits = 16
	}

	return &Peaks{
		SampleRate:      in.SampleRate,
		SamplesPerPixel: in.SamplesPerPixel,
		Bits:            bits,
		data:            pairs,
	}, nil
}

// Open reads waveform data in either supported format, chosen by file
// extension.
func Open(path string) (*Peaks, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dat":
		return ReadDat(path)
	case ".json":
		return ReadJSON(path)
	default:
		return nil, fmt.Errorf(
			"unsupported waveform data format: %s",
			filepath.Ext(path),
		)
	}
}
