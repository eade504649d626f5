package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/tarang/internal/waveform"
)

var peaksCmd = &cobra.Command{
	Use:   "peaks [media_file]",
	Short: "Generate waveform peak data from an audio or video file",
	Long: `Decode the audio track of a media file and reduce it to min/max
peak pairs for waveform rendering.

Output is written in the audiowaveform binary format (.dat) or its
JSON equivalent.

Examples:
  tarang peaks audio.mp3
  tarang peaks video.mp4 -o video.json -f json
  tarang peaks audio.wav --samples-per-pixel 512`,
	Args: cobra.ExactArgs(1),
	RunE: runPeaks,
}

func init() {
	rootCmd.AddCommand(peaksCmd)

	peaksCmd.Flags().
		StringP("format", "f", "dat", "Output format (dat, json)")
	peaksCmd.Flags().
		IntP("sample-rate", "r", 16000, "Decode sample rate in Hz")
	peaksCmd.Flags().
		IntP("samples-per-pixel", "z", 256, "Samples per peak pair (zoom)")
}

func runPeaks(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	if !waveform.IsMediaFile(mediaPath) {
		return fmt.Errorf(
			"unsupported file type: %s (expected audio or video file)",
			filepath.Ext(mediaPath),
		)
	}

	format, _ := cmd.Flags().GetString("format")
	sampleRate, _ := cmd.Flags().GetInt("sample-rate")
	samplesPerPixel, _ := cmd.Flags().GetInt("samples-per-pixel")
	outputPath, _ := cmd.Flags().GetString("output")

	format = strings.ToLower(format)
	if format != "dat" && format != "json" {
		return fmt.Errorf("invalid format %q: use dat or json", format)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = base + "." + format
	}

	logger.Infow("Generating waveform peaks",
		"input", mediaPath,
		"output", outputPath,
		"sample_rate", sampleRate,
		"samples_per_pixel", samplesPerPixel,
	)

	ctx := context.Background()
	peaks, err := waveform.Generate(ctx, mediaPath, waveform.ExtractOptions{
		SampleRate:      sampleRate,
		SamplesPerPixel: samplesPerPixel,
	})
	if err != nil {
		return fmt.Errorf("peak generation failed: %w", err)
	}

	if format == "json" {
		err = peaks.WriteJSON(outputPath)
	} else {
		err = peaks.WriteDat(outputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to write waveform data: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Waveform data written: %s\n", absOutput)
	fmt.Printf("  Pairs: %d\n", peaks.Length())
	fmt.Printf("  Duration: %.2fs\n", peaks.Duration())

	return nil
}
