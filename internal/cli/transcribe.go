package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/tarang/internal/segment"
	"github.com/mgpai22/tarang/internal/transcribe"
	"github.com/mgpai22/tarang/internal/waveform"
)

// palette cycled over bootstrapped segments
var segmentColors = []string{
	"#3b82f6",
	"#22c55e",
	"#eab308",
	"#ef4444",
	"#a855f7",
	"#14b8a6",
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [media_file]",
	Short: "Bootstrap a segment set from AI transcription",
	Long: `Transcribe the audio of a media file and create one editable
segment per recognized speech interval, labeled with its text.

Examples:
  tarang transcribe interview.mp3
  tarang transcribe video.mp4 -o video.segments.json
  tarang transcribe audio.wav --api-key YOUR_KEY -l en`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().
		StringP("api-key", "k", "", "OpenAI API key (or set OPENAI_API_KEY env var)")
	transcribeCmd.Flags().
		StringP("language", "l", "", "Source language code (e.g., en, es, fr)")
	transcribeCmd.Flags().
		String("model", "whisper-1", "OpenAI model to use for transcription")
	transcribeCmd.Flags().
		String("prompt", "", "Optional prompt to guide transcription")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !waveform.IsMediaFile(mediaPath) {
		return fmt.Errorf(
			"unsupported file type: %s (expected audio or video file)",
			filepath.Ext(mediaPath),
		)
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	language, _ := cmd.Flags().GetString("language")
	model, _ := cmd.Flags().GetString("model")
	prompt, _ := cmd.Flags().GetString("prompt")
	outputPath, _ := cmd.Flags().GetString("output")

	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf(
			"OpenAI API key is required: use --api-key flag or set OPENAI_API_KEY environment variable",
		)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = base + ".segments.json"
	}

	logger.Infow("Transcribing audio",
		"input", mediaPath,
		"output", outputPath,
		"model", model,
	)

	transcriber, err := transcribe.Factory(
		ctx,
		transcribe.ProviderOpenAI,
		apiKey,
		transcribe.Options{Language: language, Model: model, Prompt: prompt},
	)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	result, err := transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	logger.Infow("Transcription complete",
		"timings", len(result.Timings),
	)

	store := segment.NewStore()
	for i, timing := range result.Timings {
		seg, err := segment.New(segment.Options{
			StartTime: timing.Start,
			EndTime:   timing.End,
			Editable:  true,
			Color:     segmentColors[i%len(segmentColors)],
			LabelText: timing.Text,
		})
		if err != nil {
			logger.Debugw("Skipping degenerate timing",
				"start", timing.Start,
				"end", timing.End,
			)
			continue
		}
		if err := store.Add(seg); err != nil {
			return fmt.Errorf("failed to add segment: %w", err)
		}
	}

	if err := store.Save(outputPath); err != nil {
		return fmt.Errorf("failed to write segments: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Segments written: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", store.Len())

	return nil
}
