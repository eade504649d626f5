package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/tarang/internal/segment"
)

var importCmd = &cobra.Command{
	Use:   "import [subtitle_file]",
	Short: "Import an SRT subtitle track as a segment set",
	Long: `Convert SubRip subtitle cues into editable segments, one per cue,
labeled with the cue text.

Examples:
  tarang import episode.srt
  tarang import episode.srt -o episode.segments.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	ext := strings.ToLower(filepath.Ext(subtitlePath))
	if ext != ".srt" {
		return fmt.Errorf("unsupported subtitle format: %s (expected .srt)", ext)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = strings.TrimSuffix(subtitlePath, ext) + ".segments.json"
	}

	store, err := segment.ImportSRT(subtitlePath)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	// cycle the palette so adjacent segments are distinguishable
	for i, seg := range store.All() {
		seg.SetColor(segmentColors[i%len(segmentColors)])
	}

	if err := store.Save(outputPath); err != nil {
		return fmt.Errorf("failed to write segments: %w", err)
	}

	logger.Infow("Imported subtitle cues",
		"input", subtitlePath,
		"output", outputPath,
		"segments", store.Len(),
	)

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Segments written: %s\n", absOutput)

	return nil
}
