package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgpai22/tarang/internal/drag"
	"github.com/mgpai22/tarang/internal/segment"
	"github.com/mgpai22/tarang/internal/tui"
	"github.com/mgpai22/tarang/internal/waveform"
)

var editCmd = &cobra.Command{
	Use:   "edit [segments_file]",
	Short: "Edit segments interactively over the waveform",
	Long: `Open the terminal editor: the waveform is rendered from peak data
and segments can be dragged with the mouse, whole or by their
boundary handles.

Waveform data comes from --waveform (a .dat or .json peaks file) or
is generated on the fly from --media.

Examples:
  tarang edit episode.segments.json --waveform episode.dat
  tarang edit episode.segments.json --media episode.mp3 --policy compress`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().
		StringP("waveform", "w", "", "Waveform peaks file (.dat or .json)")
	editCmd.Flags().
		StringP("media", "m", "", "Media file to generate peaks from")
	editCmd.Flags().
		StringP("policy", "p", "no-overlap", "Collision policy (overlap, no-overlap, compress)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	segmentsPath := args[0]

	waveformPath, _ := cmd.Flags().GetString("waveform")
	mediaPath, _ := cmd.Flags().GetString("media")
	policyStr, _ := cmd.Flags().GetString("policy")

	policy, err := drag.ParsePolicy(policyStr)
	if err != nil {
		return err
	}

	store, err := segment.Load(segmentsPath)
	if err != nil {
		// a missing file starts an empty set
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		store = segment.NewStore()
	}

	var peaks *waveform.Peaks
	switch {
	case waveformPath != "":
		peaks, err = waveform.Open(waveformPath)
		if err != nil {
			return err
		}
	case mediaPath != "":
		logger.Infow("Generating waveform peaks", "media", mediaPath)
		peaks, err = waveform.Generate(
			context.Background(),
			mediaPath,
			waveform.DefaultExtractOptions(),
		)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("waveform data is required: pass --waveform or --media")
	}

	return tui.Run(tui.Options{
		SegmentsPath: segmentsPath,
		Store:        store,
		Peaks:        peaks,
		Policy:       policy,
		Logger:       logger,
	})
}
