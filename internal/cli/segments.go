package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mgpai22/tarang/internal/segment"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments [segments_file]",
	Short: "List and validate a segment set",
	Long: `Print the segments in a segment file in start-time order and
report any overlapping neighbors.

Examples:
  tarang segments episode.segments.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSegments,
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
}

func runSegments(cmd *cobra.Command, args []string) error {
	store, err := segment.Load(args[0])
	if err != nil {
		return err
	}

	segments := store.All()
	if len(segments) == 0 {
		fmt.Println("No segments.")
		return nil
	}

	rows := lo.Map(segments, func(s *segment.Segment, _ int) string {
		label := s.LabelText()
		if len(label) > 40 {
			label = label[:37] + "..."
		}
		label = strings.ReplaceAll(label, "\n", " ")

		editable := " "
		if s.Editable() {
			editable = "e"
		}
		return fmt.Sprintf(
			"%9.3f  %9.3f  %8.3f  %s  %s",
			s.StartTime(), s.EndTime(), s.Duration(), editable, label,
		)
	})

	fmt.Printf("%9s  %9s  %8s  %s  %s\n", "start", "end", "duration", " ", "label")
	for _, row := range rows {
		fmt.Println(row)
	}

	overlaps := 0
	for i := 1; i < len(segments); i++ {
		if segments[i].StartTime() < segments[i-1].EndTime() {
			overlaps++
			fmt.Printf(
				"overlap: %q runs into %q at %.3fs\n",
				segments[i-1].LabelText(),
				segments[i].LabelText(),
				segments[i].StartTime(),
			)
		}
	}

	fmt.Printf("\n%d segments, %d overlapping pairs\n", len(segments), overlaps)

	return nil
}
