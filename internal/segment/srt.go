package segment

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var srtTimestampRegex = regexp.MustCompile(
	`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`,
)

// ImportSRT reads SubRip subtitle cues and turns each cue into an
// editable segment labeled with the cue text.
func ImportSRT(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer file.Close()

	type cue struct {
		start, end float64
		textLines  []string
	}

	var cues []cue
	var current *cue
	haveTimes := false

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			if current != nil && haveTimes {
				cues = append(cues, *current)
			}
			current = nil
			haveTimes = false
			continue
		}

		if current == nil {
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				current = &cue{}
				continue
			}
		}

		if current != nil && !haveTimes {
			matches := srtTimestampRegex.FindStringSubmatch(line)
			if len(matches) == 9 {
				start, err := parseSRTTimestamp(
					matches[1], matches[2], matches[3], matches[4],
				)
				if err != nil {
					return nil, fmt.Errorf(
						"invalid start timestamp at line %d: %w",
						lineNum,
						err,
					)
				}
				end, err := parseSRTTimestamp(
					matches[5], matches[6], matches[7], matches[8],
				)
				if err != nil {
					return nil, fmt.Errorf(
						"invalid end timestamp at line %d: %w",
						lineNum,
						err,
					)
				}
				current.start = start
				current.end = end
				haveTimes = true
				continue
			}
		}

		if current != nil {
			current.textLines = append(current.textLines, line)
		}
	}

	if current != nil && haveTimes {
		cues = append(cues, *current)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	store := NewStore()
	for i, c := range cues {
		if c.end <= c.start {
			continue // zero-length cues cannot become segments
		}
		seg, err := New(Options{
			StartTime: c.start,
			EndTime:   c.end,
			Editable:  true,
			LabelText: strings.Join(c.textLines, "\n"),
		})
		if err != nil {
			return nil, fmt.Errorf("invalid cue %d: %w", i+1, err)
		}
		if err := store.Add(seg); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// seconds from hh:mm:ss,mmm components
func parseSRTTimestamp(hours, minutes, seconds, millis string) (float64, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000, nil
}
