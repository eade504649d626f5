package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const minWaveHeight = 3

var (
	waveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// eighth-block glyphs for the topmost partial cell of a column
var blocks = []rune(" ▁▂▃▄▅▆▇█")

// rows above the overlay row are waveform; below it sit the label row,
// the status bar, and the help line
func (m *model) waveHeight() int {
	h := m.height - 4
	if h < minWaveHeight {
		h = minWaveHeight
	}
	return h
}

func (m *model) overlayRow() int {
	return m.waveHeight()
}

func (m *model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderWaveform())
	b.WriteString(m.renderOverlay())
	b.WriteString(m.renderStatus())
	b.WriteString(m.renderHelp())
	return b.String()
}

// renderWaveform draws one amplitude column per terminal cell, scaled
// to the wave block height in eighth-block steps.
func (m *model) renderWaveform() string {
	height := m.waveHeight()
	width := m.width
	offset := int(m.view.FrameOffset())

	// eighths of a cell filled, per column
	levels := make([]int, width)
	for col := 0; col < width; col++ {
		pair := offset + col
		if pair < 0 || pair >= m.shown.Length() {
			continue
		}
		amp := float64(m.shown.Max(pair))
		if lo := float64(m.shown.Min(pair)); -lo > amp {
			amp = -lo
		}
		levels[col] = int(amp / 32768.0 * float64(height*8))
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		line := make([]rune, width)
		base := (height - 1 - row) * 8
		for col := 0; col < width; col++ {
			fill := levels[col] - base
			switch {
			case fill >= 8:
				line[col] = blocks[8]
			case fill > 0:
				line[col] = blocks[fill]
			default:
				line[col] = ' '
			}
		}
		b.WriteString(waveStyle.Render(string(line)))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderOverlay draws the marker row and the label row: each visible
// segment spans its cells with [ and ] at the boundaries and its label
// text underneath, in the segment's color.
func (m *model) renderOverlay() string {
	markers := make([]string, m.width)
	labels := make([]string, m.width)
	for i := range markers {
		markers[i] = " "
		labels[i] = " "
	}

	for _, s := range m.store.All() {
		startX, endX := m.segmentCells(s)
		if endX <= 0 || startX >= m.width {
			continue
		}

		style := lipgloss.NewStyle()
		if s.Color() != "" {
			style = style.Foreground(lipgloss.Color(s.Color()))
		}
		if !s.Editable() {
			style = dimStyle
		}

		for x := startX; x < endX; x++ {
			if x < 0 || x >= m.width {
				continue
			}
			markers[x] = style.Render("─")
		}
		if startX >= 0 && startX < m.width {
			markers[startX] = style.Render("[")
		}
		if endX-1 >= 0 && endX-1 < m.width {
			markers[endX-1] = style.Render("]")
		}

		label := []rune(s.LabelText())
		for i := 0; i < len(label); i++ {
			x := startX + i
			if x < startX || x >= endX || x < 0 || x >= m.width {
				break
			}
			labels[x] = style.Render(string(label[i]))
		}
	}

	return strings.Join(markers, "") + "\n" + strings.Join(labels, "") + "\n"
}

func (m *model) renderStatus() string {
	dirty := " "
	if m.dirty {
		dirty = "*"
	}
	left := fmt.Sprintf(
		"%s%s  %s  %.2fs+%.2fs  %d spp",
		dirty,
		m.path,
		m.policy,
		m.view.PixelOffsetToTime(0),
		m.view.FrameDuration(),
		m.view.SamplesPerPixel(),
	)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(m.status) - 1
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + m.status
	if lipgloss.Width(line) > m.width {
		line = line[:m.width]
	}
	return statusStyle.Width(m.width).Render(line) + "\n"
}

func (m *model) renderHelp() string {
	return helpStyle.Render(
		"q quit  s save  p policy  +/- zoom  left/right scroll  r reload",
	)
}
