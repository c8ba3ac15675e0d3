package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws fg centred on top of bg. The background keeps its text but
// loses its colours and is re-rendered with scrim, so the dialog stands out.
func Overlay(bg, fg string, scrim lipgloss.Style) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	bgWidth := 0
	for i, line := range bgLines {
		bgLines[i] = ansi.Strip(line)
		bgWidth = max(bgWidth, ansi.StringWidth(bgLines[i]))
	}
	fgWidth := lipgloss.Width(fg)

	top := max((len(bgLines)-len(fgLines))/2, 0)
	left := max((bgWidth-fgWidth)/2, 0)
	for len(bgLines) < top+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	out := make([]string, len(bgLines))
	for i, line := range bgLines {
		if i < top || i >= top+len(fgLines) {
			out[i] = scrim.Render(line)
			continue
		}

		row := line
		if w := ansi.StringWidth(row); w < left {
			row += strings.Repeat(" ", left-w)
		}
		fgLine := fgLines[i-top]
		end := left + ansi.StringWidth(fgLine)

		var right string
		if w := ansi.StringWidth(row); end < w {
			right = scrim.Render(ansi.Cut(row, end, w))
		}
		out[i] = scrim.Render(ansi.Cut(row, 0, left)) + fgLine + right
	}
	return strings.Join(out, "\n")
}
