package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers popupContent over mainContent. The base is
// greyed out; the line holding keep stays colored so the target entry is
// still recognisable behind the box.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent, keep string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateKeeping(mainContent, keep), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	for i, line := range strings.Split(styledPopup, "\n") {
		row := y + i
		base[row] = splice(base[row], line, x, width)
	}
	if len(base) > height && height > 0 {
		base = base[:height]
	}
	return strings.Join(base, "\n")
}

// splice replaces the cells of base starting at column x with overlay.
// Base lines are plain or single-styled after desaturation, so they are
// re-styled gray on both sides of the box.
func splice(base, overlay string, x, width int) string {
	plain := ansiRE.ReplaceAllString(base, "")
	if pad := x - runewidth.StringWidth(plain); pad > 0 {
		plain += strings.Repeat(" ", pad)
	}

	left := runewidth.Truncate(plain, x, "")
	left = runewidth.FillRight(left, x)

	rightStart := x + lipgloss.Width(overlay)
	right := ""
	if runewidth.StringWidth(plain) > rightStart {
		right = cutLeft(plain, rightStart)
	}
	if width > 0 {
		room := width - rightStart
		if room < 0 {
			room = 0
		}
		right = runewidth.Truncate(right, room, "")
	}

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return gray.Render(left) + overlay + gray.Render(right)
}

// cutLeft drops the first n cells of s
func cutLeft(s string, n int) string {
	w := 0
	for i, r := range s {
		if w >= n {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes color and style codes
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// desaturateKeeping turns everything greyscale except lines containing keepSubstr (plain text match)
func desaturateKeeping(s, keepSubstr string) string {
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		plain := stripANSI(line)
		if keepSubstr != "" && strings.Contains(plain, keepSubstr) {
			out[i] = line
		} else {
			out[i] = gray.Render(plain)
		}
	}
	return strings.Join(out, "\n")
}
