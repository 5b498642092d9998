package views

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"dirhop/internal/domain"
	"dirhop/internal/listing"
	"dirhop/internal/ui/logic"
)

// ChromeHeight is the number of lines around the listing: title, column
// header, status, input and help.
const ChromeHeight = 5

const (
	sizeWidth   = 9
	cursorWidth = 2
)

// timeSample is formatted once per frame to size the Modified column
var timeSample = time.Date(2006, time.December, 30, 23, 59, 59, 0, time.UTC)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Dir            string
	Rows           []logic.Match
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	DateFormat     string

	ShowHidden    bool
	FilterQuery   string
	Clipboard     *domain.ClipboardItem
	CanGoBack     bool
	CanGoForward  bool
	DiskSummary   string
	Loading       bool
	Deleting      string
	ErrorMessage  string
	StatusMessage string

	// InputPrompt and InputView are set while a text mode other than rename is active
	InputPrompt string
	InputView   string

	// Popup is the entry the context menu is open on
	Popup         string
	PopupIsDir    bool
	Renaming      bool
	RenameView    string
	RenameError   string
	ConfirmTarget string
	ConfirmIsDir  bool

	ShowHelp  bool
	HelpModel help.Model
	Keys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	inner := width - 2 // Main padding

	lines := []string{
		r.renderTitle(state, inner),
		r.renderHeader(state, inner),
	}
	lines = append(lines, r.renderRows(state, inner)...)
	for len(lines) < state.ViewportHeight+2 {
		lines = append(lines, "")
	}
	lines = append(lines, r.renderStatus(state, inner))
	lines = append(lines, r.renderInput(state))
	if state.Keys != nil {
		lines = append(lines, state.HelpModel.View(state.Keys))
	}

	base := r.styles.Main.Render(strings.Join(lines, "\n"))

	switch {
	case state.ShowHelp && state.Keys != nil:
		full := state.HelpModel.FullHelpView(state.Keys.FullHelp())
		content := r.styles.Title.Render("dirhop keys") + "\n\n" + full
		return r.popupRender.RenderPopupOverlay(base, content, "", state.Height, width, r.styles.HelpBox)
	case state.ConfirmTarget != "":
		return r.popupRender.RenderPopupOverlay(base, r.renderConfirm(state), filepath.Base(state.ConfirmTarget), state.Height, width, r.styles.PopupBox)
	case state.Popup != "":
		return r.popupRender.RenderPopupOverlay(base, r.renderPopup(state), filepath.Base(state.Popup), state.Height, width, r.styles.PopupBox)
	}
	return base
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	left := r.styles.Title.Render("dirhop") + " " + r.styles.Path.Render(state.Dir)

	var indicators []string
	if state.Loading {
		indicators = append(indicators, r.styles.StatusBusy.Render("loading"))
	}
	if state.Deleting != "" {
		indicators = append(indicators, r.styles.StatusBusy.Render("deleting "+filepath.Base(state.Deleting)))
	}
	if state.FilterQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	if state.ShowHidden {
		indicators = append(indicators, r.styles.Dim.Render("[hidden]"))
	}
	if c := state.Clipboard; c != nil {
		verb := "copy"
		if c.Cut {
			verb = "cut"
		}
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("[%s: %s]", verb, filepath.Base(c.Path))))
	}
	if state.DiskSummary != "" {
		indicators = append(indicators, r.styles.Dim.Render(state.DiskSummary))
	}
	if len(indicators) == 0 {
		return left
	}

	right := strings.Join(indicators, "  ")
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}

func (r *Renderer) columns(state ViewState, width int) (name, modified int) {
	modified = runewidth.StringWidth(listing.FormatTime(timeSample, state.DateFormat))
	name = width - cursorWidth - sizeWidth - modified - 2
	if name < 8 {
		name = 8
	}
	return name, modified
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	nameW, modW := r.columns(state, width)
	header := strings.Repeat(" ", cursorWidth) +
		runewidth.FillRight("Name", nameW) + " " +
		fmt.Sprintf("%*s", sizeWidth, "Size") + " " +
		runewidth.FillRight("Modified", modW)
	return r.styles.Header.Render(header)
}

func (r *Renderer) renderRows(state ViewState, width int) []string {
	if state.Loading && len(state.Rows) == 0 {
		return []string{r.styles.Dim.Render("Loading...")}
	}
	if len(state.Rows) == 0 {
		if state.FilterQuery != "" {
			return []string{r.styles.Dim.Render("No entries match the filter")}
		}
		if state.ErrorMessage != "" {
			return nil
		}
		return []string{r.styles.Dim.Render("This folder is empty")}
	}

	nameW, modW := r.columns(state, width)
	end := state.ViewportOffset + state.ViewportHeight
	if end > len(state.Rows) {
		end = len(state.Rows)
	}

	lines := make([]string, 0, end-state.ViewportOffset)
	for i := state.ViewportOffset; i < end; i++ {
		row := state.Rows[i]
		lines = append(lines, r.renderRow(state, row, i == state.Cursor, nameW, modW))
	}
	return lines
}

func (r *Renderer) renderRow(state ViewState, row logic.Match, selected bool, nameW, modW int) string {
	e := row.Entry
	style := r.styles.File
	switch {
	case e.IsDir:
		style = r.styles.Dir
	case e.Hidden:
		style = r.styles.Hidden
	}
	if c := state.Clipboard; c != nil && c.Cut && c.Path == e.Path {
		style = style.Inherit(r.styles.CutItem)
	}

	size := "-"
	if !e.IsDir {
		size = listing.FormatSize(e.Size)
	}
	modified := listing.FormatTime(e.Modified, state.DateFormat)
	tail := " " + fmt.Sprintf("%*s", sizeWidth, size) + " " + runewidth.FillRight(modified, modW)

	name := e.Name
	if e.IsDir {
		name += string(filepath.Separator)
	}

	if selected {
		line := "> " + runewidth.FillRight(runewidth.Truncate(name, nameW, "…"), nameW) + tail
		return r.styles.SelectionBg.Inherit(style).Render(line)
	}
	return "  " + r.highlightName(name, row.Indexes, nameW, style) + r.styles.Dim.Render(tail)
}

// highlightName renders name padded to width, with fuzzy-matched characters
// picked out
func (r *Renderer) highlightName(name string, matched []int, width int, style lipgloss.Style) string {
	if runewidth.StringWidth(name) > width {
		name = runewidth.Truncate(name, width, "…")
	}
	if len(matched) == 0 {
		return style.Render(runewidth.FillRight(name, width))
	}

	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	used := 0
	for i, ch := range name {
		s := string(ch)
		if hit[i] {
			b.WriteString(r.styles.Match.Render(s))
		} else {
			b.WriteString(style.Render(s))
		}
		used += runewidth.RuneWidth(ch)
	}
	if used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	if state.ErrorMessage != "" {
		return r.styles.StatusError.Render(runewidth.Truncate(state.ErrorMessage, width, "…"))
	}
	if state.StatusMessage != "" {
		return r.styles.StatusOK.Render(runewidth.Truncate(state.StatusMessage, width, "…"))
	}

	nav := ""
	if state.CanGoBack {
		nav += "◀"
	}
	if state.CanGoForward {
		nav += "▶"
	}
	count := fmt.Sprintf("%d items", len(state.Rows))
	if n := len(state.Rows); n > state.ViewportHeight {
		last := state.ViewportOffset + state.ViewportHeight
		if last > n {
			last = n
		}
		count = fmt.Sprintf("%d-%d of %d", state.ViewportOffset+1, last, n)
	}
	if nav != "" {
		count = nav + " " + count
	}
	return r.styles.Status.Render(count)
}

func (r *Renderer) renderInput(state ViewState) string {
	if state.InputPrompt == "" {
		return ""
	}
	return r.styles.Prompt.Render(state.InputPrompt) + state.InputView
}

func (r *Renderer) renderConfirm(state ViewState) string {
	kind := domain.Kind(state.ConfirmIsDir)
	return r.styles.Confirm.Render(fmt.Sprintf("Delete %s '%s'?", kind, filepath.Base(state.ConfirmTarget))) +
		"\n\n" + r.styles.Dim.Render("y/enter confirm  n/esc cancel")
}

func (r *Renderer) renderPopup(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(filepath.Base(state.Popup)))
	b.WriteString("\n\n")

	if state.Renaming {
		b.WriteString(r.styles.Prompt.Render("New name: "))
		b.WriteString(state.RenameView)
		if state.RenameError != "" {
			b.WriteString("\n")
			b.WriteString(r.styles.StatusError.Render(state.RenameError))
		}
		b.WriteString("\n\n")
		b.WriteString(r.styles.Dim.Render("enter rename  esc cancel"))
		return b.String()
	}

	items := [][2]string{
		{"y", "Copy path"},
		{"c", "Copy"},
		{"x", "Cut"},
		{"r", "Rename"},
		{"d", "Delete"},
	}
	if !state.PopupIsDir {
		items = append(items, [2]string{"p", "Preview"})
	}
	items = append(items, [2]string{"esc", "Close"})
	for _, it := range items {
		b.WriteString(fmt.Sprintf("%s  %s\n", r.styles.Filter.Render(fmt.Sprintf("%-3s", it[0])), it[1]))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
