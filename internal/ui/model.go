package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dirhop/internal/browser"
	"dirhop/internal/config"
	"dirhop/internal/diskinfo"
	"dirhop/internal/eventbus"
	"dirhop/internal/logging"
	"dirhop/internal/ui/input"
	"dirhop/internal/ui/input/modes"
	inputtypes "dirhop/internal/ui/input/types"
	"dirhop/internal/ui/logic"
	"dirhop/internal/ui/views"
)

// E2EEnv makes the first frame carry a readiness marker for the e2e driver
const E2EEnv = "DIRHOP_E2E_TEST"

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	session *browser.Session
	log     *logging.Logger

	width       int
	height      int
	help        help.Model
	keys        modes.KeyMap
	showHelp    bool
	inPagerMode bool

	// rows is the filtered listing the cursor moves over
	rows        []logic.Match
	filter      string
	listedAt    time.Time
	listedDir   string
	status      string
	diskSummary string

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager

	// ctx is cancelled on quit so an in-flight delete stops escalating
	ctx    context.Context
	cancel context.CancelFunc

	e2e       bool
	readySent bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over session
func NewModel(bus eventbus.EventBus, cfg *config.Config, session *browser.Session) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		bus:          bus,
		config:       cfg,
		session:      session,
		log:          logging.Get().With("component", "ui"),
		help:         help.New(),
		keys:         modes.Keys,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPager(),
		ctx:          ctx,
		cancel:       cancel,
		e2e:          os.Getenv(E2EEnv) == "1",
	}
	m.syncRows()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Session returns the browsing session the model drives
func (m *Model) Session() *browser.Session {
	return m.session
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.navigator.SetViewportHeight(20) // Will be updated on first WindowSizeMsg
	return m.diskUsage()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.navigator.SetViewportHeight(msg.Height - views.ChromeHeight)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		if c := m.inputHandler.Update(msg); c != nil {
			cmd = c
			break
		}
		cmd = m.handleNonKeyboardMsg(msg)
	}

	m.syncRows()
	m.syncSession()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "esc", "?", "q":
			m.showHelp = false
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.context())

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		Session: m.session,
		Visible: m.rows,
		Cursor:  m.navigator.Cursor(),
		Filter:  m.filter,
		Confirm: m.config.UI.ConfirmDelete,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	s := m.session

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Move(a.Direction)

	case inputtypes.ActivateAction:
		if path := m.currentPath(); path != "" {
			before := s.Dir()
			s.Activate(path)
			if s.Dir() != before {
				return m.diskUsage()
			}
		}

	case inputtypes.GoUpAction:
		s.Up()
		return m.diskUsage()
	case inputtypes.GoHomeAction:
		s.Home()
		return m.diskUsage()
	case inputtypes.GoBackAction:
		s.Back()
		return m.diskUsage()
	case inputtypes.GoForwardAction:
		s.Forward()
		return m.diskUsage()

	case inputtypes.UpdateTextAction:
		switch a.Mode {
		case inputtypes.ModeFilter:
			m.setFilter(a.Text)
		case inputtypes.ModePath:
			s.SetPathInput(a.Text)
		case inputtypes.ModeRename:
			s.SetRenameInput(a.Text)
		}

	case inputtypes.SubmitTextAction:
		return m.submitText(a)

	case inputtypes.CancelTextAction:
		switch a.Mode {
		case inputtypes.ModeFilter:
			m.setFilter("")
		case inputtypes.ModePath:
			s.SetPathInput(s.Dir())
		case inputtypes.ModeRename:
			s.CancelRename()
			s.ClosePopup()
		}

	case inputtypes.BeginRenameAction:
		if s.Popup() == nil {
			if path := m.currentPath(); path != "" {
				s.OpenPopup(path)
			}
		}
		// A retry after a rejected name keeps the error visible
		if p := s.Popup(); p != nil && !p.Renaming {
			s.StartRename()
		}

	case inputtypes.CopyAction, inputtypes.CutAction:
		target := m.targetPath()
		if target == "" {
			return nil
		}
		s.Select(target)
		verb := "Copied"
		if _, cut := a.(inputtypes.CutAction); cut {
			s.Cut()
			verb = "Cut"
		} else {
			s.Copy()
		}
		return m.setStatus(fmt.Sprintf("%s %s", verb, filepath.Base(target)))

	case inputtypes.PasteAction:
		s.Paste()
		return m.diskUsage()

	case inputtypes.CopyPathAction:
		path := s.PopupPath()
		if path == "" {
			return nil
		}
		if err := clipboard.WriteAll(path); err != nil {
			m.log.Warn("clipboard write failed", "err", err)
			s.SetError(fmt.Sprintf("Error copying path: %v", err))
			return nil
		}
		return m.setStatus("Copied path " + path)

	case inputtypes.DeleteAction:
		return m.startDelete()

	case inputtypes.OpenPopupAction:
		if path := m.currentPath(); path != "" {
			s.OpenPopup(path)
		}

	case inputtypes.ClosePopupAction:
		s.ClosePopup()

	case inputtypes.PreviewAction:
		return m.preview(m.currentPath())

	case inputtypes.RefreshAction:
		s.Refresh()
		return m.diskUsage()

	case inputtypes.ToggleHiddenAction:
		s.ToggleHidden()

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.ClearAction:
		switch {
		case m.filter != "":
			m.setFilter("")
		case s.ErrorMessage() != "":
			s.ClearError()
		case s.Clipboard() != nil:
			s.ClearClipboard()
		}

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

func (m *Model) submitText(a inputtypes.SubmitTextAction) tea.Cmd {
	s := m.session
	switch a.Mode {
	case inputtypes.ModePath:
		before := s.Dir()
		s.SetPathInput(a.Text)
		s.SubmitPath()
		if s.Dir() != before {
			return m.diskUsage()
		}
	case inputtypes.ModeFilter:
		m.setFilter(a.Text)
	case inputtypes.ModeRename:
		s.ConfirmRename(a.Text)
		if p := s.Popup(); p != nil && p.RenameError != "" {
			// Stay in rename mode with the rejected name so it can be corrected
			var cmds []tea.Cmd
			for _, action := range m.inputHandler.ChangeMode(inputtypes.ModeRename, a.Text, m.context()) {
				if c := m.processAction(action); c != nil {
					cmds = append(cmds, c)
				}
			}
			cmds = append(cmds, textinput.Blink)
			return tea.Batch(cmds...)
		}
	}
	return nil
}

// startDelete hands the target to the deleter off the update loop
func (m *Model) startDelete() tea.Cmd {
	target := m.targetPath()
	if target == "" {
		return nil
	}
	m.session.Select(target)
	t, ok := m.session.BeginDelete()
	if !ok {
		return nil
	}

	m.log.Info("delete started", "path", t.Path, "dir", t.IsDir)
	deleter := m.session.Deleter()
	ctx := m.ctx
	return func() tea.Msg {
		return deleteFinishedMsg{target: t, outcome: deleter.Delete(ctx, t)}
	}
}

func (m *Model) preview(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return nil
	}
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
			defer m.program.Send(resumeRenderingMsg{})
		}
		return previewMsg{path: path, err: m.pager.Preview(path)}
	}
}

func (m *Model) diskUsage() tea.Cmd {
	dir := m.session.Dir()
	return func() tea.Msg {
		stats, err := diskinfo.Usage(dir)
		if err != nil {
			return diskUsageMsg{dir: dir, err: err}
		}
		return diskUsageMsg{dir: dir, summary: stats.Summary()}
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) quit() tea.Cmd {
	m.cancel()
	return tea.Quit
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.handleEvent(msg.Event)

	case deleteFinishedMsg:
		m.session.FinishDelete(msg.target, msg.outcome)
		if msg.outcome.Removed {
			return tea.Batch(
				m.setStatus("Deleted "+filepath.Base(msg.target.Path)),
				m.diskUsage(),
			)
		}
		return nil

	case diskUsageMsg:
		if msg.dir != m.session.Dir() {
			return nil
		}
		if msg.err != nil {
			m.log.Debug("disk usage unavailable", "path", msg.dir, "err", msg.err)
			m.diskSummary = ""
			return nil
		}
		m.diskSummary = msg.summary

	case previewMsg:
		if msg.err != nil {
			m.log.Warn("preview failed", "path", msg.path, "err", msg.err)
			m.session.SetError(fmt.Sprintf("Error previewing file: %v", msg.err))
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		m.status = ""
	}
	return nil
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.PasteCompletedEvent:
		verb := "Pasted"
		if e.Moved {
			verb = "Moved"
		}
		return m.setStatus(fmt.Sprintf("%s %s", verb, filepath.Base(e.Destination)))
	case eventbus.EntryRenamedEvent:
		return m.setStatus("Renamed to " + filepath.Base(e.NewPath))
	case eventbus.DeleteFailedEvent:
		m.log.Warn("delete failed", "path", e.Path, "reason", e.Reason)
	case eventbus.ConfigSavedEvent:
		m.log.Debug("config saved", "path", e.Path)
	}
	return nil
}

func (m *Model) setFilter(query string) {
	if query == m.filter {
		return
	}
	m.filter = query
	m.rows = logic.FilterEntries(m.session.Entries(), m.filter)
	m.navigator.SetTotal(len(m.rows))
	m.navigator.SetCursor(0)
}

// syncRows rebuilds the visible rows after the session reloaded its listing.
// A reload restores the viewport from the session's scroll offset and puts
// the cursor on the selected entry when there is one.
func (m *Model) syncRows() {
	s := m.session
	if s.LoadedAt().Equal(m.listedAt) && s.Dir() == m.listedDir {
		return
	}
	if s.Dir() != m.listedDir {
		m.filter = ""
	}
	m.listedAt = s.LoadedAt()
	m.listedDir = s.Dir()

	m.rows = logic.FilterEntries(s.Entries(), m.filter)
	m.navigator.SetTotal(len(m.rows))
	m.navigator.SetViewportOffset(int(s.Scroll()))
	if sel := s.Selected(); sel != "" {
		if i := logic.IndexOf(m.rows, sel); i >= 0 {
			m.navigator.SetCursor(i)
		}
	}
}

// syncSession pushes the cursor and viewport back into the session so that
// selection-based operations and history scroll follow the screen
func (m *Model) syncSession() {
	s := m.session
	if path := m.currentPath(); path != s.Selected() && !s.Deleting() {
		s.Select(path)
	}
	// Filtered offsets index a different row set than the history restores
	if s.Popup() != nil || m.filter != "" {
		return
	}
	if offset := float64(m.navigator.ViewportOffset()); offset != s.Scroll() {
		s.SetScroll(offset)
	}
}

func (m *Model) currentPath() string {
	cursor := m.navigator.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return ""
	}
	return m.rows[cursor].Entry.Path
}

// targetPath is the popup's entry when the menu is open, else the cursor's
func (m *Model) targetPath() string {
	if p := m.session.PopupPath(); p != "" {
		return p
	}
	return m.currentPath()
}

func (m *Model) currentIsDir(path string) bool {
	for _, r := range m.rows {
		if r.Entry.Path == path {
			return r.Entry.IsDir
		}
	}
	return false
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Dir:            m.session.Dir(),
		Rows:           m.rows,
		Cursor:         m.navigator.Cursor(),
		ViewportOffset: m.navigator.ViewportOffset(),
		ViewportHeight: m.navigator.ViewportHeight(),
		DateFormat:     m.config.UI.DateFormat,
		ShowHidden:     m.session.ShowHidden(),
		FilterQuery:    m.filter,
		Clipboard:      m.session.Clipboard(),
		CanGoBack:      m.session.CanGoBack(),
		CanGoForward:   m.session.CanGoForward(),
		DiskSummary:    m.diskSummary,
		Loading:        m.session.Loading(),
		ErrorMessage:   m.session.ErrorMessage(),
		StatusMessage:  m.status,
		ShowHelp:       m.showHelp,
		HelpModel:      m.help,
		Keys:           m.keys,
	}
	if m.session.Deleting() {
		state.Deleting = m.session.Selected()
	}

	mode := m.inputHandler.CurrentMode()
	switch mode {
	case inputtypes.ModePath, inputtypes.ModeFilter:
		if ti := m.inputHandler.TextInput(); ti != nil {
			state.InputView = ti.View()
		}
		if p, ok := m.inputHandler.Mode(mode).(interface{ Prompt() string }); ok {
			state.InputPrompt = p.Prompt()
		}
	case inputtypes.ModeDeleteConfirm:
		if c, ok := m.inputHandler.Mode(mode).(*modes.ConfirmMode); ok && c.Target() != "" {
			state.ConfirmTarget = c.Target()
			state.ConfirmIsDir = m.currentIsDir(c.Target())
		}
	}

	if p := m.session.Popup(); p != nil {
		state.Popup = p.Path
		state.PopupIsDir = m.currentIsDir(p.Path)
		state.Renaming = p.Renaming
		state.RenameError = p.RenameError
		if ti := m.inputHandler.TextInput(); ti != nil && mode == inputtypes.ModeRename {
			state.RenameView = ti.View()
		}
	}

	out := m.renderer.Render(state)
	if m.e2e && !m.readySent {
		m.readySent = true
		out = "__READY__\n" + out
	}
	return out
}
