// Package tui provides the terminal user interface for agentchat.
package tui

import (
	"fmt"
	"time"

	"agentchat/config"
	"agentchat/internal/tui/components/header"
	"agentchat/internal/tui/components/messages"
	"agentchat/internal/tui/components/recent"
	"agentchat/internal/tui/components/roster"
	"agentchat/internal/tui/components/settingsform"
	"agentchat/internal/tui/components/sidebar"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"
	"agentchat/internal/tui/keys"
	"agentchat/transcript"
	"agentchat/util"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type FocusArea int

const (
	FocusContent FocusArea = iota
	FocusHeader
)

// statusTimeout is how long informational status messages stay visible.
const statusTimeout = 4 * time.Second

// Model is the main TUI model.
type Model struct {
	ctx *context.ProgramContext

	// Components
	header       header.Model
	messages     messages.Model
	roster       roster.Model
	recent       recent.Model
	sidebar      sidebar.Model
	settingsForm settingsform.Model
	help         help.Model

	// State
	ready   bool
	loading bool
	focus   FocusArea
}

// NewModel creates a new TUI model.
func NewModel(dataDir string, appSettings *config.AppSettings, t *transcript.Transcript, history *config.History) Model {
	ctx := context.NewProgramContext(dataDir, appSettings, t)
	if history != nil {
		ctx.History = history
	}

	h := help.New()
	h.Styles = ctx.Styles.Help.BubbleStyles

	return Model{
		ctx:          ctx,
		header:       header.New(ctx),
		messages:     messages.New(ctx),
		roster:       roster.New(ctx),
		recent:       recent.New(ctx),
		sidebar:      sidebar.New(ctx),
		settingsForm: settingsform.New(ctx),
		help:         h,
		focus:        FocusContent,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ctx.UpdateWindowSize(msg)
		m.ready = true
		m.syncComponentDimensions()
		m.syncProgramContext()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case messages.SelectMessageMsg:
		m.sidebar.ShowMessage(msg.Index, m.ctx.Transcript.Len(), msg.Message)
		m.openSidebar()
		return m, nil

	case roster.JumpToAgentMsg:
		m.setView(constants.TranscriptView)
		if m.messages.SelectRole(msg.Agent) {
			m.previewSelected()
		}
		return m, nil

	case recent.OpenTranscriptMsg:
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.ctx.SetStatus(fmt.Sprintf("Opening %s...", util.DisplayPath(msg.Path)), false)
		return m, loadTranscript(msg.Path, m.ctx.AppSettings.Transcript.DefaultRole)

	case constants.TranscriptLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.ctx.SetError(msg.Err)
			return m, nil
		}
		return m, m.showTranscript(msg.Transcript)

	case recent.HistoryLoadedMsg:
		var cmd tea.Cmd
		m.recent, cmd = m.recent.Update(msg)
		m.header.UpdateProgramContext(m.ctx)
		return m, cmd

	case constants.StatusMsg:
		m.ctx.SetStatus(msg.Message, msg.IsError)
		if msg.IsError {
			return m, nil
		}
		return m, clearStatusAfter(statusTimeout)

	case constants.SettingsSavedMsg:
		m.applySettings()
		m.ctx.SetStatus("Settings saved", false)
		return m, clearStatusAfter(statusTimeout)

	case constants.SettingsErrorMsg:
		m.ctx.SetStatus(fmt.Sprintf("Failed to save settings: %v", msg.Err), true)
		return m, nil

	case constants.ClearStatusMsg:
		if !m.ctx.StatusIsError {
			m.ctx.ClearStatus()
		}
		return m, nil
	}

	// Update components
	var cmd tea.Cmd

	m.header, cmd = m.header.Update(msg)
	cmds = append(cmds, cmd)

	m.recent, cmd = m.recent.Update(msg)
	cmds = append(cmds, cmd)

	m.sidebar, cmd = m.sidebar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// A settings field being edited takes every key first
	if m.focus == FocusContent && m.ctx.View == constants.SettingsView && m.settingsForm.ConsumesKey(msg) {
		m.settingsForm, cmd = m.settingsForm.Update(msg)
		return m, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, keys.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Keys.Help):
		m.ctx.ToggleHelp()
		m.help.ShowAll = m.ctx.HelpExpanded
		m.syncComponentDimensions()
		return m, nil

	case key.Matches(msg, keys.Keys.TogglePreview):
		if m.sidebar.IsOpen {
			m.closeSidebar()
		} else {
			m.previewSelected()
			m.openSidebar()
		}
		return m, nil

	case key.Matches(msg, keys.Keys.Save):
		return m, m.saveSettings()

	case key.Matches(msg, keys.Keys.Tab):
		m.setView(m.ctx.View.Next())
		return m, nil

	case key.Matches(msg, keys.Keys.ShiftTab):
		m.setView(m.ctx.View.Prev())
		return m, nil
	}

	if m.focus == FocusHeader {
		switch {
		case key.Matches(msg, keys.Keys.Down), key.Matches(msg, keys.Keys.Enter):
			m.setFocus(FocusContent)
		case key.Matches(msg, keys.Keys.Left):
			m.setView(m.ctx.View.Prev())
		case key.Matches(msg, keys.Keys.Right):
			m.setView(m.ctx.View.Next())
		case key.Matches(msg, keys.Keys.Back):
			m.setFocus(FocusContent)
		}
		return m, nil
	}

	if key.Matches(msg, keys.Keys.Up) && m.contentIsAtTop() {
		m.setFocus(FocusHeader)
		return m, nil
	}

	switch m.ctx.View {
	case constants.TranscriptView:
		m.messages, cmd = m.messages.Update(msg)
		if m.sidebar.IsOpen && cmd == nil {
			m.previewSelected()
		}
	case constants.AgentsView:
		m.roster, cmd = m.roster.Update(msg)
	case constants.RecentView:
		m.recent, cmd = m.recent.Update(msg)
		m.header.UpdateProgramContext(m.ctx)
	case constants.SettingsView:
		m.settingsForm, cmd = m.settingsForm.Update(msg)
	}

	if cmd == nil && key.Matches(msg, keys.Keys.Back) {
		switch {
		case m.sidebar.IsOpen:
			m.closeSidebar()
		case m.ctx.View != constants.TranscriptView:
			m.setView(constants.TranscriptView)
		}
	}

	return m, cmd
}

func (m Model) contentIsAtTop() bool {
	switch m.ctx.View {
	case constants.TranscriptView:
		return m.messages.IsAtTop()
	case constants.AgentsView:
		return m.roster.IsAtTop()
	case constants.RecentView:
		return m.recent.IsAtTop()
	case constants.SettingsView:
		return m.settingsForm.IsAtTop()
	}
	return true
}

func (m *Model) setFocus(focus FocusArea) {
	m.focus = focus
	m.header.SetFocused(focus == FocusHeader)
}

func (m *Model) setView(view constants.ViewType) {
	m.ctx.SetView(view)
	m.syncProgramContext()
}

// previewSelected shows the message under the transcript cursor in the sidebar.
func (m *Model) previewSelected() {
	if selected, ok := m.messages.Selected(); ok {
		m.sidebar.ShowMessage(m.messages.Cursor(), m.ctx.Transcript.Len(), selected)
	}
}

func (m *Model) openSidebar() {
	if m.sidebar.IsOpen {
		return
	}
	m.sidebar.Open()
	m.ctx.ToggleSidebar()
	m.syncComponentDimensions()
}

func (m *Model) closeSidebar() {
	if !m.sidebar.IsOpen {
		return
	}
	m.sidebar.Close()
	m.ctx.ToggleSidebar()
	m.syncComponentDimensions()
}

// showTranscript swaps in a newly loaded transcript and records it in the
// history.
func (m *Model) showTranscript(t *transcript.Transcript) tea.Cmd {
	m.ctx.SetTranscript(t)
	m.messages.Reset()
	m.roster.Refresh()
	m.sidebar.Clear()
	m.closeSidebar()
	m.setView(constants.TranscriptView)
	m.setFocus(FocusContent)

	m.ctx.SetStatus(fmt.Sprintf("Loaded %d message(s) from %s", t.Len(), util.DisplayPath(t.Source)), false)

	entry, ok := t.HistoryEntry()
	if !ok {
		return clearStatusAfter(statusTimeout)
	}
	m.ctx.History.Record(entry, m.ctx.AppSettings.Transcript.HistoryLimit)
	m.recent.Refresh()

	return tea.Batch(
		saveHistory(m.ctx.DataDir, m.ctx.History),
		clearStatusAfter(statusTimeout),
	)
}

// applySettings re-renders everything that depends on the app settings.
func (m *Model) applySettings() {
	m.ctx.UpdateTheme(m.ctx.AppSettings.UI.Theme)
	m.ctx.RefreshLayout()
	m.help.Styles = m.ctx.Styles.Help.BubbleStyles
	m.syncComponentDimensions()
	m.syncProgramContext()
}

// View renders the entire UI.
func (m Model) View() string {
	if !m.ready {
		return lipgloss.Place(
			m.ctx.ScreenWidth,
			m.ctx.ScreenHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.ctx.Styles.Common.FaintTextStyle.Render("Loading..."),
		)
	}

	headerView := m.header.View()
	contentView := lipgloss.NewStyle().
		Width(m.ctx.MainContentWidth).
		MaxWidth(m.ctx.MainContentWidth).
		Height(m.ctx.MainContentHeight).
		MaxHeight(m.ctx.MainContentHeight).
		Render(m.renderContent())

	mainArea := contentView
	if m.sidebar.IsOpen {
		mainArea = lipgloss.JoinHorizontal(lipgloss.Top, contentView, m.sidebar.View())
	}

	sections := []string{headerView, mainArea}
	if m.ctx.AppSettings.UI.ShowStatusBar {
		sections = append(sections, m.renderStatusBar())
	}

	// Enforce total screen size to prevent scrolling
	return lipgloss.NewStyle().
		Width(m.ctx.ScreenWidth).
		Height(m.ctx.ScreenHeight).
		MaxWidth(m.ctx.ScreenWidth).
		MaxHeight(m.ctx.ScreenHeight).
		Background(m.ctx.Theme.Background).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderContent() string {
	switch m.ctx.View {
	case constants.TranscriptView:
		return m.messages.View()
	case constants.AgentsView:
		return m.roster.View()
	case constants.RecentView:
		return m.recent.View()
	case constants.SettingsView:
		return m.settingsForm.View()
	default:
		return "Unknown view"
	}
}

func (m Model) renderStatusBar() string {
	styles := m.ctx.Styles.StatusBar

	var status string
	switch {
	case m.ctx.StatusMessage != "" && m.ctx.StatusIsError:
		status = styles.Error.Render(m.ctx.Styles.Common.FailureGlyph + " " + m.ctx.StatusMessage)
	case m.ctx.StatusMessage != "":
		status = styles.Info.Render(m.ctx.StatusMessage)
	case m.ctx.View == constants.TranscriptView && m.ctx.Transcript.Len() > 0:
		status = fmt.Sprintf("%d/%d  %d%%", m.messages.Cursor()+1, m.ctx.Transcript.Len(),
			int(m.messages.ScrollPercent()*100))
	}

	h := m.help
	h.Width = max(0, m.ctx.ScreenWidth-lipgloss.Width(status)-4)

	if m.ctx.HelpExpanded {
		return styles.Root.
			Width(m.ctx.ScreenWidth).
			Height(constants.FullHelpHeight).
			MaxHeight(constants.FullHelpHeight).
			Render(lipgloss.JoinVertical(lipgloss.Left, status, h.View(keys.Keys)))
	}

	line := status
	if helpView := h.View(keys.Keys); helpView != "" {
		if line != "" {
			line += "  "
		}
		line += helpView
	}
	return styles.Root.
		Width(m.ctx.ScreenWidth).
		MaxWidth(m.ctx.ScreenWidth).
		MaxHeight(constants.StatusBarHeight).
		Render(line)
}

func (m *Model) syncComponentDimensions() {
	dims := constants.Dimensions{
		Width:  m.ctx.MainContentWidth,
		Height: m.ctx.MainContentHeight,
	}

	m.messages.SetDimensions(dims)
	m.roster.SetDimensions(dims)
	m.recent.SetDimensions(dims)
	m.settingsForm.SetDimensions(dims)
	m.sidebar.UpdateProgramContext(m.ctx)
}

func (m *Model) syncProgramContext() {
	m.header.UpdateProgramContext(m.ctx)
	m.messages.UpdateProgramContext(m.ctx)
	m.roster.UpdateProgramContext(m.ctx)
	m.recent.UpdateProgramContext(m.ctx)
	m.sidebar.UpdateProgramContext(m.ctx)
	m.settingsForm.UpdateProgramContext(m.ctx)
}

func (m Model) saveSettings() tea.Cmd {
	dir := m.ctx.DataDir
	settings := m.settingsForm.GetSettings()
	return func() tea.Msg {
		if settings == nil {
			return constants.SettingsErrorMsg{Err: fmt.Errorf("no settings loaded")}
		}
		if err := settings.Validate(); err != nil {
			return constants.SettingsErrorMsg{Err: err}
		}
		if err := config.SaveAppSettings(dir, settings); err != nil {
			return constants.SettingsErrorMsg{Err: err}
		}
		return constants.SettingsSavedMsg{}
	}
}

func loadTranscript(path, defaultRole string) tea.Cmd {
	return func() tea.Msg {
		t, err := transcript.LoadFile(path, defaultRole)
		return constants.TranscriptLoadedMsg{Path: path, Transcript: t, Err: err}
	}
}

func saveHistory(dir string, h *config.History) tea.Cmd {
	snapshot := &config.History{Entries: append([]config.HistoryEntry(nil), h.Entries...)}
	return func() tea.Msg {
		if err := config.SaveHistory(dir, snapshot); err != nil {
			return constants.StatusMsg{Message: fmt.Sprintf("Failed to save history: %v", err), IsError: true}
		}
		return nil
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return constants.ClearStatusMsg{}
	})
}

// Render renders a transcript as plain message blocks for non-interactive
// output, wrapping content to fit width.
func Render(appSettings *config.AppSettings, t *transcript.Transcript, width int) string {
	ctx := context.NewProgramContext("", appSettings, t)
	return messages.RenderAll(ctx, width)
}

// Run starts the TUI application.
func Run(dataDir string, appSettings *config.AppSettings, t *transcript.Transcript, history *config.History) error {
	model := NewModel(dataDir, appSettings, t, history)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
