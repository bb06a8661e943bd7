// Package recent lists previously opened transcripts.
package recent

import (
	"fmt"
	"strconv"
	"time"

	"agentchat/agents"
	"agentchat/config"
	"agentchat/internal/tui/components/table"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"
	"agentchat/internal/tui/keys"
	"agentchat/util"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OpenTranscriptMsg asks the app to load the transcript at Path.
type OpenTranscriptMsg struct {
	Path string
}

// HistoryLoadedMsg carries a freshly read history file.
type HistoryLoadedMsg struct {
	History *config.History
	Err     error
}

// Model represents the recent transcripts list.
type Model struct {
	ctx   *context.ProgramContext
	table table.Model
	now   func() time.Time
}

var columns = []table.Column{
	{Title: "Transcript", Grow: true},
	{Title: "Messages", Width: 10, Align: lipgloss.Right},
	{Title: "Agents", Grow: true},
	{Title: "Opened", Width: 12, Align: lipgloss.Right},
}

// New creates a new recent list model.
func New(ctx *context.ProgramContext) Model {
	t := table.New(ctx, columns)
	t.SetEmptyMessage("No recent transcripts")

	m := Model{ctx: ctx, table: t, now: time.Now}
	m.Refresh()
	return m
}

// Init initializes the list.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case HistoryLoadedMsg:
		m.table.SetLoading(false, "")
		if msg.Err != nil {
			m.ctx.SetError(fmt.Errorf("failed to load history: %w", msg.Err))
			return m, nil
		}
		m.ctx.History = msg.History
		m.Refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Keys.Up):
			m.table.CursorUp()
		case key.Matches(msg, keys.Keys.Down):
			m.table.CursorDown()
		case key.Matches(msg, keys.Keys.FirstItem):
			m.table.CursorFirst()
		case key.Matches(msg, keys.Keys.LastItem):
			m.table.CursorLast()
		case key.Matches(msg, keys.Keys.PageUp):
			m.table.PageUp()
		case key.Matches(msg, keys.Keys.PageDown):
			m.table.PageDown()
		case key.Matches(msg, keys.Keys.Enter):
			if entry, ok := m.Selected(); ok {
				path := entry.Path
				return m, func() tea.Msg { return OpenTranscriptMsg{Path: path} }
			}
		case key.Matches(msg, keys.Keys.Delete):
			return m, m.forgetSelected()
		case key.Matches(msg, keys.Keys.Refresh):
			m.table.SetLoading(true, "Reading history...")
			return m, tea.Batch(m.table.StartSpinner(), LoadHistory(m.ctx.DataDir))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	return m.table.View()
}

// LoadHistory returns a command that reads the history file from dir.
func LoadHistory(dir string) tea.Cmd {
	return func() tea.Msg {
		h, err := config.LoadHistory(dir)
		return HistoryLoadedMsg{History: h, Err: err}
	}
}

func (m *Model) forgetSelected() tea.Cmd {
	entry, ok := m.Selected()
	if !ok || !m.ctx.History.Remove(entry.Path) {
		return nil
	}
	m.Refresh()

	dir := m.ctx.DataDir
	snapshot := &config.History{Entries: append([]config.HistoryEntry(nil), m.ctx.History.Entries...)}
	name := util.DisplayPath(entry.Path)
	return func() tea.Msg {
		if err := config.SaveHistory(dir, snapshot); err != nil {
			return constants.StatusMsg{Message: fmt.Sprintf("Failed to save history: %v", err), IsError: true}
		}
		return constants.StatusMsg{Message: "Forgot " + name}
	}
}

// Refresh rebuilds the rows from the context's history.
func (m *Model) Refresh() {
	if m.ctx == nil || m.ctx.History == nil {
		m.table.SetRows(nil)
		return
	}

	now := m.now()
	rows := make([]table.Row, 0, m.ctx.History.Len())
	for _, e := range m.ctx.History.Entries {
		rows = append(rows, table.Row{
			util.DisplayPath(e.Path),
			strconv.Itoa(e.Messages),
			agents.Format(e.Agents),
			formatAge(e.OpenedAt, now),
		})
	}
	m.table.SetRows(rows)
}

// formatAge renders how long ago t was, coarsely.
func formatAge(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// Selected returns the history entry under the cursor.
func (m Model) Selected() (config.HistoryEntry, bool) {
	if m.ctx == nil || m.ctx.History == nil {
		return config.HistoryEntry{}, false
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.ctx.History.Entries) {
		return config.HistoryEntry{}, false
	}
	return m.ctx.History.Entries[i], true
}

// IsLoading reports whether the history is being re-read.
func (m Model) IsLoading() bool {
	return m.table.IsLoading()
}

// SetDimensions sets the list dimensions.
func (m *Model) SetDimensions(dims constants.Dimensions) {
	m.table.SetDimensions(dims)
}

// UpdateProgramContext updates the context.
func (m *Model) UpdateProgramContext(ctx *context.ProgramContext) {
	m.ctx = ctx
	m.table.UpdateProgramContext(ctx)
	m.Refresh()
}

// IsAtTop returns true if the first row is selected.
func (m Model) IsAtTop() bool {
	return m.table.Cursor() == 0
}
