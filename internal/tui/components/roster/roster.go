// Package roster shows the agents taking part in the loaded transcript.
package roster

import (
	"fmt"

	"agentchat/agents"
	"agentchat/internal/tui/components/avatar"
	"agentchat/internal/tui/components/table"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"
	"agentchat/internal/tui/keys"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// JumpToAgentMsg asks the transcript view to select the agent's first message.
type JumpToAgentMsg struct {
	Agent string
}

// Model represents the agents roster.
type Model struct {
	ctx    *context.ProgramContext
	table  table.Model
	agents []string
}

var columns = []table.Column{
	{Title: "", Width: constants.BadgeWidth + 2},
	{Title: "Agent", Grow: true},
	{Title: "Color", Width: 11},
	{Title: "Messages", Width: 10, Align: lipgloss.Right},
	{Title: "Share", Width: 8, Align: lipgloss.Right},
}

// New creates a new roster model.
func New(ctx *context.ProgramContext) Model {
	t := table.New(ctx, columns)
	t.SetEmptyMessage("No agents in this transcript")

	m := Model{ctx: ctx, table: t}
	m.Refresh()
	return m
}

// Init initializes the roster.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Keys.Up):
		m.table.CursorUp()
	case key.Matches(keyMsg, keys.Keys.Down):
		m.table.CursorDown()
	case key.Matches(keyMsg, keys.Keys.FirstItem):
		m.table.CursorFirst()
	case key.Matches(keyMsg, keys.Keys.LastItem):
		m.table.CursorLast()
	case key.Matches(keyMsg, keys.Keys.PageUp):
		m.table.PageUp()
	case key.Matches(keyMsg, keys.Keys.PageDown):
		m.table.PageDown()
	case key.Matches(keyMsg, keys.Keys.Enter):
		if agent, ok := m.Selected(); ok {
			return m, func() tea.Msg { return JumpToAgentMsg{Agent: agent} }
		}
	}
	return m, nil
}

// View renders the roster.
func (m Model) View() string {
	return m.table.View()
}

// Refresh rebuilds the rows from the current transcript.
func (m *Model) Refresh() {
	if m.ctx == nil {
		m.agents = nil
		m.table.SetRows(nil)
		return
	}

	var msgs []agents.AgentMessage
	if m.ctx.Transcript != nil {
		msgs = m.ctx.Transcript.Messages
	}
	m.agents = agents.Roster(msgs)
	counts := agents.CountByRole(msgs)

	rows := make([]table.Row, 0, len(m.agents))
	for _, agent := range m.agents {
		rows = append(rows, table.Row{
			avatar.Badge(m.ctx, agent),
			avatar.Name(m.ctx, agent),
			string(m.ctx.AgentColor(agent)),
			fmt.Sprintf("%d", counts[agent]),
			share(counts[agent], len(msgs)),
		})
	}
	m.table.SetRows(rows)
}

func share(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", n*100/total)
}

// Selected returns the agent under the cursor.
func (m Model) Selected() (string, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.agents) {
		return "", false
	}
	return m.agents[i], true
}

// Len returns the number of agents listed.
func (m Model) Len() int {
	return len(m.agents)
}

// SetDimensions sets the roster dimensions.
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
