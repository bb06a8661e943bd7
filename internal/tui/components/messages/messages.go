// Package messages renders a transcript as a scrollable list of message blocks.
package messages

import (
	"fmt"
	"strings"

	"agentchat/agents"
	"agentchat/internal/tui/components/avatar"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"
	"agentchat/internal/tui/keys"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EmptyMessage is shown when there is nothing to display.
const EmptyMessage = "No messages. Pipe text in or pass -file."

// SelectMessageMsg is sent when a message is opened.
type SelectMessageMsg struct {
	Index   int
	Message agents.AgentMessage
}

// Model represents the transcript message list.
type Model struct {
	ctx        *context.ProgramContext
	viewport   viewport.Model
	cursor     int
	offsets    []int
	dimensions constants.Dimensions
}

// New creates a new message list model.
func New(ctx *context.ProgramContext) Model {
	m := Model{
		ctx:      ctx,
		viewport: viewport.New(0, 0),
	}
	m.Refresh()
	return m
}

// Init initializes the message list.
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
		m.moveCursor(m.cursor - 1)
	case key.Matches(keyMsg, keys.Keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(keyMsg, keys.Keys.FirstItem):
		m.moveCursor(0)
	case key.Matches(keyMsg, keys.Keys.LastItem):
		m.moveCursor(m.count() - 1)
	case key.Matches(keyMsg, keys.Keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		m.syncCursorToViewport()
	case key.Matches(keyMsg, keys.Keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		m.syncCursorToViewport()
	case key.Matches(keyMsg, keys.Keys.Enter):
		if selected, ok := m.Selected(); ok {
			index := m.cursor
			return m, func() tea.Msg {
				return SelectMessageMsg{Index: index, Message: selected}
			}
		}
	}
	return m, nil
}

// View renders the message list.
func (m Model) View() string {
	if m.ctx == nil {
		return ""
	}

	if m.count() == 0 {
		return lipgloss.Place(
			m.dimensions.Width,
			m.dimensions.Height,
			lipgloss.Center,
			lipgloss.Center,
			m.ctx.Styles.Transcript.EmptyState.Render(EmptyMessage),
		)
	}

	return lipgloss.NewStyle().
		Width(m.dimensions.Width).
		Height(m.dimensions.Height).
		MaxHeight(m.dimensions.Height).
		Render(m.viewport.View())
}

// Refresh re-renders the transcript, e.g. after it or the theme changed.
func (m *Model) Refresh() {
	if m.cursor >= m.count() {
		m.cursor = max(0, m.count()-1)
	}
	if m.ctx == nil {
		return
	}

	width := m.contentWidth()
	var blocks []string
	m.offsets = m.offsets[:0]
	line := 0
	for i, msg := range m.messages() {
		block := RenderMessage(m.ctx, msg, width, i == m.cursor)
		m.offsets = append(m.offsets, line)
		line += lipgloss.Height(block) + constants.MessageGap
		blocks = append(blocks, block)
	}
	m.viewport.SetContent(strings.Join(blocks, strings.Repeat("\n", constants.MessageGap+1)))
}

// SetDimensions sets the list dimensions.
func (m *Model) SetDimensions(dims constants.Dimensions) {
	m.dimensions = dims
	m.viewport.Width = dims.Width
	m.viewport.Height = dims.Height
	m.Refresh()
	m.ensureVisible()
}

// UpdateProgramContext updates the context.
func (m *Model) UpdateProgramContext(ctx *context.ProgramContext) {
	m.ctx = ctx
	m.Refresh()
}

// Reset moves the cursor back to the first message.
func (m *Model) Reset() {
	m.cursor = 0
	m.viewport.GotoTop()
	m.Refresh()
}

// Selected returns the message under the cursor.
func (m Model) Selected() (agents.AgentMessage, bool) {
	msgs := m.messages()
	if m.cursor < 0 || m.cursor >= len(msgs) {
		return agents.AgentMessage{}, false
	}
	return msgs[m.cursor], true
}

// SelectRole selects the first message authored by role. It reports whether
// one was found.
func (m *Model) SelectRole(role string) bool {
	for i, msg := range m.messages() {
		if msg.Role == role {
			m.cursor = i
			m.Refresh()
			m.ensureVisible()
			return true
		}
	}
	return false
}

// Cursor returns the index of the selected message.
func (m Model) Cursor() int {
	return m.cursor
}

// IsAtTop returns true if the first message is selected.
func (m Model) IsAtTop() bool {
	return m.cursor == 0
}

// ScrollPercent reports how far the list is scrolled.
func (m Model) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}

func (m *Model) moveCursor(index int) {
	if m.count() == 0 {
		return
	}
	index = max(0, min(index, m.count()-1))
	if index == m.cursor {
		return
	}
	m.cursor = index
	m.Refresh()
	m.ensureVisible()
}

// ensureVisible scrolls so the selected message's first line is on screen.
func (m *Model) ensureVisible() {
	if m.cursor >= len(m.offsets) {
		return
	}
	top := m.offsets[m.cursor]
	if top < m.viewport.YOffset || top >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(top)
	}
}

// syncCursorToViewport selects the first message starting inside the viewport.
func (m *Model) syncCursorToViewport() {
	for i, off := range m.offsets {
		if off >= m.viewport.YOffset {
			if i != m.cursor {
				m.cursor = i
				m.Refresh()
			}
			return
		}
	}
}

func (m Model) messages() []agents.AgentMessage {
	if m.ctx == nil || m.ctx.Transcript == nil {
		return nil
	}
	return m.ctx.Transcript.Messages
}

func (m Model) count() int {
	return len(m.messages())
}

func (m Model) contentWidth() int {
	width := m.dimensions.Width - constants.MainContentPadding*2
	if width <= 0 {
		width = 80
	}
	return width
}

// RenderMessage renders one message block: the agent label on top and the
// wrapped content below it.
func RenderMessage(ctx *context.ProgramContext, msg agents.AgentMessage, width int, selected bool) string {
	style := ctx.Styles.Transcript.Message
	mark := " "
	if selected {
		style = ctx.Styles.Transcript.Selected
		mark = ctx.Styles.Transcript.SelectedMark.Render(constants.Cursor)
	}

	// Account for the left border and padding of the block style
	inner := ctx.WrapWidth(width - style.GetHorizontalFrameSize() - lipgloss.Width(mark))
	if inner < 1 {
		inner = 1
	}

	content := msg.Content
	if content == "" {
		content = ctx.Styles.Transcript.Meta.Render("(empty message)")
	} else {
		content = ctx.Styles.Transcript.Content.Width(inner).Render(content)
	}

	block := style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		avatar.Label(ctx, msg.Role),
		content,
	))
	return lipgloss.JoinHorizontal(lipgloss.Top, mark, block)
}

// RenderAll renders every message of the transcript for non-interactive output.
func RenderAll(ctx *context.ProgramContext, width int) string {
	if ctx.Transcript.Len() == 0 {
		return ctx.Styles.Transcript.EmptyState.Render(EmptyMessage)
	}

	blocks := make([]string, 0, ctx.Transcript.Len())
	for _, msg := range ctx.Transcript.Messages {
		blocks = append(blocks, RenderMessage(ctx, msg, width, false))
	}

	summary := ctx.Styles.Transcript.Meta.Render(fmt.Sprintf(
		"%d message(s) from %s", ctx.Transcript.Len(), agents.Format(ctx.Transcript.Agents())))
	return strings.Join(append(blocks, summary), "\n\n")
}
