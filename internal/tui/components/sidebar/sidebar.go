// Package sidebar provides the message details pane for the TUI.
package sidebar

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

// Model represents the sidebar component.
type Model struct {
	ctx        *context.ProgramContext
	IsOpen     bool
	title      string
	content    string
	viewport   viewport.Model
	emptyState string
}

// New creates a new sidebar model.
func New(ctx *context.ProgramContext) Model {
	return Model{
		ctx:        ctx,
		emptyState: "No message selected",
		viewport: viewport.Model{
			Width:  constants.SidebarWidth,
			Height: 0,
		},
	}
}

// Init initializes the sidebar.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Keys.Down):
			m.viewport.LineDown(1)
		case key.Matches(msg, keys.Keys.Up):
			m.viewport.LineUp(1)
		case key.Matches(msg, keys.Keys.PageDown):
			m.viewport.HalfViewDown()
		case key.Matches(msg, keys.Keys.PageUp):
			m.viewport.HalfViewUp()
		}

	case tea.WindowSizeMsg:
		m.updateDimensions()
	}

	return m, nil
}

// View renders the sidebar.
func (m Model) View() string {
	if !m.IsOpen || m.ctx == nil {
		return ""
	}

	height := m.ctx.MainContentHeight
	width := constants.SidebarWidth

	style := m.ctx.Styles.Sidebar.Root.
		Height(height).
		Width(width).
		MaxWidth(width)

	if m.content == "" {
		return style.
			Align(lipgloss.Center).
			Render(lipgloss.PlaceVertical(height, lipgloss.Center, m.emptyState))
	}

	titleView := ""
	if m.title != "" {
		titleView = m.ctx.Styles.Sidebar.Title.Render(m.title) + "\n"
	}

	pagerView := m.ctx.Styles.Sidebar.PagerStyle.
		Render(fmt.Sprintf("%d%%", int(m.viewport.ScrollPercent()*100)))

	return style.Render(lipgloss.JoinVertical(
		lipgloss.Top,
		titleView,
		m.viewport.View(),
		pagerView,
	))
}

// ShowMessage fills the sidebar with the details of one transcript message.
// index is zero-based; total is the transcript length.
func (m *Model) ShowMessage(index, total int, msg agents.AgentMessage) {
	m.SetTitle(fmt.Sprintf("Message %d of %d", index+1, total))
	m.SetContent(m.renderDetails(msg))
	m.ScrollToTop()
}

func (m Model) renderDetails(msg agents.AgentMessage) string {
	width := m.GetContentWidth()

	faint := lipgloss.NewStyle()
	if m.ctx != nil {
		faint = m.ctx.Styles.Common.FaintTextStyle
	}

	color := agents.GetColor(msg.Role)
	if m.ctx != nil {
		color = string(m.ctx.AgentColor(msg.Role))
	}

	var b strings.Builder
	b.WriteString(avatar.Label(m.ctx, msg.Role))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", faint.Render("initials"), agents.GetInitials(msg.Role))
	fmt.Fprintf(&b, "%s %s\n", faint.Render("color   "), color)
	fmt.Fprintf(&b, "%s %d chars\n\n", faint.Render("length  "), len([]rune(msg.Content)))

	if msg.Content == "" {
		b.WriteString(faint.Render("(empty message)"))
	} else {
		b.WriteString(lipgloss.NewStyle().Width(width).Render(msg.Content))
	}
	return b.String()
}

// SetContent sets the sidebar content.
func (m *Model) SetContent(content string) {
	m.content = content
	m.viewport.SetContent(content)
}

// SetTitle sets the sidebar title.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// Toggle toggles the sidebar visibility.
func (m *Model) Toggle() {
	m.IsOpen = !m.IsOpen
}

// Open opens the sidebar.
func (m *Model) Open() {
	m.IsOpen = true
}

// Close closes the sidebar.
func (m *Model) Close() {
	m.IsOpen = false
}

// Clear drops the current content, e.g. when a new transcript is loaded.
func (m *Model) Clear() {
	m.title = ""
	m.SetContent("")
}

// ScrollToTop scrolls to the top.
func (m *Model) ScrollToTop() {
	m.viewport.GotoTop()
}

// GetContentWidth returns the content width.
func (m Model) GetContentWidth() int {
	if m.ctx == nil {
		return constants.SidebarWidth - 2
	}
	return constants.SidebarWidth - m.ctx.Styles.Sidebar.BorderWidth - m.ctx.Styles.Sidebar.ContentPad*2
}

// UpdateProgramContext updates the context.
func (m *Model) UpdateProgramContext(ctx *context.ProgramContext) {
	m.ctx = ctx
	m.updateDimensions()
}

func (m *Model) updateDimensions() {
	if m.ctx == nil {
		return
	}
	m.viewport.Height = max(0, m.ctx.MainContentHeight-m.ctx.Styles.Sidebar.PagerHeight-2)
	m.viewport.Width = m.GetContentWidth()
}

// Width returns the sidebar width when open.
func (m Model) Width() int {
	if m.IsOpen {
		return constants.SidebarWidth
	}
	return 0
}
