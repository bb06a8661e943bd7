// Package header provides the header component for the TUI.
package header

import (
	"fmt"

	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"
	"agentchat/internal/tui/theme"
	"agentchat/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the header component.
type Model struct {
	ctx     *context.ProgramContext
	focused bool
}

// New creates a new header model.
func New(ctx *context.ProgramContext) Model {
	return Model{ctx: ctx}
}

// SetFocused sets the focus state of the header.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// Init initializes the header.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the header.
// Layout: [Tabs...] [spacer] [source] [Logo]
func (m Model) View() string {
	if m.ctx == nil {
		return ""
	}

	tabs := m.renderTabs()
	logo := m.renderLogo()
	source := m.renderSource()

	spacerWidth := m.ctx.ScreenWidth - lipgloss.Width(tabs) - lipgloss.Width(source) - lipgloss.Width(logo)
	if spacerWidth < 0 {
		// Drop the source first when space runs out
		source = ""
		spacerWidth = m.ctx.ScreenWidth - lipgloss.Width(tabs) - lipgloss.Width(logo)
	}

	if spacerWidth < 0 {
		spacerWidth = 0
	}

	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	content := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		tabs,
		spacer,
		source,
		logo,
	)

	return m.ctx.Styles.Tabs.TabsRow.
		Width(m.ctx.ScreenWidth).
		Height(constants.TabsContentHeight).
		MaxHeight(constants.TabsContentHeight).
		Render(content)
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, v := range constants.Views {
		style := m.ctx.Styles.Tabs.Tab
		name := fmt.Sprintf("%s %s", v.Icon(), v.String())
		if count := m.count(v); count >= 0 {
			name += m.ctx.Styles.Tabs.TabCount.Render(fmt.Sprintf(" (%d)", count))
		}

		if m.ctx.View == v {
			style = m.ctx.Styles.Tabs.ActiveTab
			if m.focused {
				name = fmt.Sprintf("> %s <", name)
			}
		}

		tabs = append(tabs, style.Render(name))
	}

	separator := m.ctx.Styles.Tabs.TabSeparator.Render(" | ")
	result := ""
	for i, tab := range tabs {
		if i > 0 {
			result += separator
		}
		result += tab
	}

	return result
}

// count returns the item count shown next to a tab, or -1 for none.
func (m Model) count(v constants.ViewType) int {
	switch v {
	case constants.TranscriptView:
		return m.ctx.Transcript.Len()
	case constants.AgentsView:
		return len(m.ctx.Transcript.Agents())
	case constants.RecentView:
		return m.ctx.History.Len()
	default:
		return -1
	}
}

func (m Model) renderSource() string {
	if m.ctx.Transcript == nil || m.ctx.Transcript.Source == "" {
		return ""
	}
	return m.ctx.Styles.Header.Subtitle.Render(util.DisplayPath(m.ctx.Transcript.Source))
}

func (m Model) renderLogo() string {
	nameStyle := lipgloss.NewStyle().
		Foreground(theme.LogoColor).
		Bold(true)

	return lipgloss.NewStyle().
		Padding(0, 1, 0, 2).
		Height(1).
		Render(nameStyle.Render(constants.Logo))
}

// UpdateProgramContext updates the context.
func (m *Model) UpdateProgramContext(ctx *context.ProgramContext) {
	m.ctx = ctx
}

// Height returns the header height.
func (m Model) Height() int {
	return constants.HeaderHeight
}
