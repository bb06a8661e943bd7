// Package avatar renders agent badges: the agent's initials on its color.
package avatar

import (
	"agentchat/agents"
	"agentchat/internal/tui/context"
	"agentchat/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Badge renders the avatar badge for an agent.
func Badge(ctx *context.ProgramContext, agent string) string {
	if ctx == nil {
		return agents.GetInitials(agent)
	}
	bg := ctx.AgentColor(agent)
	return ctx.Styles.Transcript.Badge.
		Background(bg).
		Foreground(theme.BadgeForeground(bg)).
		Render(agents.GetInitials(agent))
}

// Name renders an agent name in the agent's color.
func Name(ctx *context.ProgramContext, agent string) string {
	if ctx == nil {
		return agent
	}
	return ctx.Styles.Transcript.Role.
		Foreground(ctx.AgentColor(agent)).
		Render(agent)
}

// Label renders the badge followed by the colored name.
func Label(ctx *context.ProgramContext, agent string) string {
	if ctx != nil && !ctx.ShowInitials() {
		return Name(ctx, agent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, Badge(ctx, agent), " ", Name(ctx, agent))
}
