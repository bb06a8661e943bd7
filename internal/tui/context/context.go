// Package context provides shared context for TUI components.
package context

import (
	"agentchat/config"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/theme"
	"agentchat/transcript"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgramContext holds shared state accessible by all TUI components.
type ProgramContext struct {
	// Screen dimensions
	ScreenWidth  int
	ScreenHeight int

	// Content area dimensions (excluding headers/footers)
	MainContentWidth  int
	MainContentHeight int

	// Configuration
	AppSettings *config.AppSettings
	DataDir     string

	// Loaded data
	Transcript *transcript.Transcript
	History    *config.History

	// UI State
	View          constants.ViewType
	SidebarOpen   bool
	HelpExpanded  bool
	Error         error
	StatusMessage string
	StatusIsError bool

	// Theme
	Theme  theme.Theme
	Styles Styles

	// Version info
	Version string
}

// NewProgramContext creates a new program context with default values.
func NewProgramContext(dataDir string, appSettings *config.AppSettings, t *transcript.Transcript) *ProgramContext {
	if appSettings == nil {
		appSettings = config.DefaultAppSettings()
	}
	th := theme.GetTheme(appSettings.UI.Theme)
	ctx := &ProgramContext{
		DataDir:     dataDir,
		AppSettings: appSettings,
		Transcript:  t,
		History:     &config.History{},
		View:        constants.TranscriptView,
		Theme:       th,
		Version:     "dev",
	}
	ctx.Styles = InitStyles(th)
	return ctx
}

// UpdateWindowSize updates the context when window size changes.
func (ctx *ProgramContext) UpdateWindowSize(msg tea.WindowSizeMsg) {
	ctx.ScreenWidth = msg.Width
	ctx.ScreenHeight = msg.Height
	ctx.syncContentDimensions()
}

// syncContentDimensions calculates main content area dimensions.
func (ctx *ProgramContext) syncContentDimensions() {
	ctx.MainContentHeight = ctx.ScreenHeight - constants.HeaderHeight
	if ctx.AppSettings != nil && ctx.AppSettings.UI.ShowStatusBar {
		if ctx.HelpExpanded {
			ctx.MainContentHeight -= constants.FullHelpHeight
		} else {
			ctx.MainContentHeight -= constants.StatusBarHeight
		}
	}
	ctx.MainContentWidth = ctx.ScreenWidth

	if ctx.SidebarOpen {
		ctx.MainContentWidth = ctx.ScreenWidth - constants.SidebarWidth
	}
}

// ToggleSidebar toggles the sidebar visibility.
func (ctx *ProgramContext) ToggleSidebar() {
	ctx.SidebarOpen = !ctx.SidebarOpen
	ctx.syncContentDimensions()
}

// ToggleHelp toggles the expanded help view.
func (ctx *ProgramContext) ToggleHelp() {
	ctx.HelpExpanded = !ctx.HelpExpanded
	ctx.syncContentDimensions()
}

// SetView changes the current view.
func (ctx *ProgramContext) SetView(view constants.ViewType) {
	ctx.View = view
	ctx.ClearStatus()
}

// SetStatus sets the status message.
func (ctx *ProgramContext) SetStatus(message string, isError bool) {
	ctx.StatusMessage = message
	ctx.StatusIsError = isError
}

// ClearStatus clears the status message.
func (ctx *ProgramContext) ClearStatus() {
	ctx.StatusMessage = ""
	ctx.StatusIsError = false
	ctx.Error = nil
}

// SetError sets an error state.
func (ctx *ProgramContext) SetError(err error) {
	ctx.Error = err
	if err != nil {
		ctx.StatusMessage = err.Error()
		ctx.StatusIsError = true
	}
}

// UpdateTheme updates the theme.
func (ctx *ProgramContext) UpdateTheme(themeName string) {
	ctx.Theme = theme.GetTheme(themeName)
	ctx.Styles = InitStyles(ctx.Theme)
}

// RefreshLayout recomputes content dimensions after a settings change.
func (ctx *ProgramContext) RefreshLayout() {
	ctx.syncContentDimensions()
}

// SetTranscript replaces the displayed transcript.
func (ctx *ProgramContext) SetTranscript(t *transcript.Transcript) {
	ctx.Transcript = t
}

// AgentColor returns the display color for an agent under the current settings.
func (ctx *ProgramContext) AgentColor(name string) lipgloss.Color {
	return theme.AgentColor(name, ctx.AppSettings)
}

// WrapWidth returns the width message content should wrap at.
func (ctx *ProgramContext) WrapWidth(available int) int {
	if ctx.AppSettings != nil {
		if w := ctx.AppSettings.Transcript.WrapWidth; w > 0 && w < available {
			return w
		}
	}
	return available
}

// ShowInitials reports whether avatar badges should be rendered.
func (ctx *ProgramContext) ShowInitials() bool {
	return ctx.AppSettings == nil || ctx.AppSettings.UI.ShowInitials
}
