// Package constants provides shared constants for the TUI.
package constants

// Dimensions represents width and height measurements.
type Dimensions struct {
	Width  int
	Height int
}

// Layout constants
const (
	HeaderHeight       = 1
	StatusBarHeight    = 1
	FullHelpHeight     = 5
	TabsContentHeight  = 1
	SidebarWidth       = 50
	MainContentPadding = 1
	TableHeaderHeight  = 2
	BadgeWidth         = 4
	MessageGap         = 1
)

// Icons and glyphs
const (
	Ellipsis = "..."

	// Status icons
	SuccessIcon = "[+]"
	FailureIcon = "[x]"
	WarningIcon = "[!]"
	InfoIcon    = "[i]"

	// Navigation icons
	Cursor = ">"

	// App icons
	ChatIcon    = "#"
	AgentIcon   = "@"
	RecentIcon  = "~"
	SettingIcon = "*"

	// Toggle icons
	ToggleOn  = "[X]"
	ToggleOff = "[ ]"

	// Border chars
	BorderVertical = "|"

	// Logo
	Logo = "agentchat"
)

// View types
type ViewType int

const (
	TranscriptView ViewType = iota
	AgentsView
	RecentView
	SettingsView
)

// Views lists the views in tab order.
var Views = []ViewType{TranscriptView, AgentsView, RecentView, SettingsView}

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case TranscriptView:
		return "Transcript"
	case AgentsView:
		return "Agents"
	case RecentView:
		return "Recent"
	case SettingsView:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Icon returns the icon for the view type.
func (v ViewType) Icon() string {
	switch v {
	case TranscriptView:
		return ChatIcon
	case AgentsView:
		return AgentIcon
	case RecentView:
		return RecentIcon
	case SettingsView:
		return SettingIcon
	default:
		return ""
	}
}

// Next returns the view after v in tab order, wrapping around.
func (v ViewType) Next() ViewType {
	return Views[(v.index()+1)%len(Views)]
}

// Prev returns the view before v in tab order, wrapping around.
func (v ViewType) Prev() ViewType {
	return Views[(v.index()+len(Views)-1)%len(Views)]
}

func (v ViewType) index() int {
	for i, view := range Views {
		if view == v {
			return i
		}
	}
	return 0
}
