package constants

import (
	"agentchat/transcript"

	tea "github.com/charmbracelet/bubbletea"
)

// SettingsSavedMsg indicates settings were saved successfully.
type SettingsSavedMsg struct{}

// SettingsErrorMsg indicates an error saving settings.
type SettingsErrorMsg struct {
	Err error
}

// TranscriptLoadedMsg carries the result of loading a transcript.
type TranscriptLoadedMsg struct {
	Path       string
	Transcript *transcript.Transcript
	Err        error
}

// ClearStatusMsg clears the status message.
type ClearStatusMsg struct{}

// StatusMsg sets a status message.
type StatusMsg struct {
	Message string
	IsError bool
}

// WindowSizeMsg wraps tea.WindowSizeMsg for internal use.
type WindowSizeMsg = tea.WindowSizeMsg
