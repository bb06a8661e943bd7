// Package config handles settings and history files for agentchat.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"agentchat/agents"

	"gopkg.in/yaml.v3"
)

// AppSettings represents app-level settings stored in agentchat.yaml
type AppSettings struct {
	// UI settings
	UI UISettings `yaml:"ui"`

	// Transcript settings
	Transcript TranscriptSettings `yaml:"transcript"`

	// Agent display settings
	Agents AgentSettings `yaml:"agents"`
}

// UISettings contains UI-related settings
type UISettings struct {
	// ShowStatusBar shows the status bar in the TUI
	ShowStatusBar bool `yaml:"show_status_bar"`

	// Theme is the color theme for the TUI
	Theme string `yaml:"theme"`

	// ShowInitials renders avatar badges next to messages
	ShowInitials bool `yaml:"show_initials"`
}

// TranscriptSettings contains settings for loading and rendering transcripts
type TranscriptSettings struct {
	// DefaultRole is the author of plain-text (non multi-agent) content
	DefaultRole string `yaml:"default_role"`

	// WrapWidth wraps message content at this width (0 = terminal width)
	WrapWidth int `yaml:"wrap_width"`

	// HistoryLimit is how many recent transcripts to remember
	HistoryLimit int `yaml:"history_limit"`
}

// AgentSettings contains per-agent display overrides
type AgentSettings struct {
	// Colors overrides the built-in agent colors, e.g. {"claude": "#d2b48c"}
	Colors map[string]string `yaml:"colors,omitempty"`
}

// AppSettingsFileName is the name of the app settings file
const AppSettingsFileName = "agentchat.yaml"

// MaxWrapWidth bounds TranscriptSettings.WrapWidth.
const MaxWrapWidth = 400

// DefaultAppSettings returns the default app settings
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		UI: UISettings{
			ShowStatusBar: true,
			Theme:         "default",
			ShowInitials:  true,
		},
		Transcript: TranscriptSettings{
			DefaultRole:  agents.AssistantName,
			WrapWidth:    0,
			HistoryLimit: 20,
		},
	}
}

// LoadAppSettings loads app settings from agentchat.yaml in the specified directory.
// Returns default settings if the file doesn't exist.
func LoadAppSettings(dir string) (*AppSettings, string, error) {
	configFile := AppSettingsFileName
	if dir != "" {
		configFile = filepath.Join(dir, configFile)
	}

	absPath, err := filepath.Abs(configFile)
	if err != nil {
		absPath = configFile
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppSettings(), absPath, nil
		}
		return nil, absPath, err
	}

	settings := DefaultAppSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, absPath, fmt.Errorf("invalid %s: %w", AppSettingsFileName, err)
	}

	return settings, absPath, nil
}

// SaveAppSettings saves app settings to agentchat.yaml in the specified directory.
func SaveAppSettings(dir string, settings *AppSettings) error {
	configFile := AppSettingsFileName
	if dir != "" {
		configFile = filepath.Join(dir, configFile)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	header := "# agentchat settings\n# This file is auto-generated. Edit carefully.\n\n"
	return os.WriteFile(configFile, []byte(header+string(data)), 0644)
}

// Validate reports every invalid value in the settings.
func (s *AppSettings) Validate() error {
	var errs []error

	if !isThemeOption(s.UI.Theme) {
		errs = append(errs, fmt.Errorf("ui.theme: unknown theme %q", s.UI.Theme))
	}
	if s.Transcript.WrapWidth < 0 || s.Transcript.WrapWidth > MaxWrapWidth {
		errs = append(errs, fmt.Errorf("transcript.wrap_width: %d out of range 0-%d", s.Transcript.WrapWidth, MaxWrapWidth))
	}
	if s.Transcript.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("transcript.history_limit: must not be negative"))
	}
	for name, color := range s.Agents.Colors {
		if _, _, _, ok := ParseHexColor(color); !ok {
			errs = append(errs, fmt.Errorf("agents.colors.%s: invalid color %q", name, color))
		}
	}

	return errors.Join(errs...)
}

// AgentColor returns the configured override color for an agent, if any valid one exists.
func (s *AppSettings) AgentColor(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	color, ok := s.Agents.Colors[name]
	if !ok {
		return "", false
	}
	if _, _, _, valid := ParseHexColor(color); !valid {
		return "", false
	}
	return color, true
}

// GetThemeOptions returns the available theme options
func GetThemeOptions() []string {
	return []string{"default", "dark", "light"}
}

func isThemeOption(name string) bool {
	for _, opt := range GetThemeOptions() {
		if opt == name {
			return true
		}
	}
	return false
}
