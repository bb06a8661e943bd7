// Package settingsform provides the settings form component.
package settingsform

import (
	"fmt"
	"strconv"
	"strings"

	"agentchat/config"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"
	"agentchat/internal/tui/keys"
	"agentchat/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SettingType represents the type of a setting.
type SettingType int

const (
	TypeSelect SettingType = iota
	TypeToggle
	TypeNumber
	TypeText
)

// Setting represents a single setting.
type Setting struct {
	Key         string
	Label       string
	Description string
	Type        SettingType
	Value       interface{}
	Options     []string

	// Number bounds and arrow-key step
	Min, Max, Step int
}

// Category represents a group of settings.
type Category struct {
	Name     string
	Icon     string
	Settings []Setting
}

// Model represents the settings form component.
type Model struct {
	ctx           *context.ProgramContext
	categories    []Category
	categoryIndex int
	settingIndex  int
	editing       bool
	textInput     textinput.Model
	dimensions    constants.Dimensions
}

// New creates a new settings form model.
func New(ctx *context.ProgramContext) Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30

	m := Model{
		ctx:       ctx,
		textInput: ti,
	}

	m.buildCategories()
	return m
}

func (m *Model) buildCategories() {
	if m.ctx == nil || m.ctx.AppSettings == nil {
		return
	}

	settings := m.ctx.AppSettings

	m.categories = []Category{
		{
			Name: "User Interface",
			Icon: constants.SettingIcon,
			Settings: []Setting{
				{
					Key:         "ui.theme",
					Label:       "Theme",
					Description: "Color theme for the TUI",
					Type:        TypeSelect,
					Value:       settings.UI.Theme,
					Options:     config.GetThemeOptions(),
				},
				{
					Key:         "ui.status_bar",
					Label:       "Status Bar",
					Description: "Show the key help and status line at the bottom",
					Type:        TypeToggle,
					Value:       settings.UI.ShowStatusBar,
				},
				{
					Key:         "ui.initials",
					Label:       "Avatar Badges",
					Description: "Show agent initials next to each message",
					Type:        TypeToggle,
					Value:       settings.UI.ShowInitials,
				},
			},
		},
		{
			Name: "Transcript",
			Icon: constants.ChatIcon,
			Settings: []Setting{
				{
					Key:         "transcript.default_role",
					Label:       "Default Role",
					Description: "Author of plain text that is not a multi-agent payload",
					Type:        TypeText,
					Value:       settings.Transcript.DefaultRole,
				},
				{
					Key:         "transcript.wrap_width",
					Label:       "Wrap Width",
					Description: fmt.Sprintf("Wrap message text at this column, 0 uses the window (0-%d)", config.MaxWrapWidth),
					Type:        TypeNumber,
					Value:       settings.Transcript.WrapWidth,
					Min:         0,
					Max:         config.MaxWrapWidth,
					Step:        10,
				},
				{
					Key:         "transcript.history_limit",
					Label:       "Recent Limit",
					Description: "How many opened transcripts to remember, 0 keeps all (0-500)",
					Type:        TypeNumber,
					Value:       settings.Transcript.HistoryLimit,
					Min:         0,
					Max:         500,
					Step:        1,
				},
			},
		},
	}
}

// Init initializes the settings form.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditing(msg)
		}
		return m.handleNavigation(msg)
	}
	return m, nil
}

func (m Model) handleNavigation(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.Keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, keys.Keys.Enter):
		return m.startEditing()
	case key.Matches(msg, keys.Keys.Left):
		return m, m.adjustValue(-1)
	case key.Matches(msg, keys.Keys.Right):
		return m, m.adjustValue(1)
	case key.Matches(msg, keys.Keys.Save):
		return m, m.save()
	}
	return m, nil
}

func (m Model) handleEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.finishEditing()
	case "esc":
		m.editing = false
		m.textInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	if len(m.categories) == 0 {
		return
	}

	category := m.categories[m.categoryIndex]
	newIndex := m.settingIndex + delta

	if newIndex < 0 {
		if m.categoryIndex > 0 {
			m.categoryIndex--
			m.settingIndex = len(m.categories[m.categoryIndex].Settings) - 1
		}
	} else if newIndex >= len(category.Settings) {
		if m.categoryIndex < len(m.categories)-1 {
			m.categoryIndex++
			m.settingIndex = 0
		}
	} else {
		m.settingIndex = newIndex
	}
}

func (m *Model) adjustValue(delta int) tea.Cmd {
	setting := m.getCurrentSetting()
	if setting == nil {
		return nil
	}

	switch setting.Type {
	case TypeSelect:
		current := setting.Value.(string)
		idx := 0
		for i, opt := range setting.Options {
			if opt == current {
				idx = i
				break
			}
		}
		idx = (idx + delta + len(setting.Options)) % len(setting.Options)
		m.updateSettingValue(setting.Key, setting.Options[idx])

	case TypeToggle:
		m.updateSettingValue(setting.Key, !setting.Value.(bool))

	case TypeNumber:
		step := max(1, setting.Step)
		m.updateSettingValue(setting.Key, clamp(setting.Value.(int)+delta*step, setting.Min, setting.Max))

	default:
		return nil
	}

	m.buildCategories()
	return m.save()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// save writes the settings to disk and reports the outcome as a message.
func (m *Model) save() tea.Cmd {
	if m.ctx == nil || m.ctx.AppSettings == nil {
		return nil
	}
	dir := m.ctx.DataDir
	snapshot := *m.ctx.AppSettings
	return func() tea.Msg {
		if err := config.SaveAppSettings(dir, &snapshot); err != nil {
			return constants.SettingsErrorMsg{Err: err}
		}
		return constants.SettingsSavedMsg{}
	}
}

func (m Model) startEditing() (Model, tea.Cmd) {
	setting := m.getCurrentSetting()
	if setting == nil {
		return m, nil
	}

	switch setting.Type {
	case TypeText, TypeNumber:
		m.editing = true
		m.textInput.SetValue(fmt.Sprintf("%v", setting.Value))
		m.textInput.CursorEnd()
		return m, tea.Batch(m.textInput.Focus(), textinput.Blink)
	case TypeSelect, TypeToggle:
		return m, m.adjustValue(1)
	}
	return m, nil
}

func (m *Model) finishEditing() tea.Cmd {
	m.editing = false
	m.textInput.Blur()

	setting := m.getCurrentSetting()
	if setting == nil {
		return nil
	}

	value := strings.TrimSpace(m.textInput.Value())

	switch setting.Type {
	case TypeText:
		if value == "" {
			return statusCmd(setting.Label+" cannot be empty", true)
		}
		m.updateSettingValue(setting.Key, value)
	case TypeNumber:
		num, err := strconv.Atoi(value)
		if err != nil {
			return statusCmd(fmt.Sprintf("%s must be a number", setting.Label), true)
		}
		m.updateSettingValue(setting.Key, clamp(num, setting.Min, setting.Max))
	default:
		return nil
	}

	m.buildCategories()
	return m.save()
}

func statusCmd(message string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return constants.StatusMsg{Message: message, IsError: isError}
	}
}

func (m *Model) getCurrentSetting() *Setting {
	if m.categoryIndex >= len(m.categories) {
		return nil
	}
	category := m.categories[m.categoryIndex]
	if m.settingIndex >= len(category.Settings) {
		return nil
	}
	return &category.Settings[m.settingIndex]
}

func (m *Model) updateSettingValue(key string, value interface{}) {
	if m.ctx == nil || m.ctx.AppSettings == nil {
		return
	}

	settings := m.ctx.AppSettings

	switch key {
	case "ui.theme":
		settings.UI.Theme = value.(string)
		m.ctx.UpdateTheme(settings.UI.Theme)
	case "ui.status_bar":
		settings.UI.ShowStatusBar = value.(bool)
		m.ctx.RefreshLayout()
	case "ui.initials":
		settings.UI.ShowInitials = value.(bool)
	case "transcript.default_role":
		settings.Transcript.DefaultRole = value.(string)
	case "transcript.wrap_width":
		settings.Transcript.WrapWidth = value.(int)
	case "transcript.history_limit":
		settings.Transcript.HistoryLimit = value.(int)
	}
}

// View renders the settings form.
func (m Model) View() string {
	if m.ctx == nil {
		return ""
	}

	var sections []string

	title := m.ctx.Styles.Common.AccentTextStyle.Render("Settings")
	subtitle := m.ctx.Styles.Common.FaintTextStyle.Render("Left/Right to change, Enter to edit, changes save automatically")
	sections = append(sections, title, subtitle, "")

	globalIdx := 0
	currentGlobalIdx := m.getGlobalIndex()

	for catIdx, category := range m.categories {
		catStyle := m.ctx.Styles.Settings.Category
		if catIdx == m.categoryIndex {
			catStyle = catStyle.Foreground(theme.LogoColor)
		}
		sections = append(sections, catStyle.Render(fmt.Sprintf("%s %s", category.Icon, category.Name)))

		for _, setting := range category.Settings {
			sections = append(sections, m.renderSetting(setting, globalIdx == currentGlobalIdx))
			globalIdx++
		}
		sections = append(sections, "")
	}

	if m.ctx.DataDir != "" {
		sections = append(sections, m.ctx.Styles.Common.FaintTextStyle.Render(
			"Agent color overrides: edit agents.colors in "+config.AppSettingsFileName))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.dimensions.Width).
		Height(m.dimensions.Height).
		MaxHeight(m.dimensions.Height).
		Render(content)
}

func (m Model) getGlobalIndex() int {
	idx := 0
	for i := 0; i < m.categoryIndex; i++ {
		idx += len(m.categories[i].Settings)
	}
	return idx + m.settingIndex
}

func (m Model) renderSetting(setting Setting, isSelected bool) string {
	cursor := "  "
	if isSelected {
		cursor = m.ctx.Styles.Settings.Cursor.Render(constants.Cursor + " ")
	}

	labelStyle := m.ctx.Styles.Settings.Label
	if isSelected {
		labelStyle = labelStyle.Foreground(theme.LogoColor).Bold(true)
	}
	label := labelStyle.Render(setting.Label + ":")

	var value string
	if m.editing && isSelected {
		value = m.textInput.View()
	} else {
		valueStyle := m.ctx.Styles.Settings.Value
		if isSelected {
			valueStyle = m.ctx.Styles.Settings.Selected
		}
		value = valueStyle.Render(formatValue(setting))
	}

	hint := ""
	if isSelected {
		hintStyle := m.ctx.Styles.Common.FaintTextStyle
		switch {
		case m.editing:
			hint = hintStyle.Render("  (Enter to apply, Esc to cancel)")
		case setting.Type == TypeText:
			hint = hintStyle.Render("  (Enter to edit)")
		default:
			hint = hintStyle.Render("  (Arrows to change, Enter to edit)")
		}
	}

	line := cursor + label + " " + value + hint
	desc := m.ctx.Styles.Settings.Description.Render(setting.Description)

	return line + "\n" + desc
}

func formatValue(setting Setting) string {
	switch setting.Type {
	case TypeToggle:
		if setting.Value.(bool) {
			return constants.ToggleOn + " Enabled"
		}
		return constants.ToggleOff + " Disabled"
	case TypeSelect:
		return setting.Value.(string)
	case TypeNumber:
		if setting.Value.(int) == 0 && setting.Key == "transcript.wrap_width" {
			return "0 (window)"
		}
		return strconv.Itoa(setting.Value.(int))
	default:
		return fmt.Sprintf("%v", setting.Value)
	}
}

// SetDimensions sets the form dimensions.
func (m *Model) SetDimensions(dimensions constants.Dimensions) {
	m.dimensions = dimensions
}

// UpdateProgramContext updates the context.
func (m *Model) UpdateProgramContext(ctx *context.ProgramContext) {
	m.ctx = ctx
	m.buildCategories()
}

// GetSettings returns the current settings.
func (m Model) GetSettings() *config.AppSettings {
	if m.ctx != nil {
		return m.ctx.AppSettings
	}
	return nil
}

// IsEditing returns true if currently editing a field.
func (m Model) IsEditing() bool {
	return m.editing
}

// IsAtTop returns true if the focus is at the first field.
func (m Model) IsAtTop() bool {
	return m.categoryIndex == 0 && m.settingIndex == 0 && !m.editing
}

// ConsumesKey returns true if the component wants to handle the key message
// exclusively. While a field is being edited every key but ctrl+c goes to it.
func (m Model) ConsumesKey(msg tea.KeyMsg) bool {
	if m.editing {
		return msg.String() != "ctrl+c"
	}
	return key.Matches(msg, keys.Keys.Left, keys.Keys.Right)
}
