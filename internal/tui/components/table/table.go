// Package table provides a reusable table component for the TUI.
package table

import (
	"strings"

	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column represents a table column.
type Column struct {
	Title string
	Width int
	Grow  bool

	// Align positions the cell content; the zero value is left aligned.
	Align lipgloss.Position
}

// Row represents a table row. Cells may already carry their own styling,
// e.g. an avatar badge.
type Row []string

// Model represents the table component.
type Model struct {
	ctx            *context.ProgramContext
	columns        []Column
	rows           []Row
	cursor         int
	offset         int
	isLoading      bool
	loadingMessage string
	emptyMessage   string
	spinner        spinner.Model
	dimensions     constants.Dimensions
}

// New creates a new table model.
func New(ctx *context.ProgramContext, columns []Column) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:            ctx,
		columns:        columns,
		rows:           []Row{},
		loadingMessage: "Loading...",
		emptyMessage:   "No items",
		spinner:        s,
	}
	m.UpdateProgramContext(ctx)
	return m
}

// Init initializes the table.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
	}

	return m, cmd
}

// View renders the table.
func (m Model) View() string {
	if m.ctx == nil {
		return ""
	}

	widths := m.columnWidths()
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(widths), m.renderBody(widths))
}

// columnWidths resolves the width of every column; grow columns share what
// the fixed ones leave over.
func (m Model) columnWidths() []int {
	fixed, growCount := 0, 0
	for _, col := range m.columns {
		if col.Grow {
			growCount++
		} else {
			fixed += col.Width
		}
	}

	growWidth := 0
	if growCount > 0 {
		growWidth = max(0, m.dimensions.Width-fixed) / growCount
	}

	widths := make([]int, len(m.columns))
	for i, col := range m.columns {
		widths[i] = col.Width
		if col.Grow {
			widths[i] = growWidth
		}
	}
	return widths
}

func (m Model) visibleRows() int {
	return max(1, m.dimensions.Height-constants.TableHeaderHeight)
}

func (m Model) renderHeader(widths []int) string {
	cells := make([]string, 0, len(m.columns))
	for i, col := range m.columns {
		cells = append(cells, m.ctx.Styles.Table.TitleCellStyle.
			Width(widths[i]).
			MaxWidth(widths[i]).
			Align(col.Align).
			Render(col.Title))
	}

	return m.ctx.Styles.Table.HeaderStyle.
		Width(m.dimensions.Width).
		Height(constants.TableHeaderHeight).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m Model) renderBody(widths []int) string {
	height := m.dimensions.Height - constants.TableHeaderHeight
	bodyStyle := lipgloss.NewStyle().
		Height(max(0, height)).
		Width(m.dimensions.Width)

	if m.isLoading {
		return lipgloss.Place(
			m.dimensions.Width,
			height,
			lipgloss.Center,
			lipgloss.Center,
			m.spinner.View()+" "+m.loadingMessage,
		)
	}

	if len(m.rows) == 0 {
		return bodyStyle.Render(
			lipgloss.Place(
				m.dimensions.Width,
				height,
				lipgloss.Center,
				lipgloss.Center,
				m.ctx.Styles.Table.EmptyState.Render(m.emptyMessage),
			),
		)
	}

	var rendered []string
	for i := m.offset; i < len(m.rows) && i-m.offset < m.visibleRows(); i++ {
		rendered = append(rendered, m.renderRow(i, widths))
	}

	return bodyStyle.Render(strings.Join(rendered, "\n"))
}

func (m Model) renderRow(index int, widths []int) string {
	if index >= len(m.rows) {
		return ""
	}

	row := m.rows[index]
	style := m.ctx.Styles.Table.CellStyle
	if index == m.cursor {
		style = m.ctx.Styles.Table.SelectedCellStyle
	}

	cells := make([]string, 0, len(m.columns))
	for i, col := range m.columns {
		content := ""
		if i < len(row) {
			content = row[i]
		}
		cells = append(cells, style.
			Width(widths[i]).
			MaxWidth(widths[i]).
			Align(col.Align).
			Render(content))
	}

	return m.ctx.Styles.Table.RowStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// SetRows sets the table rows.
func (m *Model) SetRows(rows []Row) {
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = max(0, len(rows)-1)
	}
	m.clampOffset()
}

// SetDimensions sets the table dimensions.
func (m *Model) SetDimensions(dimensions constants.Dimensions) {
	m.dimensions = dimensions
	m.clampOffset()
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(loading bool, message string) {
	m.isLoading = loading
	if message != "" {
		m.loadingMessage = message
	}
}

// SetEmptyMessage sets the empty state message.
func (m *Model) SetEmptyMessage(message string) {
	m.emptyMessage = message
}

// CursorUp moves the cursor up.
func (m *Model) CursorUp() {
	m.SetCursor(m.cursor - 1)
}

// CursorDown moves the cursor down.
func (m *Model) CursorDown() {
	m.SetCursor(m.cursor + 1)
}

// PageUp moves the cursor up by one screen of rows.
func (m *Model) PageUp() {
	m.SetCursor(m.cursor - m.visibleRows())
}

// PageDown moves the cursor down by one screen of rows.
func (m *Model) PageDown() {
	m.SetCursor(m.cursor + m.visibleRows())
}

// CursorFirst moves cursor to first row.
func (m *Model) CursorFirst() {
	m.SetCursor(0)
}

// CursorLast moves cursor to last row.
func (m *Model) CursorLast() {
	m.SetCursor(len(m.rows) - 1)
}

// SetCursor selects the row at index, clamped to the table, and scrolls it
// into view.
func (m *Model) SetCursor(index int) {
	m.cursor = max(0, min(index, len(m.rows)-1))
	m.clampOffset()
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.rows)-visible))
}

// Cursor returns the current cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedRow returns the currently selected row.
func (m Model) SelectedRow() Row {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor]
	}
	return nil
}

// NumRows returns the number of rows.
func (m Model) NumRows() int {
	return len(m.rows)
}

// IsLoading returns the loading state.
func (m Model) IsLoading() bool {
	return m.isLoading
}

// StartSpinner returns the spinner tick command.
func (m Model) StartSpinner() tea.Cmd {
	return m.spinner.Tick
}

// UpdateProgramContext updates the context.
func (m *Model) UpdateProgramContext(ctx *context.ProgramContext) {
	m.ctx = ctx
	if ctx != nil {
		m.spinner.Style = lipgloss.NewStyle().Foreground(ctx.Theme.SecondaryText)
	}
}
