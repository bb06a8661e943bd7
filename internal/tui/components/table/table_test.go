package table

import (
	"strings"
	"testing"

	"agentchat/config"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"

	"github.com/charmbracelet/lipgloss"
)

func TestNew(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	columns := []Column{
		{Title: "Agent", Width: 20},
		{Title: "Messages", Grow: true},
	}

	table := New(ctx, columns)

	if table.ctx == nil {
		t.Error("ctx should not be nil")
	}
	if len(table.columns) != 2 {
		t.Errorf("columns = %d, want 2", len(table.columns))
	}
	if table.cursor != 0 {
		t.Errorf("cursor = %d, want 0", table.cursor)
	}
}

func TestModel_SetRows(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Test"}})

	rows := []Row{
		{"Row 1"},
		{"Row 2"},
		{"Row 3"},
	}
	table.SetRows(rows)

	if table.NumRows() != 3 {
		t.Errorf("NumRows = %d, want 3", table.NumRows())
	}
}

func TestModel_CursorNavigation(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Test"}})
	table.SetDimensions(constants.Dimensions{Width: 80, Height: 20})
	table.SetRows([]Row{{"1"}, {"2"}, {"3"}})

	// Test cursor down
	table.CursorDown()
	if table.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", table.Cursor())
	}

	// Test cursor down again
	table.CursorDown()
	if table.Cursor() != 2 {
		t.Errorf("Cursor = %d, want 2", table.Cursor())
	}

	// Test cursor at end
	table.CursorDown()
	if table.Cursor() != 2 {
		t.Errorf("Cursor should stay at 2, got %d", table.Cursor())
	}

	// Test cursor up
	table.CursorUp()
	if table.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", table.Cursor())
	}

	// Test cursor first
	table.CursorFirst()
	if table.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", table.Cursor())
	}

	// Test cursor last
	table.CursorLast()
	if table.Cursor() != 2 {
		t.Errorf("Cursor = %d, want 2", table.Cursor())
	}
}

func TestModel_SelectedRow(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Test"}})
	table.SetRows([]Row{{"Row 1"}, {"Row 2"}})

	selected := table.SelectedRow()
	if selected == nil || selected[0] != "Row 1" {
		t.Errorf("SelectedRow = %v, want [Row 1]", selected)
	}

	table.CursorDown()
	selected = table.SelectedRow()
	if selected == nil || selected[0] != "Row 2" {
		t.Errorf("SelectedRow = %v, want [Row 2]", selected)
	}
}

func TestModel_Loading(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Test"}})

	if table.IsLoading() {
		t.Error("Table should not be loading initially")
	}

	table.SetLoading(true, "Loading...")
	if !table.IsLoading() {
		t.Error("Table should be loading after SetLoading(true)")
	}

	table.SetLoading(false, "")
	if table.IsLoading() {
		t.Error("Table should not be loading after SetLoading(false)")
	}
}

func TestModel_EmptyRows(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Test"}})
	table.SetDimensions(constants.Dimensions{Width: 80, Height: 20})

	// Empty table
	if table.NumRows() != 0 {
		t.Errorf("NumRows = %d, want 0", table.NumRows())
	}

	// SelectedRow on empty table
	if table.SelectedRow() != nil {
		t.Error("SelectedRow should be nil on empty table")
	}
}

func TestModel_SetDimensions(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Test"}})

	dims := constants.Dimensions{Width: 100, Height: 30}
	table.SetDimensions(dims)

	if table.dimensions.Width != 100 {
		t.Errorf("dimensions.Width = %d, want 100", table.dimensions.Width)
	}
	if table.dimensions.Height != 30 {
		t.Errorf("dimensions.Height = %d, want 30", table.dimensions.Height)
	}
}


func TestModel_ColumnWidths(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{
		{Title: "Badge", Width: 6},
		{Title: "Agent", Grow: true},
		{Title: "Color", Width: 10},
		{Title: "Notes", Grow: true},
	})
	table.SetDimensions(constants.Dimensions{Width: 56, Height: 10})

	got := table.columnWidths()
	want := []int{6, 20, 10, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("columnWidths()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestModel_ColumnWidths_Narrow(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "A", Width: 30}, {Title: "B", Grow: true}})
	table.SetDimensions(constants.Dimensions{Width: 10, Height: 10})

	if got := table.columnWidths()[1]; got != 0 {
		t.Errorf("grow width = %d, want 0 when fixed columns overflow", got)
	}
}

func TestModel_Paging(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Test"}})
	// Five visible rows below the header
	table.SetDimensions(constants.Dimensions{Width: 40, Height: constants.TableHeaderHeight + 5})

	rows := make([]Row, 12)
	for i := range rows {
		rows[i] = Row{strings.Repeat("x", i+1)}
	}
	table.SetRows(rows)

	table.PageDown()
	if table.Cursor() != 5 {
		t.Errorf("Cursor after PageDown = %d, want 5", table.Cursor())
	}
	if table.offset != 1 {
		t.Errorf("offset after PageDown = %d, want 1", table.offset)
	}

	table.PageDown()
	table.PageDown()
	if table.Cursor() != 11 {
		t.Errorf("Cursor should clamp to last row, got %d", table.Cursor())
	}
	if table.offset != 7 {
		t.Errorf("offset at end = %d, want 7", table.offset)
	}

	table.PageUp()
	if table.Cursor() != 6 {
		t.Errorf("Cursor after PageUp = %d, want 6", table.Cursor())
	}

	table.CursorFirst()
	if table.Cursor() != 0 || table.offset != 0 {
		t.Errorf("CursorFirst = (%d, %d), want (0, 0)", table.Cursor(), table.offset)
	}
}

func TestModel_SetRowsShrinks(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Test"}})
	table.SetDimensions(constants.Dimensions{Width: 40, Height: 10})
	table.SetRows([]Row{{"1"}, {"2"}, {"3"}})
	table.CursorLast()

	table.SetRows([]Row{{"1"}})
	if table.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0 after rows shrink", table.Cursor())
	}
	if table.offset != 0 {
		t.Errorf("offset = %d, want 0 after rows shrink", table.offset)
	}
}

func TestModel_View(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	table := New(ctx, []Column{{Title: "Agent", Width: 20}, {Title: "Count", Width: 8, Align: lipgloss.Right}})
	table.SetDimensions(constants.Dimensions{Width: 40, Height: 10})

	table.SetEmptyMessage("No agents")
	if view := table.View(); !strings.Contains(view, "No agents") {
		t.Error("View should show the empty message")
	}

	table.SetRows([]Row{{"RedTeamRick", "3"}})
	view := table.View()
	for _, want := range []string{"Agent", "Count", "RedTeamRick", "3"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestModel_View_NilContext(t *testing.T) {
	table := New(nil, []Column{{Title: "Test"}})
	if table.View() != "" {
		t.Error("View should be empty without a context")
	}
}
