package header

import (
	"strings"
	"testing"

	"agentchat/config"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"
	"agentchat/transcript"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	header := New(ctx)

	if header.ctx == nil {
		t.Error("ctx should not be nil")
	}
}

func TestNew_NilContext(t *testing.T) {
	header := New(nil)

	// Should not panic
	if header.ctx != nil {
		t.Error("ctx should be nil when passed nil")
	}
}

func TestModel_Height(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	header := New(ctx)

	if header.Height() != constants.HeaderHeight {
		t.Errorf("Height = %d, want %d", header.Height(), constants.HeaderHeight)
	}
}

func TestModel_View_NilContext(t *testing.T) {
	header := New(nil)

	view := header.View()
	if view != "" {
		t.Error("View should return empty string with nil context")
	}
}

func TestModel_View_Normal(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 100, Height: 40})
	header := New(ctx)

	view := header.View()
	if view == "" {
		t.Error("View should not be empty")
	}
}

func TestModel_UpdateProgramContext(t *testing.T) {
	header := New(nil)

	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	header.UpdateProgramContext(ctx)

	if header.ctx == nil {
		t.Error("ctx should not be nil after update")
	}
}

func TestModel_View_DifferentViews(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 100, Height: 40})

	for _, view := range constants.Views {
		ctx.SetView(view)
		header := New(ctx)

		rendered := header.View()
		if rendered == "" {
			t.Errorf("View should not be empty for view type %v", view)
		}
	}
}


func TestModel_View_ShowsTabsAndCounts(t *testing.T) {
	tr := transcript.FromText("chat.json", `[{"role":"RedTeamRick","content":"a"},{"role":"BlueTeamBeth","content":"b"},{"role":"RedTeamRick","content":"c"}]`, "AI_Assistant")
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), tr)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 160, Height: 40})
	header := New(ctx)

	view := header.View()
	for _, want := range []string{"Transcript", "(3)", "Agents", "(2)", "Recent", "Settings", constants.Logo} {
		if !strings.Contains(view, want) {
			t.Errorf("header should contain %q, got %q", want, view)
		}
	}
}

func TestModel_View_NarrowDropsSource(t *testing.T) {
	tr := transcript.FromText("/some/really/long/path/to/a/transcript/file.json", "hello", "AI_Assistant")
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), tr)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 70, Height: 20})

	view := New(ctx).View()
	if strings.Contains(view, "transcript/file.json") {
		t.Error("source should be dropped when the header is too narrow")
	}
}
