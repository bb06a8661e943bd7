package sidebar

import (
	"strings"
	"testing"

	"agentchat/agents"
	"agentchat/config"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	sidebar := New(ctx)

	if sidebar.ctx == nil {
		t.Error("ctx should not be nil")
	}
	if sidebar.IsOpen {
		t.Error("IsOpen should be false initially")
	}
}

func TestNew_NilContext(t *testing.T) {
	sidebar := New(nil)

	// Should not panic
	if sidebar.ctx != nil {
		t.Error("ctx should be nil when passed nil")
	}
}

func TestModel_Toggle(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	sidebar := New(ctx)

	if sidebar.IsOpen {
		t.Error("Sidebar should start closed")
	}

	sidebar.Toggle()
	if !sidebar.IsOpen {
		t.Error("Sidebar should be open after toggle")
	}

	sidebar.Toggle()
	if sidebar.IsOpen {
		t.Error("Sidebar should be closed after second toggle")
	}
}

func TestModel_OpenClose(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	sidebar := New(ctx)

	sidebar.Open()
	if !sidebar.IsOpen {
		t.Error("Sidebar should be open after Open()")
	}

	sidebar.Close()
	if sidebar.IsOpen {
		t.Error("Sidebar should be closed after Close()")
	}
}

func TestModel_SetContent(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	sidebar := New(ctx)

	sidebar.SetContent("test content")
	if sidebar.content != "test content" {
		t.Errorf("content = %q, want %q", sidebar.content, "test content")
	}
}

func TestModel_SetTitle(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	sidebar := New(ctx)

	sidebar.SetTitle("test title")
	if sidebar.title != "test title" {
		t.Errorf("title = %q, want %q", sidebar.title, "test title")
	}
}

func TestModel_Width(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	sidebar := New(ctx)

	if sidebar.Width() != 0 {
		t.Errorf("Width when closed = %d, want 0", sidebar.Width())
	}

	sidebar.Open()
	if sidebar.Width() != constants.SidebarWidth {
		t.Errorf("Width when open = %d, want %d", sidebar.Width(), constants.SidebarWidth)
	}
}

func TestModel_GetContentWidth(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	sidebar := New(ctx)

	width := sidebar.GetContentWidth()
	if width <= 0 {
		t.Errorf("GetContentWidth = %d, should be positive", width)
	}
	if width >= constants.SidebarWidth {
		t.Error("GetContentWidth should be less than SidebarWidth")
	}
}

func TestModel_View_Closed(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	sidebar := New(ctx)

	view := sidebar.View()
	if view != "" {
		t.Error("View should be empty when sidebar is closed")
	}
}

func TestModel_View_OpenEmpty(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 100, Height: 40})
	sidebar := New(ctx)
	sidebar.UpdateProgramContext(ctx)

	sidebar.Open()
	view := sidebar.View()
	if view == "" {
		t.Error("View should not be empty when sidebar is open")
	}
}

func TestModel_View_OpenWithContent(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 100, Height: 40})
	sidebar := New(ctx)
	sidebar.UpdateProgramContext(ctx)

	sidebar.Open()
	sidebar.SetContent("some content")
	view := sidebar.View()
	if view == "" {
		t.Error("View should not be empty when sidebar has content")
	}
}

func TestModel_UpdateProgramContext(t *testing.T) {
	sidebar := New(nil)

	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 100, Height: 40})
	sidebar.UpdateProgramContext(ctx)

	if sidebar.ctx == nil {
		t.Error("ctx should not be nil after update")
	}
}


func TestModel_ShowMessage(t *testing.T) {
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), nil)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 120, Height: 40})
	sidebar := New(ctx)
	sidebar.UpdateProgramContext(ctx)

	sidebar.ShowMessage(1, 3, agents.AgentMessage{Role: "GreenTeamGary", Content: "Flanking left."})

	if sidebar.title != "Message 2 of 3" {
		t.Errorf("title = %q, want %q", sidebar.title, "Message 2 of 3")
	}
	for _, want := range []string{"GreenTeamGary", "GT", "#16A34A", "14 chars", "Flanking left."} {
		if !strings.Contains(sidebar.content, want) {
			t.Errorf("content should contain %q, got:\n%s", want, sidebar.content)
		}
	}
}

func TestModel_ShowMessage_ColorOverride(t *testing.T) {
	settings := config.DefaultAppSettings()
	settings.Agents.Colors = map[string]string{"claude": "#d2b48c"}
	ctx := context.NewProgramContext("/tmp", settings, nil)
	sidebar := New(ctx)

	sidebar.ShowMessage(0, 1, agents.AgentMessage{Role: "claude", Content: "hi"})
	if !strings.Contains(sidebar.content, "#D2B48C") {
		t.Errorf("content should show the override color, got:\n%s", sidebar.content)
	}
}

func TestModel_ShowMessage_Empty(t *testing.T) {
	sidebar := New(nil)
	sidebar.ShowMessage(0, 1, agents.AgentMessage{Role: "user"})
	if !strings.Contains(sidebar.content, "(empty message)") {
		t.Error("empty content should render a placeholder")
	}
}

func TestModel_Clear(t *testing.T) {
	sidebar := New(nil)
	sidebar.ShowMessage(0, 1, agents.AgentMessage{Role: "user", Content: "x"})
	sidebar.Clear()
	if sidebar.content != "" || sidebar.title != "" {
		t.Error("Clear should drop title and content")
	}
}
