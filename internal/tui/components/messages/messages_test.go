package messages

import (
	"strings"
	"testing"

	"agentchat/config"
	"agentchat/internal/tui/constants"
	"agentchat/internal/tui/context"
	"agentchat/transcript"

	tea "github.com/charmbracelet/bubbletea"
)

const payload = `[
	{"role":"RedTeamRick","content":"Opening move."},
	{"role":"BlueTeamBeth","content":"Counter move."},
	{"role":"AI_Assistant","content":"Summary of both."}
]`

func newContext(text string) *context.ProgramContext {
	tr := transcript.FromText("chat.json", text, "AI_Assistant")
	ctx := context.NewProgramContext("/tmp", config.DefaultAppSettings(), tr)
	ctx.UpdateWindowSize(tea.WindowSizeMsg{Width: 100, Height: 40})
	return ctx
}

func newModel(text string) Model {
	ctx := newContext(text)
	m := New(ctx)
	m.SetDimensions(constants.Dimensions{Width: ctx.MainContentWidth, Height: ctx.MainContentHeight})
	return m
}

func TestNew(t *testing.T) {
	m := newModel(payload)

	if m.ctx == nil {
		t.Fatal("ctx should not be nil")
	}
	if m.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor())
	}
	if len(m.offsets) != 3 {
		t.Errorf("offsets = %d, want 3", len(m.offsets))
	}
	if !m.IsAtTop() {
		t.Error("IsAtTop should be true initially")
	}
}

func TestNew_NilContext(t *testing.T) {
	m := New(nil)
	if m.View() != "" {
		t.Error("View should be empty with nil context")
	}
	if _, ok := m.Selected(); ok {
		t.Error("Selected should report nothing with nil context")
	}
}

func TestModel_View(t *testing.T) {
	m := newModel(payload)
	view := m.View()

	for _, want := range []string{"RT", "RedTeamRick", "Opening move.", "BT", "BlueTeamBeth", "AI", "AI_Assistant"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestModel_View_Empty(t *testing.T) {
	m := newModel("")
	if !strings.Contains(m.View(), "No messages") {
		t.Error("empty transcript should show the empty state")
	}
}

func TestModel_CursorNavigation(t *testing.T) {
	m := newModel(payload)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 1 {
		t.Errorf("Cursor after down = %d, want 1", m.Cursor())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if m.Cursor() != 2 {
		t.Errorf("Cursor after G = %d, want 2", m.Cursor())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 2 {
		t.Errorf("Cursor should stop at last message, got %d", m.Cursor())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if m.Cursor() != 0 {
		t.Errorf("Cursor after g = %d, want 0", m.Cursor())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 0 {
		t.Errorf("Cursor should stop at first message, got %d", m.Cursor())
	}
}

func TestModel_EnterSelectsMessage(t *testing.T) {
	m := newModel(payload)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter should return a command")
	}

	msg, ok := cmd().(SelectMessageMsg)
	if !ok {
		t.Fatalf("command should produce SelectMessageMsg, got %T", cmd())
	}
	if msg.Index != 1 || msg.Message.Role != "BlueTeamBeth" {
		t.Errorf("selected = %+v, want index 1 from BlueTeamBeth", msg)
	}
}

func TestModel_EnterOnEmpty(t *testing.T) {
	m := newModel("")
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Enter on an empty transcript should do nothing")
	}
}

func TestModel_RefreshAfterTranscriptChange(t *testing.T) {
	m := newModel(payload)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})

	m.ctx.SetTranscript(transcript.FromText("other", "plain reply", "AI_Assistant"))
	m.Refresh()

	if m.Cursor() != 0 {
		t.Errorf("Cursor should clamp to the new transcript, got %d", m.Cursor())
	}
	if !strings.Contains(m.View(), "plain reply") {
		t.Error("View should show the new transcript")
	}
}

func TestRenderMessage_Wraps(t *testing.T) {
	ctx := newContext(payload)
	ctx.AppSettings.Transcript.WrapWidth = 20

	ctx.Transcript.Messages[0].Content = strings.Repeat("word ", 20)
	block := RenderMessage(ctx, ctx.Transcript.Messages[0], 100, false)
	for _, line := range strings.Split(block, "\n") {
		if len([]rune(line)) > 40 {
			t.Errorf("line should be wrapped, got %d chars: %q", len([]rune(line)), line)
		}
	}
}

func TestRenderMessage_Selected(t *testing.T) {
	ctx := newContext(payload)
	block := RenderMessage(ctx, ctx.Transcript.Messages[0], 80, true)
	if !strings.HasPrefix(block, constants.Cursor) {
		t.Errorf("selected block should start with the cursor mark, got %q", block)
	}
}

func TestRenderMessage_Empty(t *testing.T) {
	ctx := newContext(`[{"role":"user","content":""}]`)
	block := RenderMessage(ctx, ctx.Transcript.Messages[0], 80, false)
	if !strings.Contains(block, "(empty message)") {
		t.Errorf("empty content should render a placeholder, got %q", block)
	}
}

func TestRenderAll(t *testing.T) {
	ctx := newContext(payload)
	out := RenderAll(ctx, 80)

	for _, want := range []string{"Opening move.", "Counter move.", "Summary of both.", "3 message(s)", "RedTeamRick, BlueTeamBeth, AI_Assistant"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderAll should contain %q", want)
		}
	}

	if strings.Index(out, "Opening move.") > strings.Index(out, "Counter move.") {
		t.Error("RenderAll should keep message order")
	}
}

func TestRenderAll_Empty(t *testing.T) {
	ctx := newContext("")
	if out := RenderAll(ctx, 80); !strings.Contains(out, "No messages") {
		t.Errorf("RenderAll on empty transcript = %q", out)
	}
}

func TestModel_SelectRole(t *testing.T) {
	m := newModel(payload)

	if !m.SelectRole("AI_Assistant") {
		t.Fatal("SelectRole should find AI_Assistant")
	}
	if m.Cursor() != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor())
	}
	if m.SelectRole("GreenTeamGary") {
		t.Error("SelectRole should report a missing role")
	}
	if m.Cursor() != 2 {
		t.Error("Cursor should not move for a missing role")
	}
}
