package constants

import "testing"

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{TranscriptView, "Transcript"},
		{AgentsView, "Agents"},
		{RecentView, "Recent"},
		{SettingsView, "Settings"},
		{ViewType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.view.String(); got != tt.want {
			t.Errorf("ViewType(%d).String() = %q, want %q", tt.view, got, tt.want)
		}
	}
}

func TestViewType_NextPrev(t *testing.T) {
	v := TranscriptView
	for range Views {
		v = v.Next()
	}
	if v != TranscriptView {
		t.Errorf("cycling Next through all views should return to start, got %v", v)
	}

	if TranscriptView.Prev() != SettingsView {
		t.Errorf("TranscriptView.Prev() = %v, want SettingsView", TranscriptView.Prev())
	}
	if SettingsView.Next() != TranscriptView {
		t.Errorf("SettingsView.Next() = %v, want TranscriptView", SettingsView.Next())
	}
	if AgentsView.Prev().Next() != AgentsView {
		t.Error("Prev then Next should be identity")
	}
}

func TestViewType_Icon(t *testing.T) {
	for _, v := range Views {
		if v.Icon() == "" {
			t.Errorf("%v should have an icon", v)
		}
	}
}
