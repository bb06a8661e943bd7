package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDataDir_XDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_DATA_HOME only applies on Linux and others")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	want := filepath.Join(xdg, AppName)
	if got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}

func TestDataDir_EndsWithAppName(t *testing.T) {
	got, err := DataDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if filepath.Base(got) != AppName {
		t.Errorf("DataDir() = %q, want it to end with %q", got, AppName)
	}
}

func TestDisplayPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"home itself", home, "~"},
		{"inside home", filepath.Join(home, "chats", "a.json"), filepath.Join("~", "chats", "a.json")},
		{"outside home", filepath.Join(string(filepath.Separator), "definitely-not-home", "x"), filepath.Join(string(filepath.Separator), "definitely-not-home", "x")},
		{"sibling with shared prefix", home + "2", home + "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayPath(tt.path); got != tt.want {
				t.Errorf("DisplayPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
