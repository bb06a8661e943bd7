package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// HistoryEntry records a transcript that was opened.
type HistoryEntry struct {
	Path       string    `yaml:"path"`
	OpenedAt   time.Time `yaml:"opened_at"`
	Messages   int       `yaml:"messages"`
	Agents     []string  `yaml:"agents,omitempty"`
	MultiAgent bool      `yaml:"multi_agent"`
}

// History is the list of recently opened transcripts, most recent first.
type History struct {
	Entries []HistoryEntry `yaml:"entries"`
}

// HistoryFileName is the name of the history file in the data directory.
const HistoryFileName = "history.yaml"

// LoadHistory loads the transcript history from the data directory.
// A missing file yields an empty history.
func LoadHistory(dir string) (*History, error) {
	data, err := os.ReadFile(filepath.Join(dir, HistoryFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		return nil, err
	}

	var h History
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, err
	}

	return &h, nil
}

// SaveHistory saves the transcript history to the data directory.
func SaveHistory(dir string, h *History) error {
	data, err := yaml.Marshal(h)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, HistoryFileName), data, 0644)
}

// Record puts entry at the front of the history, dropping any older entry
// for the same path and keeping at most limit entries (limit <= 0 keeps all).
func (h *History) Record(entry HistoryEntry, limit int) {
	if entry.OpenedAt.IsZero() {
		entry.OpenedAt = time.Now()
	}

	entries := make([]HistoryEntry, 0, len(h.Entries)+1)
	entries = append(entries, entry)
	for _, e := range h.Entries {
		if e.Path != entry.Path {
			entries = append(entries, e)
		}
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	h.Entries = entries
}

// Remove drops the entry for path. It reports whether one was found.
func (h *History) Remove(path string) bool {
	for i, e := range h.Entries {
		if e.Path == path {
			h.Entries = append(h.Entries[:i], h.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Entries)
}
