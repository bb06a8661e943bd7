// Package transcript loads raw chat text into an ordered list of agent messages.
package transcript

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"agentchat/agents"
	"agentchat/config"
)

// StdinSource is the Source of transcripts read from standard input.
const StdinSource = "stdin"

// Transcript is a loaded chat transcript.
type Transcript struct {
	// Source is a display name for where the text came from (a path or "stdin").
	Source string

	Messages []agents.AgentMessage

	// MultiAgent is true when the text was a multi-agent payload.
	MultiAgent bool
}

// FromText builds a transcript from raw message text. A multi-agent payload is
// split into its messages; anything else becomes a single message authored by
// defaultRole, unless it is blank.
func FromText(source, text, defaultRole string) *Transcript {
	t := &Transcript{Source: source}

	if msgs := agents.ParseMultiAgentResponse(text); len(msgs) > 0 {
		t.Messages = msgs
		t.MultiAgent = true
		return t
	}

	body := strings.TrimSpace(text)
	if body == "" {
		return t
	}
	t.Messages = []agents.AgentMessage{{Role: defaultRole, Content: body}}
	return t
}

// Read reads all of r and builds a transcript from it.
func Read(source string, r io.Reader, defaultRole string) (*Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return FromText(source, string(data), defaultRole), nil
}

// LoadFile reads a transcript from a file. A path of "-" reads stdin.
func LoadFile(path, defaultRole string) (*Transcript, error) {
	if path == "-" {
		return Read(StdinSource, os.Stdin, defaultRole)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()

	return Read(path, f, defaultRole)
}

// Agents returns the transcript's distinct agents in order of first appearance.
func (t *Transcript) Agents() []string {
	if t == nil {
		return nil
	}
	return agents.Roster(t.Messages)
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Messages)
}

// Filtered returns a copy of the transcript holding only messages from roles.
func (t *Transcript) Filtered(roles []string) *Transcript {
	if t == nil {
		return nil
	}
	return &Transcript{
		Source:     t.Source,
		Messages:   agents.Filter(t.Messages, roles),
		MultiAgent: t.MultiAgent,
	}
}

// HistoryEntry describes the transcript for the recent list. It reports false
// for transcripts that did not come from a file.
func (t *Transcript) HistoryEntry() (config.HistoryEntry, bool) {
	if t == nil || t.Source == "" || t.Source == StdinSource {
		return config.HistoryEntry{}, false
	}

	path, err := filepath.Abs(t.Source)
	if err != nil {
		path = t.Source
	}
	return config.HistoryEntry{
		Path:       path,
		Messages:   t.Len(),
		Agents:     t.Agents(),
		MultiAgent: t.MultiAgent,
	}, true
}
