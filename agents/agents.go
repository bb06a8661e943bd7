// Package agents holds the multi-agent message helpers for agentchat:
// payload detection and parsing, agent colors and avatar initials.
package agents

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// AgentMessage is a single message authored by a named agent.
type AgentMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DefaultColor is used for agents missing from Colors.
const DefaultColor = "#6B7280"

// AssistantName is the agent name that gets the fixed "AI" initials.
const AssistantName = "AI_Assistant"

// Colors maps agent names to their display colors.
// It is read-only after package initialization.
var Colors = map[string]string{
	"RedTeamRick":      "#DC2626",
	"BlueTeamBeth":     "#2563EB",
	"GreenTeamGary":    "#16A34A",
	"YellowTeamYvonne": "#F59E0B",
	"PurpleTeamPete":   "#9333EA",
	"OrangeTeamOliver": "#EA580C",
	"CyanTeamCindy":    "#06B6D4",
	"PinkTeamPaula":    "#EC4899",
	"IndigoTeamIan":    "#6366F1",
	"TealTeamTina":     "#14B8A6",
	AssistantName:      "#6B7280",
}

// IsMultiAgentResponse reports whether content is a JSON array of one or more
// objects that all carry a string "role" and a string "content".
// Malformed JSON is not an error, it simply isn't a multi-agent response.
func IsMultiAgentResponse(content string) bool {
	_, ok := decode(content)
	return ok
}

// ParseMultiAgentResponse returns the messages encoded in content, in order.
// It returns an empty slice when content is not a multi-agent response.
func ParseMultiAgentResponse(content string) []AgentMessage {
	msgs, ok := decode(content)
	if !ok {
		return []AgentMessage{}
	}
	return msgs
}

// decode validates content and builds fresh messages from it. Only "role" and
// "content" are decoded, so extra object fields are dropped unread.
func decode(content string) ([]AgentMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(content), &items); err != nil || len(items) == 0 {
		return nil, false
	}

	msgs := make([]AgentMessage, 0, len(items))
	for _, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			return nil, false
		}
		role, ok := stringField(obj, "role")
		if !ok {
			return nil, false
		}
		body, ok := stringField(obj, "content")
		if !ok {
			return nil, false
		}
		msgs = append(msgs, AgentMessage{Role: role, Content: body})
	}
	return msgs, true
}

// stringField decodes obj[name] as a JSON string. Missing fields and null are
// rejected.
func stringField(obj map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := obj[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}

// FormatMultiAgentResponse encodes messages back into the multi-agent payload format.
func FormatMultiAgentResponse(msgs []AgentMessage) (string, error) {
	if msgs == nil {
		msgs = []AgentMessage{}
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetColor returns the #RRGGBB display color for an agent.
// Lookup is exact and case-sensitive; unknown agents get DefaultColor.
func GetColor(agentName string) string {
	if color, ok := Colors[agentName]; ok {
		return color
	}
	return DefaultColor
}

// GetInitials returns an uppercase badge label of at most two characters.
//
// Names are split into words before every uppercase ASCII letter and at
// every underscore, and the leading letter of each word is kept. When no
// word starts with a letter the first two characters of the raw name are
// used instead, unfiltered.
func GetInitials(agentName string) string {
	if agentName == AssistantName {
		return "AI"
	}

	var initials []rune
	for _, word := range splitWords(agentName) {
		r := []rune(word)
		if len(r) > 0 && isASCIILetter(r[0]) {
			initials = append(initials, r[0])
		}
	}

	result := strings.ToUpper(string(initials))
	if result != "" {
		return truncate(result, 2)
	}
	return strings.ToUpper(truncate(agentName, 2))
}

// splitWords splits camelCase and snake_case names. The split before an
// uppercase letter is zero-width and never produces an empty leading word;
// underscores are consumed and may leave empty words behind.
func splitWords(name string) []string {
	var words []string
	var current strings.Builder

	for _, r := range name {
		switch {
		case r == '_':
			words = append(words, current.String())
			current.Reset()
		case r >= 'A' && r <= 'Z' && current.Len() > 0:
			words = append(words, current.String())
			current.Reset()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	return append(words, current.String())
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Roster returns the distinct roles in messages, in order of first appearance.
func Roster(msgs []AgentMessage) []string {
	seen := make(map[string]bool, len(msgs))
	var roles []string
	for _, m := range msgs {
		if seen[m.Role] {
			continue
		}
		seen[m.Role] = true
		roles = append(roles, m.Role)
	}
	return roles
}

// CountByRole returns how many messages each role authored.
func CountByRole(msgs []AgentMessage) map[string]int {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.Role]++
	}
	return counts
}

// Filter keeps messages whose role is in roles. An empty roles list keeps everything.
func Filter(msgs []AgentMessage, roles []string) []AgentMessage {
	if len(roles) == 0 {
		return slices.Clone(msgs)
	}
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	var out []AgentMessage
	for _, m := range msgs {
		if allowed[m.Role] {
			out = append(out, m)
		}
	}
	return out
}

// Parse parses a comma-separated agents string into a slice.
// It handles optional brackets and trims whitespace from each agent.
func Parse(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.Trim(s, "[]")
	parts := strings.Split(s, ",")

	var names []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// Format formats a list of agents for display.
func Format(names []string) string {
	return strings.Join(names, ", ")
}
