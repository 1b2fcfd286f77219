// Package cli provides shared terminal helpers for emp.
package cli

import (
	"fmt"
	"strings"
)

// MenuItem is one choice in the interactive menu.
type MenuItem struct {
	Key  string // numeric shortcut, e.g. "1"
	Name string // command word, e.g. "add"
	Help string
}

// MatchCommand finds a unique command from a prefix.
// Returns the matched command or an error if ambiguous or no match.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(prefix)

	// First check for exact match
	for _, cmd := range commands {
		if strings.ToLower(cmd) == prefix {
			return cmd, nil
		}
	}

	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd), prefix) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown command %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous command %q matches: %s", prefix, strings.Join(matches, ", "))
	}
}

// MatchMenu resolves a menu choice typed as either an item's key or a
// unique prefix of its name.
func MatchMenu(input string, items []MenuItem) (MenuItem, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return MenuItem{}, &ValidationError{Field: "choice", Message: "nothing entered"}
	}

	for _, item := range items {
		if item.Key == input {
			return item, nil
		}
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	name, err := MatchCommand(input, names)
	if err != nil {
		return MenuItem{}, &ValidationError{Field: "choice", Message: err.Error()}
	}
	for _, item := range items {
		if item.Name == name {
			return item, nil
		}
	}
	return MenuItem{}, &ValidationError{Field: "choice", Message: fmt.Sprintf("unknown command %q", input)}
}
