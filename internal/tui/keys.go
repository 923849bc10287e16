package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation intents. Every input source (directional keys, pointer
// activation of a control, the jump picker) decodes to one of these before
// touching the pager, so the pager never knows where an event came from.
type intent int

const (
	intentNone intent = iota
	intentPrevious
	intentNext
	intentJump
	intentHistory
	intentQuit
)

const (
	scopeBrowse  = "browse"
	scopeJump    = "jump"
	scopeHistory = "history"
)

type keyBinding struct {
	keys   []string
	action intent
	help   string
	scopes []string
}

// keyRegistry resolves key presses to intents per scope. Bindings with no
// scopes apply everywhere.
type keyRegistry struct {
	bindings []keyBinding
}

func defaultBindings() []keyBinding {
	return []keyBinding{
		{keys: []string{"left", "h"}, action: intentPrevious, help: "previous", scopes: []string{scopeBrowse}},
		{keys: []string{"right", "l"}, action: intentNext, help: "next", scopes: []string{scopeBrowse}},
		{keys: []string{"/"}, action: intentJump, help: "jump", scopes: []string{scopeBrowse}},
		{keys: []string{"v"}, action: intentHistory, help: "history", scopes: []string{scopeBrowse}},
		{keys: []string{"q", "ctrl+c"}, action: intentQuit, help: "quit", scopes: []string{scopeBrowse}},
	}
}

func newKeyRegistry(bindings []keyBinding) *keyRegistry {
	return &keyRegistry{bindings: append([]keyBinding(nil), bindings...)}
}

// intentFor returns the intent bound to msg in the given scope, or
// intentNone.
func (r *keyRegistry) intentFor(msg tea.KeyMsg, scope string) intent {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.scopes) {
			continue
		}
		for _, k := range b.keys {
			if normalizeKey(k) == pressed {
				return b.action
			}
		}
	}
	return intentNone
}

// helpForScope returns "key help" pairs for the footer, binding order.
func (r *keyRegistry) helpForScope(scope string) []string {
	var out []string
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.scopes) || b.help == "" {
			continue
		}
		out = append(out, b.keys[0]+" "+b.help)
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
