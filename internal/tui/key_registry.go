package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/countdown/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Help        string
	Description string
	Views       []timer.ViewState
	Priority    int
}

func (b KeyBinding) AppliesToView(view timer.ViewState) bool {
	if len(b.Views) == 0 {
		return true
	}
	for _, v := range b.Views {
		if v == view {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	view := m.machine.View()
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesToView(view) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(view timer.ViewState) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(view) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForView(view timer.ViewState) string {
	bindings := r.GetBindingsForView(view)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" || b.Help == "" {
			continue
		}
		if seen[b.Help] {
			continue
		}
		seen[b.Help] = true
		parts = append(parts, "["+b.Help+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}
