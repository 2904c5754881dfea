package curvy

import "strings"

// ToolButton describes one toolbar control. The toolbar renders it and calls
// OnClick with its own button state when the user clicks it.
type ToolButton struct {
	Icon    string
	Name    string
	Title   string
	Class   string
	Style   string
	OnClick func(ButtonState)
}

// ButtonState is the toolbar-owned state of a rendered button.
type ButtonState interface {
	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
}

// Toolbar shows and hides rendered buttons by name.
type Toolbar interface {
	SetVisible(name string, visible bool)
}

// ClassSet is a minimal ButtonState backed by a set of class names.
type ClassSet map[string]bool

// NewClassSet returns a ClassSet holding the space-separated classes.
func NewClassSet(classes string) ClassSet {
	s := ClassSet{}
	for _, c := range strings.Fields(classes) {
		s[c] = true
	}
	return s
}

func (s ClassSet) HasClass(name string) bool { return s[name] }
func (s ClassSet) AddClass(name string)      { s[name] = true }
func (s ClassSet) RemoveClass(name string)   { delete(s, name) }
