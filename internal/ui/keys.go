package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings shown in the help bar.
type keyMap struct {
	PrevPage key.Binding
	NextPage key.Binding
	DragDown key.Binding
	DragUp   key.Binding
	Release  key.Binding
	Scroll   key.Binding
	Details  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous project"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next project"),
		),
		DragDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "drag down"),
		),
		DragUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "drag up"),
		),
		Release: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "release drag"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "scroll content"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter/i", "project details"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.DragDown, k.Release, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.Details},
		{k.DragDown, k.DragUp, k.Release, k.Scroll},
		{k.Help, k.Quit},
	}
}
