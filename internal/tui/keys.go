package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	prevPage   key.Binding
	nextPage   key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	search     key.Binding
	refresh    key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	userFilter key.Binding
	typeFilter key.Binding
	prevOption key.Binding
	nextOption key.Binding
	toggle     key.Binding
	submit     key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	prevPage:   key.NewBinding(key.WithKeys("left", "[")),
	nextPage:   key.NewBinding(key.WithKeys("right", "]")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	search:     key.NewBinding(key.WithKeys("/")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e", "enter")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	userFilter: key.NewBinding(key.WithKeys("u")),
	typeFilter: key.NewBinding(key.WithKeys("t")),
	prevOption: key.NewBinding(key.WithKeys("left")),
	nextOption: key.NewBinding(key.WithKeys("right")),
	toggle:     key.NewBinding(key.WithKeys(" ")),
	submit:     key.NewBinding(key.WithKeys("ctrl+s")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
