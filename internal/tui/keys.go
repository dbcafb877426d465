package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextTab    key.Binding
	prevTab    key.Binding
	nextSet    key.Binding
	prevSet    key.Binding
	maximize   key.Binding
	closeTab   key.Binding
	rename     key.Binding
	moveLeft   key.Binding
	moveRight  key.Binding
	moveUp     key.Binding
	moveDown   key.Binding
	moveCenter key.Binding
	border     key.Binding
	save       key.Binding
	help       key.Binding
	quit       key.Binding
}

func defaultKeyMap() *keyMap {
	return &keyMap{
		nextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		prevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		nextSet:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tabset")),
		prevSet:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous tabset")),
		maximize:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "maximize toggle")),
		closeTab:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close tab")),
		rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename tab")),
		moveLeft:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "split tab left")),
		moveRight:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "split tab right")),
		moveUp:     key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "split tab up")),
		moveDown:   key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "split tab down")),
		moveCenter: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "move tab to next tabset")),
		border:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle border")),
		save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
