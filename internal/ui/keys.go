package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Refresh    key.Binding

	// List
	Up    key.Binding
	Down  key.Binding
	First key.Binding
	Last  key.Binding
	Open  key.Binding

	// Posts
	Copy       key.Binding
	CycleShare key.Binding
	CopyShare  key.Binding

	// Reader
	Back      key.Binding
	BackToTop key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh posts"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "Move down/up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/G", "First/last post"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Read post"),
		),

		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy post URL"),
		),
		CycleShare: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle share target"),
		),
		CopyShare: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Copy share link"),
		),

		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "Back to posts"),
		),
		BackToTop: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Back to top"),
		),
	}
}

// ShortHelp returns the bindings shown in the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Copy, k.CopyShare, k.Help, k.Quit}
}

// FullHelp returns bindings grouped by section for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.First, k.Open},
		{k.Copy, k.CycleShare, k.CopyShare},
		{k.Back, k.BackToTop},
		{k.Refresh, k.CycleTheme, k.Help, k.Quit},
	}
}

// helpSectionTitles names the FullHelp groups in order.
var helpSectionTitles = []string{"Navigation", "Sharing", "Reader", "General"}
