package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/folio/internal/share"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.refresh != nil {
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copyPostURL()
		return m, nil

	case key.Matches(msg, m.keys.CycleShare):
		m.share = share.Next(m.share)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CopyShare):
		m.copyShareLink()
		return m, nil
	}

	if m.view == ViewReader {
		return m.handleReaderKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	count := len(m.snapshot.Posts)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.First):
		m.selected = 0
	case key.Matches(msg, m.keys.Last):
		m.selected = count - 1
	case key.Matches(msg, m.keys.Open):
		if p, ok := m.selectedPost(); ok {
			m.openReader(p)
		}
		return m, nil
	}
	m.ensureVisible()
	return m, nil
}

func (m Model) handleReaderKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeReader()
		return m, nil
	case key.Matches(msg, m.keys.BackToTop):
		m.backToTop()
		return m, nil
	}
	return m, m.reader.update(msg)
}
