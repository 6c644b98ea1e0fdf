package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/interact"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("folio", styles.Logo)}

	if m.config != nil {
		parts = append(parts, bg.Render(m.config.SiteName, styles.Text.Bold(true)))
		if !compact {
			parts = append(parts, bg.Render(truncateMiddle(m.config.SiteURL, 40), styles.MutedText))
		}
	}

	if !m.snapshot.Loaded && m.snapshot.LastError == nil {
		parts = append(parts, bg.Render("Loading posts...", styles.WarningText.Bold(true)))
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	parts = append(parts,
		bg.Render("Posts:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.snapshot.Posts)), styles.Text),
	)

	if !m.snapshot.LastUpdated.IsZero() {
		ago := humanizeDuration(time.Since(m.snapshot.LastUpdated))
		parts = append(parts, bg.Render("Updated "+ago, styles.MutedText))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	}

	if m.snapshot.LastError != nil {
		maxErr := 60
		if compact {
			maxErr = 24
		}
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.snapshot.LastError.Error(), maxErr), styles.DangerText),
		)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderCommandBar renders the key hints, the share target and the share
// copy status.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	sep := bg.Spaces(2)

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts,
			bg.Render("<"+h.Key+">", styles.AccentText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}

	share := bg.Render("Share:", styles.MutedText) + bg.Space() +
		bg.Render(m.shareTarget().Label(), styles.Text)
	parts = append(parts, share)

	if status := m.shareCopy.Status(); status != interact.CopyIdle {
		label := "Share link copied"
		if status == interact.CopyFailed {
			label = "Share link failed"
		}
		parts = append(parts, styles.ToneStyle(status.Tone()).Render(label))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Render(bg.Join(parts, sep))
}
