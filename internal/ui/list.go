package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/interact"
	"github.com/five82/folio/internal/posts"
	"github.com/five82/folio/internal/share"
)

// contentHeight is the height below the header and command bar.
func (m Model) contentHeight() int {
	return max(1, m.height-2)
}

func (m Model) cardWidth() int {
	return max(20, min(m.width, LayoutMaxCardWidth))
}

// cardsPerPage is how many cards fit in the content area.
func (m Model) cardsPerPage() int {
	return max(1, m.contentHeight()/cardHeight)
}

// ensureVisible scrolls the list so the selected card is on screen.
func (m *Model) ensureVisible() {
	per := m.cardsPerPage()
	if m.selected < m.listTop {
		m.listTop = m.selected
	}
	if m.selected >= m.listTop+per {
		m.listTop = m.selected - per + 1
	}
	m.listTop = clampInt(m.listTop, 0, max(0, len(m.snapshot.Posts)-per))
}

// renderList renders the visible post cards.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	if len(m.snapshot.Posts) == 0 {
		msg := styles.MutedText.Render("No posts yet")
		if m.snapshot.LastError != nil {
			msg = styles.DangerText.Render("Could not load posts: " + truncate(m.snapshot.LastError.Error(), 60))
		} else if !m.snapshot.Loaded {
			msg = styles.MutedText.Render("Loading posts...")
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	end := min(len(m.snapshot.Posts), m.listTop+m.cardsPerPage())
	cards := make([]string, 0, end-m.listTop)
	for i := m.listTop; i < end; i++ {
		cards = append(cards, m.renderCard(m.snapshot.Posts[i], i == m.selected))
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

// renderCard renders one post card: title, date and hero, excerpt, tags and
// the action row with the copy button.
func (m Model) renderCard(p posts.Post, selected bool) string {
	styles := m.theme.Styles()
	width := m.cardWidth()
	inner := max(10, width-4)

	border := m.theme.Border
	if selected {
		border = m.theme.BorderFocus
	}

	lines := make([]string, 0, cardHeight-2)
	lines = append(lines, styles.Text.Bold(true).Render(truncate(p.Title, inner)))

	var meta []string
	if p.Date != "" {
		meta = append(meta, p.Date)
	}
	if p.Hero != "" {
		alt := p.HeroAlt
		if alt == "" {
			alt = p.Title
		}
		meta = append(meta, "▣ "+alt)
	}
	lines = append(lines, styles.MutedText.Render(truncate(strings.Join(meta, "  "), inner)))

	excerpt := wrapLines(p.Excerpt, inner, cardExcerptLines)
	for i := 0; i < cardExcerptLines; i++ {
		line := ""
		if i < len(excerpt) {
			line = excerpt[i]
		}
		lines = append(lines, styles.Text.Render(line))
	}

	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Secondary))
	lines = append(lines, tagStyle.Render(truncate(formatTags(p.Tags), inner)))

	lines = append(lines, m.renderActions(p, inner))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// renderActions renders the copy button and, on wide terminals, the share
// targets.
func (m Model) renderActions(p posts.Post, width int) string {
	styles := m.theme.Styles()
	status := m.links.status(p.Slug)
	button := styles.ToneStyle(status.Tone()).Render(status.Label())
	if m.width < LayoutCompactWidth {
		return button
	}

	var labels []string
	for _, link := range share.Links(share.Request{URL: m.postURL(p), Title: p.Title}, share.CardTargets...) {
		label := link.Label
		if link.Target == m.share {
			label = styles.AccentText.Render(label)
		} else {
			label = styles.FaintText.Render(label)
		}
		labels = append(labels, label)
	}
	row := button + "  " + styles.MutedText.Render("Share:") + " " + strings.Join(labels, styles.FaintText.Render(" · "))
	if lipgloss.Width(row) > width {
		return button
	}
	return row
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "#" + strings.Join(tags, " #")
}

func (m Model) readerWidth() int {
	return m.cardWidth()
}

// readerHeight leaves room for the title and footer lines.
func (m Model) readerHeight() int {
	return max(1, m.contentHeight()-2)
}

// renderReader renders the open post with its footer.
func (m Model) renderReader() string {
	styles := m.theme.Styles()
	p := m.reader.post

	title := styles.AccentText.Bold(true).Render(truncate(p.Title, m.readerWidth()))

	var footer []string
	footer = append(footer, styles.MutedText.Render(posts.BlogURL(m.siteURL(), p.Slug)))
	footer = append(footer, styles.FaintText.Render(formatPercent(m.reader.scrollPercent())))
	if status := m.links.status(p.Slug); status != interact.CopyIdle {
		footer = append(footer, styles.ToneStyle(status.Tone()).Render(status.Label()))
	}
	if m.scrollTop.Visible() {
		footer = append(footer, styles.ToneStyle(interact.TonePrimary).Render("↑ Top (t)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.reader.view(),
		strings.Join(footer, "  "),
	)
}

func formatPercent(f float64) string {
	return fmt.Sprintf("%3.0f%%", f*100)
}
