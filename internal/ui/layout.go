package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which cards drop the share
	// row and the header drops the site URL.
	LayoutCompactWidth = 80

	// LayoutMaxCardWidth caps card width on wide terminals.
	LayoutMaxCardWidth = 100
)

// Card geometry.
const (
	// cardExcerptLines is the number of excerpt lines a card shows.
	cardExcerptLines = 2

	// cardHeight is the rendered height of a card including its border.
	cardHeight = 8
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI re-reads the post store.
	DefaultUIInterval = time.Second
)
