// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across page sections.
const (
	// BorderWidth is the horizontal space consumed by a rounded panel border.
	BorderWidth = 2

	// PaddingWidth is the horizontal padding inside a panel (one cell per side).
	PaddingWidth = 2

	// PanelOverhead is the horizontal overhead of a padded, bordered panel.
	PanelOverhead = BorderWidth + PaddingWidth

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// AnchorMargin is the number of lines kept above a section when scrolling
	// to it, so the section title is not hidden under the header.
	AnchorMargin = 1

	// ShadowThreshold is the scroll offset past which the header draws its
	// shadow line.
	ShadowThreshold = 5
)
