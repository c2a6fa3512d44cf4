// Package ui provides shared UI constants and utilities.
package ui

import "github.com/llehouerou/carousel/internal/playlist"

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	PanelOverhead = BorderHeight + HeaderHeight

	// HistoryPanelHeight fits every recently played entry plus overhead.
	HistoryPanelHeight = playlist.HistoryCapacity + PanelOverhead

	// TitleHeight is the gradient title line above the panels.
	TitleHeight = 1

	// StatusHeight is the status and key hint line below the panels.
	StatusHeight = 1
)
