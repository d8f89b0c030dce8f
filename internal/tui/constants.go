package tui

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMargin       = 6  // Standard horizontal margin (m.width - 6)
	ModalHeightMargin      = 3  // Standard vertical margin (m.height - 3)
	ModalWidthMarginNarrow = 10 // Narrow horizontal margin for modal content (m.width - 10)

	// Content Area Offsets
	ContentOffsetLarge   = 9  // m.height - 9 for modals with footers
	ContentOffsetHelp    = 10 // m.height - 10 for help viewer
	MainViewHeightOffset = 12 // m.height - 12 leaves room for header, labels, explanation and status

	// Layout Margins
	MinimalBorderMargin = 2  // m.width - 2 for minimal borders
	HelpViewWidthOffset = 14 // m.width - 14 for help viewport width

	// Modal Content Calculations
	ModalOverheadLines = 6 // Title (2) + padding (2) + border (2)
	ModalFooterLines   = 2 // Footer + blank line
	HistoryDetailLines = 4 // Blank line + selected run input, final and steps
)
