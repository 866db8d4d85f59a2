package tui

// Color constants for the clinigo TUI theme
const (
	ColorBorder        = "#3A3F55" // Grey-blue
	ColorPrimaryText   = "#E6EAF2" // Titles, table text
	ColorSecondaryText = "#B1B8C7" // Labels, column headers
	ColorHelpText      = "240"     // Dark grey for help text

	ColorAccentMain   = "#2AA198" // Selected row, active date
	ColorPendingText  = "#F59E0B" // Sessions still pending payment
	ColorPaidText     = "#22C55E" // Paid sessions
	ColorErrorText    = "#EF4444" // Load failures
)
