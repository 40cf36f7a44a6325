package tui

// Color constants for the mission TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#14171F" // Near-black panel
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, titles, user input)
	ColorSecondaryText = "#9AA3B2" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorPlaceholder   = "#9AA3B2"
	ColorHelpText      = "240" // Dark grey for help lines

	// Accent Colors
	ColorAccentMain   = "#F2B705" // Selection, active borders
	ColorAccentBright = "#FFD75F" // Highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation and write failures
	ColorSuccess = "#22C55E" // Completed
	ColorWarning = "#F59E0B" // Unsatisfied / overdue
	ColorActive  = "#60A5FA" // Active status pill
)
