package tui

// Theme is a color palette for the TUI. Two are built in and the active
// one follows the persisted theme flag.
type Theme struct {
	// Text colors
	PrimaryText   string // field labels, user input, titles
	SecondaryText string // secondary text
	DisabledText  string // disabled/muted text
	HelpText      string // help bar

	// Accent colors
	AccentMain   string // logo, accent elements, active borders
	AccentBright string // highlights, current step

	// Structure
	Border string

	// State colors
	Error   string
	Success string
	Warning string
}

// DarkTheme is the purple-on-dark palette
func DarkTheme() Theme {
	return Theme{
		PrimaryText:   "#E6EAF2",
		SecondaryText: "#B1B8C7",
		DisabledText:  "#6D7383",
		HelpText:      "240",
		AccentMain:    "#7C3AED",
		AccentBright:  "#A78BFA",
		Border:        "#3A3F55",
		Error:         "#EF4444",
		Success:       "#22C55E",
		Warning:       "#F59E0B",
	}
}

// LightTheme is the palette for light terminals
func LightTheme() Theme {
	return Theme{
		PrimaryText:   "#1F2430",
		SecondaryText: "#4B5363",
		DisabledText:  "#9AA1B0",
		HelpText:      "245",
		AccentMain:    "#6D28D9",
		AccentBright:  "#7C3AED",
		Border:        "#C9CEDB",
		Error:         "#DC2626",
		Success:       "#16A34A",
		Warning:       "#D97706",
	}
}

// themeFor picks the palette for the persisted theme flag
func themeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
