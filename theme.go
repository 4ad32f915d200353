package vibewall

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. Wallpaper pixels are always drawn
// in true color and are not affected by the theme.
type Theme struct {
	Title   int // Header text
	Accent  int // Brand highlight, focused tile, buttons
	Error   int // Error banner
	Success int // Download notices
	Muted   int // Subtitles, hints, placeholders
	Overlay int // Full-screen viewer and loading backdrop
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Title:   15,
		Accent:  5,
		Error:   1,
		Success: 2,
		Muted:   8,
		Overlay: 0,
	}
}
