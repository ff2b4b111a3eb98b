package domain

// Theme is the dashboard color scheme.
type Theme string

const (
	// ThemeLight is the default theme.
	ThemeLight Theme = "light"
	// ThemeDark is the alternate theme.
	ThemeDark Theme = "dark"
)

// ParseTheme maps a stored value to a Theme. Anything other than the two
// known values yields ThemeLight and ok == false.
func ParseTheme(s string) (theme Theme, ok bool) {
	switch Theme(s) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return ThemeLight, false
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

func (t Theme) String() string { return string(t) }
