package models

// Theme is the colour scheme persisted under the theme storage key.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when nothing has been stored yet.
const DefaultTheme = ThemeDark

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme maps a stored value to a Theme, falling back to DefaultTheme.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return DefaultTheme
	}
}
