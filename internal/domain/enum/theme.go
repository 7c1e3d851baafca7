package enum

// Theme represents the persisted display theme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is one of the accepted values
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) String() string {
	return string(t)
}
