package theme

import (
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Built-in themes. ThemeDefault sticks to the basic 16 ANSI colours so it
// renders the same on every terminal.
var (
	ThemeDefault = Theme{
		Info:       "4",
		Warn:       "3",
		Debug:      "2",
		Error:      "1",
		TitleLight: "15",
		TitleDark:  "0",
		Location:   "8",
		DetailKey:  "6",
	}
	ThemeBright = Theme{
		Info:       "12",
		Warn:       "11",
		Debug:      "10",
		Error:      "9",
		TitleLight: "15",
		TitleDark:  "0",
		Location:   "245",
		DetailKey:  "14",
	}
	ThemeDracula = Theme{
		Info:       "#8be9fd",
		Warn:       "#f1fa8c",
		Debug:      "#50fa7b",
		Error:      "#ff5555",
		TitleLight: "#f8f8f2",
		TitleDark:  "#282a36",
		Location:   "#6272a4",
		DetailKey:  "#bd93f9",
	}
	ThemeNord = Theme{
		Info:       "#81a1c1",
		Warn:       "#ebcb8b",
		Debug:      "#a3be8c",
		Error:      "#bf616a",
		TitleLight: "#eceff4",
		TitleDark:  "#2e3440",
		Location:   "#4c566a",
		DetailKey:  "#88c0d0",
	}
	ThemeGruvbox = Theme{
		Info:       "#83a598",
		Warn:       "#fabd2f",
		Debug:      "#b8bb26",
		Error:      "#fb4934",
		TitleLight: "#fbf1c7",
		TitleDark:  "#282828",
		Location:   "#928374",
		DetailKey:  "#8ec07c",
	}
	ThemeSolarizedDark = Theme{
		Info:       "#268bd2",
		Warn:       "#b58900",
		Debug:      "#859900",
		Error:      "#dc322f",
		TitleLight: "#fdf6e3",
		TitleDark:  "#002b36",
		Location:   "#586e75",
		DetailKey:  "#2aa198",
	}
	ThemeTokyoNight = Theme{
		Info:       "#7aa2f7",
		Warn:       "#e0af68",
		Debug:      "#9ece6a",
		Error:      "#f7768e",
		TitleLight: "#c0caf5",
		TitleDark:  "#1a1b26",
		Location:   "#565f89",
		DetailKey:  "#7dcfff",
	}
)

var namedThemes = map[string]*Theme{
	"default":        &ThemeDefault,
	"bright":         &ThemeBright,
	"dracula":        &ThemeDracula,
	"nord":           &ThemeNord,
	"gruvbox":        &ThemeGruvbox,
	"solarized-dark": &ThemeSolarizedDark,
	"tokyo-night":    &ThemeTokyoNight,
}

var themeAliases = map[string]string{
	"basic":         "default",
	"ansi":          "default",
	"solarized":     "solarized-dark",
	"solarizeddark": "solarized-dark",
	"tokyonight":    "tokyo-night",
}

// ByName returns the built-in theme called name. Case, spaces, underscores
// and a leading "theme-" are ignored, so "Tokyo Night", "tokyo_night" and
// "theme-tokyo-night" all find ThemeTokyoNight. Unknown names get
// ThemeDefault.
func ByName(name string) *Theme {
	key := themeKey(name)
	if canonical, ok := themeAliases[key]; ok {
		key = canonical
	}
	if t := namedThemes[key]; t != nil {
		return t
	}
	return &ThemeDefault
}

// Names lists the canonical theme names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(namedThemes))
}

// themeKey folds name into the dash-separated lower-case form used as map key.
func themeKey(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	return strings.TrimPrefix(strings.Join(words, "-"), "theme-")
}
