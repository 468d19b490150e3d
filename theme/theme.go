// Package theme holds the colours erronaut uses for its panels. The values are
// lipgloss colour strings (ANSI indices such as "4" or hex such as "#ff5555"),
// so 16-colour, 256-colour and true-colour schemes all fit the same struct.
// Swap the process-wide theme with Set; consoles created with an explicit
// Options.Theme ignore it.
package theme

import "sync"

// Theme is the input type to Set, see the Theme* variables for examples.
type Theme struct {
	// Info, Warn, Debug and Error colour the border, the title background and
	// the message line of their panel kind.
	Info  string
	Warn  string
	Debug string
	Error string
	// TitleLight is the title foreground on dark backgrounds (info, error).
	TitleLight string
	// TitleDark is the title foreground on light backgrounds (warn, debug).
	TitleDark string
	// Location colours the "at ..." line.
	Location string
	// DetailKey colours detail keys.
	DetailKey string
}

// Semantic colours of the current process-wide theme.
var (
	Info       = ThemeDefault.Info
	Warn       = ThemeDefault.Warn
	Debug      = ThemeDefault.Debug
	Error      = ThemeDefault.Error
	TitleLight = ThemeDefault.TitleLight
	TitleDark  = ThemeDefault.TitleDark
	Location   = ThemeDefault.Location
	DetailKey  = ThemeDefault.DetailKey
)

var themeMu sync.RWMutex

// Set replaces the process-wide theme. Empty fields keep their current value.
//
//	theme.Set(theme.ThemeDracula)
//	// Reset to default
//	theme.Set(theme.ThemeDefault)
func Set(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()

	current := snapshotLocked()
	Info = f(t.Info, current.Info)
	Warn = f(t.Warn, current.Warn)
	Debug = f(t.Debug, current.Debug)
	Error = f(t.Error, current.Error)
	TitleLight = f(t.TitleLight, current.TitleLight)
	TitleDark = f(t.TitleDark, current.TitleDark)
	Location = f(t.Location, current.Location)
	DetailKey = f(t.DetailKey, current.DetailKey)
}

// Snapshot returns the current process-wide theme.
//
// Typical usage in tests:
//
//	snap := theme.Snapshot()
//	defer theme.Set(snap)
//	theme.Set(theme.ThemeNord)
func Snapshot() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Theme {
	return Theme{
		Info:       Info,
		Warn:       Warn,
		Debug:      Debug,
		Error:      Error,
		TitleLight: TitleLight,
		TitleDark:  TitleDark,
		Location:   Location,
		DetailKey:  DetailKey,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
