package theme

import "testing"

func TestSetOverridesValues(t *testing.T) {
	original := Snapshot()
	t.Cleanup(func() {
		Set(original)
	})

	Set(Theme{
		Info:       "INFO",
		Warn:       "WARN",
		Debug:      "DEBUG",
		Error:      "ERROR",
		TitleLight: "LIGHT",
		TitleDark:  "DARK",
		Location:   "LOC",
		DetailKey:  "KEY",
	})

	if Info != "INFO" || Warn != "WARN" || Debug != "DEBUG" || Error != "ERROR" {
		t.Fatalf("kind colours not applied: %q %q %q %q", Info, Warn, Debug, Error)
	}
	if Location != "LOC" || DetailKey != "KEY" {
		t.Fatalf("auxiliary colours not applied")
	}
}

func TestSetKeepsCurrentForEmptyFields(t *testing.T) {
	original := Snapshot()
	t.Cleanup(func() {
		Set(original)
	})

	Set(Theme{Error: "#ff0000"})

	got := Snapshot()
	if got.Error != "#ff0000" {
		t.Fatalf("error colour not applied: %q", got.Error)
	}
	if got.Info != original.Info || got.DetailKey != original.DetailKey {
		t.Fatalf("empty fields must keep current values, got %+v", got)
	}
}

func TestByNameCanonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want *Theme
	}{
		{name: "default", want: &ThemeDefault},
		{name: "dracula", want: &ThemeDracula},
		{name: "tokyo-night", want: &ThemeTokyoNight},
		{name: "solarized-dark", want: &ThemeSolarizedDark},
	}

	for _, tc := range cases {
		if got := ByName(tc.name); got != tc.want {
			t.Fatalf("theme %q resolved to the wrong entry", tc.name)
		}
	}
}

func TestByNameAliasesAndNormalisation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want *Theme
	}{
		{name: "  NORD ", want: &ThemeNord},
		{name: "tokyo_night", want: &ThemeTokyoNight},
		{name: "Theme Tokyo Night", want: &ThemeTokyoNight},
		{name: "theme-gruvbox", want: &ThemeGruvbox},
		{name: "solarized", want: &ThemeSolarizedDark},
		{name: "basic", want: &ThemeDefault},
	}

	for _, tc := range cases {
		if got := ByName(tc.name); got != tc.want {
			t.Fatalf("alias %q resolved to the wrong entry", tc.name)
		}
	}
}

func TestByNameUnknownFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := ByName("not-a-theme"); got != &ThemeDefault {
		t.Fatalf("unknown theme should resolve to ThemeDefault")
	}
	if got := ByName(""); got != &ThemeDefault {
		t.Fatalf("empty theme should resolve to ThemeDefault")
	}
	for _, name := range []string{"themed", "themenord", "nordic"} {
		if got := ByName(name); got != &ThemeDefault {
			t.Fatalf("%q must not match a built-in theme", name)
		}
	}
}

func TestThemeKey(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  Tokyo   Night ": "tokyo-night",
		"solarized__dark":  "solarized-dark",
		"-nord-":           "nord",
		"theme-gruvbox":    "gruvbox",
		"themed":           "themed",
		"":                 "",
	}
	for in, want := range cases {
		if got := themeKey(in); got != want {
			t.Fatalf("themeKey(%q) = %q want %q", in, got, want)
		}
	}
}

func TestNamesSortedAndResolvable(t *testing.T) {
	t.Parallel()

	names := Names()
	if len(names) != len(namedThemes) {
		t.Fatalf("expected %d names, got %d", len(namedThemes), len(names))
	}
	for i, name := range names {
		if i > 0 && names[i-1] >= name {
			t.Fatalf("names not sorted: %v", names)
		}
		if ByName(name) != namedThemes[name] {
			t.Fatalf("name %q does not resolve to itself", name)
		}
	}
}
