package erronaut

import "strings"

// Kind selects the panel flavour: title text, colour and fallback message.
type Kind int8

const (
	// KindInfo renders a blue informational panel.
	KindInfo Kind = iota
	// KindWarn renders a yellow warning panel.
	KindWarn
	// KindDebug renders a green debug panel.
	KindDebug
	// KindError renders a red error panel.
	KindError
)

// ParseKind converts a textual kind into a Kind value. It accepts "info",
// "warn", "warning", "debug", "error" and "err" (case insensitive).
func ParseKind(value string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "info":
		return KindInfo, true
	case "warn", "warning":
		return KindWarn, true
	case "debug":
		return KindDebug, true
	case "error", "err":
		return KindError, true
	default:
		return KindInfo, false
	}
}

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindWarn:
		return "warn"
	case KindDebug:
		return "debug"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Title is the word shown in the panel title.
func (k Kind) Title() string {
	switch k {
	case KindWarn:
		return "Warning"
	case KindDebug:
		return "Debug"
	case KindError:
		return "Error"
	default:
		return "Info"
	}
}
