package erronaut

import (
	"bytes"
	"log"
	"strings"
)

// StdLogger wraps c into a stdlib *log.Logger. Every line becomes a panel;
// a leading "[WARN]", "warn:", "error -" style tag picks the kind, untagged
// lines are info panels.
func StdLogger(c *Console) *log.Logger {
	if c == nil {
		c = Default()
	}
	return log.New(consoleWriter{console: c}, "", 0)
}

// StdLoggerWithKind wraps c into a stdlib *log.Logger that prints every line
// as a panel of kind.
func StdLoggerWithKind(c *Console, kind Kind) *log.Logger {
	if c == nil {
		c = Default()
	}
	return log.New(kindPinnedWriter{console: c, kind: kind}, "", 0)
}

type consoleWriter struct {
	console *Console
}

func (w consoleWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(bytes.TrimRight(line, "\r")))
		if trimmed == "" {
			continue
		}
		kind, msg := classifyLineKind(trimmed)
		w.console.emit(kind, "", Payload{Message: msg}, CallerLocation())
	}
	return len(p), nil
}

type kindPinnedWriter struct {
	console *Console
	kind    Kind
}

func (w kindPinnedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		line = bytes.TrimSpace(bytes.TrimSuffix(line, []byte{'\r'}))
		if len(line) == 0 {
			continue
		}
		w.console.emit(w.kind, "", Payload{Message: string(line)}, CallerLocation())
	}
	return len(p), nil
}

var lineKindTags = []struct {
	tag  string
	kind Kind
}{
	{"warning", KindWarn},
	{"warn", KindWarn},
	{"error", KindError},
	{"err", KindError},
	{"debug", KindDebug},
	{"info", KindInfo},
}

func classifyLineKind(line string) (Kind, string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.IndexRune(trimmed, ']'); end > 1 {
			if kind, ok := ParseKind(trimmed[1:end]); ok {
				return kind, strings.TrimSpace(trimmed[end+1:])
			}
		}
	}
	lowered := strings.ToLower(trimmed)
	for _, t := range lineKindTags {
		if !strings.HasPrefix(lowered, t.tag) {
			continue
		}
		rest := trimmed[len(t.tag):]
		if rest != "" && !strings.ContainsRune(":- ", rune(rest[0])) {
			continue
		}
		return t.kind, strings.TrimSpace(strings.TrimLeft(rest, ":- "))
	}
	return KindInfo, trimmed
}
