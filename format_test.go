package erronaut_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"pkt.systems/erronaut"
)

func formatPlain(kind erronaut.Kind, p erronaut.Payload, location string) string {
	var sink strings.Builder
	return newTestConsole(&sink).Format(kind, p, location)
}

func TestFormatStringPayloadMessageLine(t *testing.T) {
	for _, msg := range []string{"hello", "hello world", "  spaced  ", "ünïcödé", ""} {
		got := formatPlain(erronaut.KindInfo, erronaut.Msg(msg), "")
		lines := strings.Split(got, "\n")
		if len(lines) < 3 {
			t.Fatalf("unexpected layout for %q: %q", msg, got)
		}
		if lines[2] != "Message: "+msg {
			t.Fatalf("message line mismatch: got %q want %q", lines[2], "Message: "+msg)
		}
	}
}

func TestFormatLayoutWithoutDetails(t *testing.T) {
	got := formatPlain(erronaut.KindWarn, erronaut.Msg("disk low"), "at main.main (/src/main.go:3)")
	want := "Warning\n\nMessage: disk low\n\nat main.main (/src/main.go:3)"
	if got != want {
		t.Fatalf("unexpected layout:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatLayoutWithDetails(t *testing.T) {
	got := formatPlain(erronaut.KindDebug, erronaut.Msg("cache", "hits", 3), "at x")
	want := "Debug\n\nMessage: cache\n\nHits: 3\n\nat x"
	if got != want {
		t.Fatalf("unexpected layout:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatTitlesPerKind(t *testing.T) {
	cases := map[erronaut.Kind]string{
		erronaut.KindInfo:  "Info",
		erronaut.KindWarn:  "Warning",
		erronaut.KindDebug: "Debug",
		erronaut.KindError: "Error",
	}
	for kind, title := range cases {
		got := formatPlain(kind, erronaut.Msg("x"), "")
		if !strings.HasPrefix(got, title+"\n") {
			t.Fatalf("kind %s: expected title %q, got %q", kind, title, got)
		}
	}
}

func TestFormatMissingMessageFallback(t *testing.T) {
	p := erronaut.Payload{Fields: erronaut.Group("code", 1)}

	errPanel := strings.Split(formatPlain(erronaut.KindError, p, ""), "\n")
	if errPanel[2] != "Message: "+erronaut.UnknownErrorMessage {
		t.Fatalf("error kind should fall back to %q, got %q", erronaut.UnknownErrorMessage, errPanel[2])
	}
	for _, kind := range []erronaut.Kind{erronaut.KindInfo, erronaut.KindWarn, erronaut.KindDebug} {
		lines := strings.Split(formatPlain(kind, p, ""), "\n")
		if lines[2] != "Message: " {
			t.Fatalf("kind %s should render an empty message, got %q", kind, lines[2])
		}
	}
}

func TestFormatDetailsKeepInsertionOrder(t *testing.T) {
	got := formatPlain(erronaut.KindInfo, erronaut.Msg("m", "zeta", 1, "alpha", "two", "mid", true), "")
	want := "Info\n\nMessage: m\n\nZeta: 1\nAlpha: \"two\"\nMid: true"
	if got != want {
		t.Fatalf("unexpected details:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatDetailLineCount(t *testing.T) {
	p := erronaut.Msg("m",
		"a", 1,
		"b", erronaut.Group("x", 1, "y", 2),
		"c", "three",
	)
	got := formatPlain(erronaut.KindInfo, p, "")
	block := strings.SplitN(got, "\n\n", 3)[2]
	lines := strings.Split(block, "\n")
	// 3 top-level keys plus 2 nested lines.
	if len(lines) != 5 {
		t.Fatalf("expected 5 detail lines, got %d: %q", len(lines), lines)
	}
	want := []string{"A: 1", "B:", "  X: 1", "  Y: 2", `C: "three"`}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatNestedRecordScenario(t *testing.T) {
	p := erronaut.Msg("timeout", "code", 504, "details", erronaut.Group("host", "api"))
	got := formatPlain(erronaut.KindError, p, "")
	for _, want := range []string{"Message: timeout", "\nCode: 504\n", "\nDetails:\n", "\n  Host: \"api\""} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestFormatDeepNestingAndMaps(t *testing.T) {
	p := erronaut.Msg("m",
		"outer", erronaut.Group("inner", erronaut.Group("leaf", "v")),
		"labels", map[string]any{"zone": "b", "app": "a"},
		"empty", erronaut.Fields{},
	)
	got := formatPlain(erronaut.KindInfo, p, "")
	want := strings.Join([]string{
		"Outer:",
		"  Inner:",
		`    Leaf: "v"`,
		"Labels:",
		`  App: "a"`,
		`  Zone: "b"`,
		"Empty: {}",
	}, "\n")
	if !strings.HasSuffix(got, want) {
		t.Fatalf("unexpected nested rendering:\ngot  %q\nwant suffix %q", got, want)
	}
}

func TestFormatSkipsTopLevelMessageKey(t *testing.T) {
	got := formatPlain(erronaut.KindInfo, erronaut.Msg("m", "message", "dup", "Message", "dup2", "k", 1), "")
	if strings.Contains(got, "dup") {
		t.Fatalf("message key should not render as a detail: %q", got)
	}
	if !strings.HasSuffix(got, "K: 1") {
		t.Fatalf("expected remaining detail, got %q", got)
	}
}

func TestFormatValueEncoding(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	p := erronaut.Msg("m",
		"list", []int{1, 2},
		"point", point{X: 1, Y: 2},
		"err", errors.New("broken pipe"),
		"wait", 1500*time.Millisecond,
		"html", "<b>",
		"nil", nil,
		"ch", make(chan int),
	)
	lines := strings.Split(formatPlain(erronaut.KindInfo, p, ""), "\n")
	for _, want := range []string{
		"List: [1,2]",
		"Point:",
		"  X: 1",
		"  Y: 2",
		`Err: "broken pipe"`,
		`Wait: "1.5s"`,
		`Html: "<b>"`,
		"Nil: null",
	} {
		if !containsLine(lines, want) {
			t.Fatalf("expected line %q in %q", want, lines)
		}
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, `Ch: "0x`) {
		t.Fatalf("unencodable value should fall back to a quoted fmt value, got %q", last)
	}
}

func TestFormatDanglingValue(t *testing.T) {
	got := formatPlain(erronaut.KindInfo, erronaut.Msg("m", "code", 1, "orphan"), "")
	if !strings.HasSuffix(got, "Code: 1\nArg1: \"orphan\"") {
		t.Fatalf("dangling value should get a synthetic key, got %q", got)
	}
}

func TestFormatTimestampInTitle(t *testing.T) {
	var sink strings.Builder
	c := erronaut.NewConsoleWithOptions(&sink, erronaut.Options{NoColor: true, TimeFormat: "2006", UTC: true})
	got := c.Format(erronaut.KindInfo, erronaut.Msg("m"), "")
	want := "Info - " + time.Now().UTC().Format("2006")
	if !strings.HasPrefix(got, want+"\n") {
		t.Fatalf("expected title %q, got %q", want, got)
	}
}

func TestFormatStructsAsNestedRecords(t *testing.T) {
	type endpoint struct {
		Host string            `json:"host"`
		Port int               `json:"port"`
		Tags map[string]string `json:"tags,omitempty"`
	}
	type request struct {
		Method   string    `json:"method"`
		Target   *endpoint `json:"target"`
		Empty    struct{}  `json:"empty"`
		Sent     time.Time `json:"sent"`
		Internal string    `json:"-"`
	}
	sent := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	p := erronaut.Msg("m", "req", request{
		Method: "GET",
		Target: &endpoint{Host: "api", Port: 443, Tags: map[string]string{"zone": "b", "app": "a"}},
		Sent:   sent,
	}, "when", sent)
	got := formatPlain(erronaut.KindInfo, p, "")
	want := strings.Join([]string{
		"Req:",
		`  Method: "GET"`,
		"  Target:",
		`    Host: "api"`,
		"    Port: 443",
		"    Tags:",
		`      App: "a"`,
		`      Zone: "b"`,
		"  Empty: {}",
		`  Sent: "2024-01-02T15:04:05Z"`,
		`When: "2024-01-02T15:04:05Z"`,
	}, "\n")
	if !strings.HasSuffix(got, want) {
		t.Fatalf("unexpected struct rendering:\ngot  %q\nwant suffix %q", got, want)
	}
}

func TestFormatErrorStructStaysQuoted(t *testing.T) {
	got := formatPlain(erronaut.KindInfo, erronaut.Msg("m", "err", &os.PathError{Op: "open", Path: "/x", Err: os.ErrNotExist}), "")
	if !strings.HasSuffix(got, `Err: "open /x: file does not exist"`) {
		t.Fatalf("errors should render as their message, got %q", got)
	}
}

func TestFormatSelfReferentialMap(t *testing.T) {
	m := map[string]any{"a": 1}
	m["self"] = m

	var buf bytes.Buffer
	newTestConsole(&buf).Info("cyclic", "details", m)
	lines := panelLines(buf.String())
	for _, want := range []string{"Message: cyclic", "Details:", "A: 1", "Self: [Circular]"} {
		if !containsLine(lines, want) {
			t.Fatalf("expected line %q in %q", want, buf.String())
		}
	}
}

func TestFormatSelfReferentialFields(t *testing.T) {
	fs := erronaut.Fields{{Key: "a", Value: 1}, {Key: "self"}}
	fs[1].Value = fs

	got := formatPlain(erronaut.KindInfo, erronaut.Msg("m", "rec", fs), "")
	if !strings.HasSuffix(got, "Rec:\n  A: 1\n  Self: [Circular]") {
		t.Fatalf("unexpected rendering of a self-referential record: %q", got)
	}
}

func TestFormatIndirectCycle(t *testing.T) {
	a := map[string]any{"name": "a"}
	b := map[string]any{"name": "b", "peer": a}
	a["peer"] = b

	got := formatPlain(erronaut.KindInfo, erronaut.Msg("m", "a", a), "")
	want := strings.Join([]string{
		"A:",
		`  Name: "a"`,
		"  Peer:",
		`    Name: "b"`,
		"    Peer: [Circular]",
	}, "\n")
	if !strings.HasSuffix(got, want) {
		t.Fatalf("unexpected rendering:\ngot  %q\nwant suffix %q", got, want)
	}
}

func TestFormatCyclicValuesInsideLists(t *testing.T) {
	s := []any{nil}
	s[0] = s
	m := map[string]any{}
	m["self"] = m

	got := formatPlain(erronaut.KindInfo, erronaut.Msg("m", "list", s, "maps", []any{m}), "")
	lines := strings.Split(got, "\n")
	for _, want := range []string{`List: "[]interface {}"`, `Maps: "[]interface {}"`} {
		if !containsLine(lines, want) {
			t.Fatalf("expected line %q in %q", want, got)
		}
	}
}

func TestFormatDepthLimit(t *testing.T) {
	record := erronaut.Group("leaf", 1)
	for range 40 {
		record = erronaut.Group("next", record)
	}
	got := formatPlain(erronaut.KindInfo, erronaut.Msg("m", "next", record), "")
	if !strings.Contains(got, "Next: …") {
		t.Fatalf("deep records should be truncated: %q", got)
	}
	if strings.Contains(got, "Leaf:") {
		t.Fatalf("leaf beyond the depth limit should not render")
	}
	if n := strings.Count(got, "Next:"); n != 16 {
		t.Fatalf("expected 16 rendered levels, got %d", n)
	}
}
