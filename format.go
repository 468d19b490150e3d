package erronaut

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	// UnknownErrorMessage replaces an empty message on error panels.
	UnknownErrorMessage = "Unknown error"

	messagePrefix = "Message: "
	detailIndent  = "  "

	// maxDetailDepth bounds nested detail records. Deeper records render
	// as truncatedValue.
	maxDetailDepth = 16
	truncatedValue = "…"
	circularValue  = "[Circular]"
)

// panelText is the unstyled content of one panel.
type panelText struct {
	title    string
	message  string
	details  []detailLine
	location string
}

// detailLine is one rendered detail. A header opens a nested record and has no
// value of its own.
type detailLine struct {
	depth  int
	key    string
	value  string
	header bool
}

// textStyles decorates the parts of a panel. The zero value leaves text as is.
type textStyles struct {
	title    func(string) string
	message  func(string) string
	key      func(string) string
	location func(string) string
}

func apply(style func(string) string, s string) string {
	if style == nil {
		return s
	}
	return style(s)
}

func buildPanelText(kind Kind, title string, p Payload, location, timestamp string) panelText {
	msg := p.Message
	if msg == "" && kind == KindError {
		msg = UnknownErrorMessage
	}
	if title == "" {
		title = kind.Title()
	}
	if timestamp != "" {
		title += " - " + timestamp
	}
	return panelText{
		title:    title,
		message:  msg,
		details:  appendDetails(nil, p.Fields, 0, nil),
		location: location,
	}
}

// body lays the panel out as title, message, details and location separated
// by blank lines. Missing details or location leave no blank lines behind.
func (pt panelText) body(st textStyles) string {
	var b strings.Builder
	b.WriteString(apply(st.title, pt.title))
	b.WriteString("\n\n")
	b.WriteString(apply(st.message, messagePrefix+pt.message))
	if len(pt.details) > 0 {
		b.WriteString("\n\n")
		for i, line := range pt.details {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line.render(st))
		}
	}
	if pt.location != "" {
		b.WriteString("\n\n")
		b.WriteString(apply(st.location, pt.location))
	}
	return b.String()
}

func (d detailLine) render(st textStyles) string {
	indent := strings.Repeat(detailIndent, d.depth)
	key := apply(st.key, d.key+":")
	if d.header {
		return indent + key
	}
	return indent + key + " " + d.value
}

// appendDetails renders fields at depth. path holds the identities of the
// records being rendered above this one; a record that contains itself
// renders as circularValue instead of recursing.
func appendDetails(lines []detailLine, fields Fields, depth int, path []uintptr) []detailLine {
	for _, f := range fields {
		if depth == 0 && strings.EqualFold(f.Key, "message") {
			continue
		}
		key := capitalize(f.Key)
		nested, ok := nestedFields(f.Value)
		if !ok {
			lines = append(lines, detailLine{depth: depth, key: key, value: compactJSON(f.Value)})
			continue
		}
		id := recordID(f.Value)
		switch {
		case id != 0 && slices.Contains(path, id):
			lines = append(lines, detailLine{depth: depth, key: key, value: circularValue})
		case depth+1 >= maxDetailDepth:
			lines = append(lines, detailLine{depth: depth, key: key, value: truncatedValue})
		case len(nested) == 0:
			lines = append(lines, detailLine{depth: depth, key: key, value: "{}"})
		default:
			lines = append(lines, detailLine{depth: depth, key: key, header: true})
			lines = appendDetails(lines, nested, depth+1, append(path, id))
		}
	}
	return lines
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// compactJSON renders v as single-line JSON. Values encoding/json cannot
// handle fall back to a quoted description.
func compactJSON(v any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallbackValue(v)
		}
	}()
	switch val := v.(type) {
	case error:
		return strconv.Quote(val.Error())
	case time.Duration:
		return strconv.Quote(val.String())
	}
	raw, err := marshalJSON(v)
	if err != nil {
		return fallbackValue(v)
	}
	return string(raw)
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// fallbackValue describes a value encoding/json rejected. Composite values
// are named by type only; printing them could recurse forever on a cycle.
func fallbackValue(v any) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Interface:
		return strconv.Quote(fmt.Sprintf("%T", v))
	default:
		return strconv.Quote(fmt.Sprint(v))
	}
}

// recordID identifies a map or slice backed record so cycles can be
// detected. Values without a stable identity return 0.
func recordID(v any) uintptr {
	if p, ok := v.(Payload); ok {
		v = p.Fields
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return rv.Pointer()
	default:
		return 0
	}
}

// objectFields turns a struct, a pointer to a struct or a map whose JSON
// form is an object into an ordered record, keeping the JSON field order.
// Errors are left to compactJSON.
func objectFields(v any) (fs Fields, ok bool) {
	if _, isErr := v.(error); isErr {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			fs, ok = nil, false
		}
	}()
	raw, err := marshalJSON(v)
	if err != nil {
		return nil, false
	}
	return jsonObjectFields(raw)
}

func jsonObjectFields(raw []byte) (Fields, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, false
	}
	fs := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		if nested, ok := jsonObjectFields(value); ok {
			fs = append(fs, Field{Key: key, Value: nested})
			continue
		}
		fs = append(fs, Field{Key: key, Value: value})
	}
	return fs, true
}
