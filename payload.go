package erronaut

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Field is one named detail value.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered detail record. Rendering keeps insertion order.
type Fields []Field

// Payload is what a panel reports: the primary message and its details.
type Payload struct {
	Message string
	Fields  Fields
}

// Msg builds a Payload from a message and alternating keys and values:
//
//	erronaut.Msg("timeout", "code", 504, "details", erronaut.Group("host", "api"))
//
// A dangling value without a key is stored under a synthetic argN key.
func Msg(msg string, keyvals ...any) Payload {
	return Payload{Message: msg, Fields: collectFields(keyvals)}
}

// Group builds a nested record from alternating keys and values. Use it as a
// value to get an indented block in the detail section.
func Group(keyvals ...any) Fields {
	return collectFields(keyvals)
}

// Get returns the value stored under key and whether it was present.
func (fs Fields) Get(key string) (any, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func collectFields(keyvals []any) Fields {
	if len(keyvals) == 0 {
		return nil
	}
	fields := make(Fields, 0, (len(keyvals)+1)/2)
	pair := 0
	for i := 0; i < len(keyvals); {
		if i+1 < len(keyvals) {
			fields = append(fields, Field{Key: keyFromValue(keyvals[i], pair), Value: keyvals[i+1]})
			i += 2
			pair++
			continue
		}
		fields = append(fields, Field{Key: argKeyName(pair), Value: keyvals[i]})
		i++
		pair++
	}
	return fields
}

// keyFromValue never panics; a key whose String or Error method fails falls
// back to the synthetic argN name.
func keyFromValue(v any, pair int) (key string) {
	defer func() {
		if r := recover(); r != nil {
			key = argKeyName(pair)
		}
	}()
	switch k := v.(type) {
	case nil:
		return argKeyName(pair)
	case string:
		if k == "" {
			return argKeyName(pair)
		}
		return k
	case fmt.Stringer:
		return k.String()
	case error:
		return k.Error()
	default:
		return fmt.Sprint(v)
	}
}

func argKeyName(pair int) string {
	return "arg" + strconv.Itoa(pair)
}

// nestedFields reports whether v renders as an indented sub-record: Fields,
// Payload, map[string]any, and any struct or map whose JSON form is an
// object.
func nestedFields(v any) (Fields, bool) {
	switch rec := v.(type) {
	case Fields:
		return rec, true
	case []Field:
		return Fields(rec), true
	case Payload:
		if rec.Message == "" {
			return rec.Fields, true
		}
		out := make(Fields, 0, len(rec.Fields)+1)
		out = append(out, Field{Key: "message", Value: rec.Message})
		return append(out, rec.Fields...), true
	case map[string]any:
		// Go maps carry no insertion order; sort for stable output.
		out := make(Fields, 0, len(rec))
		for _, k := range slices.Sorted(maps.Keys(rec)) {
			out = append(out, Field{Key: k, Value: rec[k]})
		}
		return out, true
	default:
		return objectFields(v)
	}
}
