package nobitex

import (
	"fmt"
	"strconv"
	"strings"
)

// maxValueRunes caps how much of an offending value is echoed back in error text.
const maxValueRunes = 64

// ShapeError reports a raw value whose runtime shape cannot hold the expected
// structure (e.g., a list supplied where a keyed record is required).
type ShapeError struct {
	Want string // expected shape, e.g. "keyed record"
	Got  any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, shapeName(e.Got))
}

// MissingFieldError reports a required field absent after shape normalization.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field is missing", e.Field)
}

// CoercionError reports a field value that cannot be converted to its target type.
// Allowed is set for enumerated fields and lists the accepted tokens.
type CoercionError struct {
	Field   string
	Value   any
	Want    string // target type, e.g. "decimal", "integer"
	Allowed []string
}

func (e *CoercionError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("%s: invalid value %s, must be one of: %s",
			e.Field, renderValue(e.Value), strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("%s: cannot convert %s to %s", e.Field, renderValue(e.Value), e.Want)
}

// InvariantError reports a cross-field rule that failed after every involved
// field coerced successfully.
type InvariantError struct {
	Rule   string // the rule itself, e.g. "high >= max(open, close)"
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Detail)
}

// ItemError locates a failed element inside a collection or map. Key is set for
// map entries; otherwise Index identifies the list position.
type ItemError struct {
	Index int
	Key   string
	Err   error
}

func (e *ItemError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("[%d]: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// AggregateError collects every failure found in one validation pass, so a
// single parse call reports all problems instead of just the first.
type AggregateError struct {
	Errs []error
}

func (e *AggregateError) Error() string {
	if len(e.Errs) == 1 {
		return e.Errs[0].Error()
	}
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e.Errs), strings.Join(parts, "; "))
}

func (e *AggregateError) Unwrap() []error { return e.Errs }

// aggregate wraps errs, or reports success when there are none.
func aggregate(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &AggregateError{Errs: errs}
}

// shapeName names a raw value's runtime shape for error messages.
func shapeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "keyed record"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}

// renderValue formats an offending value for error text, quoting strings and
// truncating anything past maxValueRunes.
func renderValue(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		s = strconv.Quote(val)
	default:
		s = fmt.Sprintf("%v", val)
	}
	if runes := []rune(s); len(runes) > maxValueRunes {
		s = string(runes[:maxValueRunes]) + "..."
	}
	return s
}
