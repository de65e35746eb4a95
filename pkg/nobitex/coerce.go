package nobitex

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// coerceInt converts a raw value to int64. Accepts integer kinds, integral
// floats and decimal-digit strings; anything else fails.
func coerceInt(field string, v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case json.Number:
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return i, nil
		}
	case float64:
		if i := int64(n); float64(i) == n {
			return i, nil
		}
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, nil
		}
	}
	return 0, &CoercionError{Field: field, Value: v, Want: "integer"}
}

// coerceDecimal converts a raw value to an exact decimal. String and
// json.Number inputs keep their literal digits; a float input is converted from
// its shortest decimal representation (the caller already lost the original
// literal by the time a float exists).
func coerceDecimal(field string, v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case string:
		if d, err := decimal.NewFromString(n); err == nil {
			return d, nil
		}
	case json.Number:
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return d, nil
		}
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	}
	return decimal.Decimal{}, &CoercionError{Field: field, Value: v, Want: "decimal"}
}

// coerceString requires the raw value to already be a string; other types are
// not silently stringified.
func coerceString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &CoercionError{Field: field, Value: v, Want: "string"}
	}
	return s, nil
}

// stringifyTimestamp renders a trade timestamp. Structured times become their
// RFC 3339 form; every other value passes through as text, unchecked.
func stringifyTimestamp(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
