package nobitex

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a document is not syntactically valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON document")

// DecodeDocument parses a JSON document into the raw-value form the Parse
// functions accept: map[string]any, []any, string, bool, json.Number and nil.
// Numbers keep their raw literal as a json.Number so decimal fields never pass
// through a binary float before coercion.
func DecodeDocument(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return rawValue(gjson.ParseBytes(data)), nil
}

func rawValue(r gjson.Result) any {
	switch {
	case r.Type == gjson.Null:
		return nil
	case r.IsObject():
		m := make(map[string]any)
		r.ForEach(func(k, v gjson.Result) bool {
			m[k.String()] = rawValue(v)
			return true
		})
		return m
	case r.IsArray():
		items := r.Array()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, rawValue(item))
		}
		return out
	case r.Type == gjson.Number:
		return json.Number(r.Raw)
	case r.Type == gjson.True, r.Type == gjson.False:
		return r.Bool()
	default:
		return r.String()
	}
}

// ParseCandleEntryJSON decodes and validates a single candle document.
func ParseCandleEntryJSON(data []byte) (CandleEntry, error) {
	v, err := DecodeDocument(data)
	if err != nil {
		return CandleEntry{}, err
	}
	return ParseCandleEntry(v)
}

// ParseCandleSeriesJSON decodes and validates a candle series document.
func ParseCandleSeriesJSON(data []byte) (CandleSeries, error) {
	v, err := DecodeDocument(data)
	if err != nil {
		return CandleSeries{}, err
	}
	return ParseCandleSeries(v)
}

// ParseSymbolCandleMapJSON decodes and validates a per-symbol candle document.
func ParseSymbolCandleMapJSON(data []byte) (SymbolCandleMap, error) {
	v, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	return ParseSymbolCandleMap(v)
}

// ParseTradeEntryJSON decodes and validates a single trade document.
func ParseTradeEntryJSON(data []byte) (TradeEntry, error) {
	v, err := DecodeDocument(data)
	if err != nil {
		return TradeEntry{}, err
	}
	return ParseTradeEntry(v)
}

// ParseTradeBatchJSON decodes and validates a trades response document.
func ParseTradeBatchJSON(data []byte) (TradeBatch, error) {
	v, err := DecodeDocument(data)
	if err != nil {
		return TradeBatch{}, err
	}
	return ParseTradeBatch(v)
}

// ParseSymbolTradeMapJSON decodes and validates a per-symbol trades document.
func ParseSymbolTradeMapJSON(data []byte) (SymbolTradeMap, error) {
	v, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	return ParseSymbolTradeMap(v)
}
