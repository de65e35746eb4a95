// Package nobitex validates raw Nobitex market-data responses (OHLC candles and
// trade listings) into typed, internally consistent structures. Input is the
// already-deserialized JSON value; no network or storage happens here.
package nobitex

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// CandleEntry is a single OHLC bar. Timestamp unit (seconds vs milliseconds) is
// whatever the endpoint returned; disambiguation is left to the caller.
// Entries are constructed by ParseCandleEntry and never mutated afterwards.
type CandleEntry struct {
	Timestamp int64           `json:"timestamp"` // Interval start (seconds or milliseconds since epoch)
	Open      decimal.Decimal `json:"open"`      // Opening price
	High      decimal.Decimal `json:"high"`      // Highest price during the interval
	Low       decimal.Decimal `json:"low"`       // Lowest price during the interval
	Close     decimal.Decimal `json:"close"`     // Closing price
	Volume    decimal.Decimal `json:"volume"`    // Traded volume, zero when the source omits it
}

// CandleSeries holds candles in the order the exchange supplied them.
// Chronological ordering is not verified; callers that need monotonic
// timestamps must check themselves.
type CandleSeries struct {
	Data []CandleEntry `json:"data"`
}

// SymbolCandleMap maps an exchange symbol (e.g., "BTCUSDT") to its series.
type SymbolCandleMap map[string]CandleSeries

// normalizeCandleShape maps a positional candle row onto field names: rows of
// 6+ elements are [timestamp, open, high, low, close, volume, ...] with extras
// ignored, rows of exactly 5 get a zero volume. Any other shape passes through
// untouched so field validation reports what is actually missing.
func normalizeCandleShape(v any) any {
	row, ok := v.([]any)
	if !ok {
		return v
	}
	switch {
	case len(row) >= 6:
		return map[string]any{
			"timestamp": row[0],
			"open":      row[1],
			"high":      row[2],
			"low":       row[3],
			"close":     row[4],
			"volume":    row[5],
		}
	case len(row) == 5:
		return map[string]any{
			"timestamp": row[0],
			"open":      row[1],
			"high":      row[2],
			"low":       row[3],
			"close":     row[4],
			"volume":    decimal.Zero,
		}
	default:
		return v
	}
}

// ParseCandleEntry validates one raw candle in either positional or keyed form.
// All field problems are collected before returning; the high/low rule runs
// only once every price field has coerced.
func ParseCandleEntry(v any) (CandleEntry, error) {
	record, _ := normalizeCandleShape(v).(map[string]any)

	var entry CandleEntry
	var errs []error

	if raw, ok := record["timestamp"]; !ok {
		errs = append(errs, &MissingFieldError{Field: "timestamp"})
	} else if ts, err := coerceInt("timestamp", raw); err != nil {
		errs = append(errs, err)
	} else {
		entry.Timestamp = ts
	}

	prices := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"open", &entry.Open},
		{"high", &entry.High},
		{"low", &entry.Low},
		{"close", &entry.Close},
	}
	pricesOK := true
	for _, p := range prices {
		raw, ok := record[p.name]
		if !ok {
			errs = append(errs, &MissingFieldError{Field: p.name})
			pricesOK = false
			continue
		}
		d, err := coerceDecimal(p.name, raw)
		if err != nil {
			errs = append(errs, err)
			pricesOK = false
			continue
		}
		*p.dst = d
	}

	// Volume is optional in keyed form and defaults to zero.
	entry.Volume = decimal.Zero
	if raw, ok := record["volume"]; ok {
		if d, err := coerceDecimal("volume", raw); err != nil {
			errs = append(errs, err)
		} else {
			entry.Volume = d
		}
	}

	if pricesOK {
		if entry.High.Cmp(entry.Open) < 0 || entry.High.Cmp(entry.Close) < 0 {
			errs = append(errs, &InvariantError{
				Rule:   "high >= max(open, close)",
				Detail: fmt.Sprintf("high %s is below open %s or close %s", entry.High, entry.Open, entry.Close),
			})
		}
		if entry.Low.Cmp(entry.Open) > 0 || entry.Low.Cmp(entry.Close) > 0 {
			errs = append(errs, &InvariantError{
				Rule:   "low <= min(open, close)",
				Detail: fmt.Sprintf("low %s is above open %s or close %s", entry.Low, entry.Open, entry.Close),
			})
		}
	}

	if err := aggregate(errs); err != nil {
		return CandleEntry{}, err
	}
	return entry, nil
}

// ParseCandleSeries validates a keyed record holding a list of raw candles
// under "data" ("values" is accepted as an alias; the production endpoint uses
// it for the same payload). Each element is normalized independently, so
// positional and keyed candles can be mixed in one series. An empty list is a
// valid, empty series.
func ParseCandleSeries(v any) (CandleSeries, error) {
	record, ok := v.(map[string]any)
	if !ok {
		return CandleSeries{}, &ShapeError{Want: "keyed record", Got: v}
	}
	raw, ok := record["data"]
	if !ok {
		raw, ok = record["values"]
	}
	if !ok {
		return CandleSeries{}, &MissingFieldError{Field: "data"}
	}
	rows, ok := raw.([]any)
	if !ok {
		return CandleSeries{}, &ShapeError{Want: "list of candles", Got: raw}
	}

	entries := make([]CandleEntry, 0, len(rows))
	var errs []error
	for i, row := range rows {
		entry, err := ParseCandleEntry(row)
		if err != nil {
			errs = append(errs, &ItemError{Index: i, Err: err})
			continue
		}
		entries = append(entries, entry)
	}
	if err := aggregate(errs); err != nil {
		return CandleSeries{}, err
	}
	return CandleSeries{Data: entries}, nil
}

// ParseSymbolCandleMap validates a record mapping symbol names to raw candle
// series. Every key is validated even after a failure, so the aggregate error
// names each offending symbol.
func ParseSymbolCandleMap(v any) (SymbolCandleMap, error) {
	record, ok := v.(map[string]any)
	if !ok {
		return nil, &ShapeError{Want: "keyed record", Got: v}
	}

	symbols := make([]string, 0, len(record))
	for symbol := range record {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols) // stable error ordering

	out := make(SymbolCandleMap, len(record))
	var errs []error
	for _, symbol := range symbols {
		series, err := ParseCandleSeries(record[symbol])
		if err != nil {
			errs = append(errs, &ItemError{Key: symbol, Err: err})
			continue
		}
		out[symbol] = series
	}
	if err := aggregate(errs); err != nil {
		return nil, err
	}
	return out, nil
}
