package nobitex

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Accepted trade type tokens. Comparison is case-sensitive.
const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"
)

// TradeEntry is one executed trade. Total is taken as the exchange reports it
// and is not checked against price*amount. Timestamp is kept as text: a
// structured time is rendered as RFC 3339, any other value passes through
// verbatim with no format validation.
type TradeEntry struct {
	Market    string          `json:"market"`    // Trading pair, free-form (may contain non-ASCII currency symbols)
	Price     decimal.Decimal `json:"price"`     // Execution price
	Amount    decimal.Decimal `json:"amount"`    // Traded amount of the base asset
	Total     decimal.Decimal `json:"total"`     // Quoted total as reported
	Type      string          `json:"type"`      // "buy" or "sell"
	Timestamp string          `json:"timestamp"` // ISO-8601 text as supplied or rendered
}

// TradeBatch is one trades response: the entries in supplied order plus the
// API's status label, which is carried through without interpretation.
type TradeBatch struct {
	Trades []TradeEntry `json:"trades"`
	Status string       `json:"status"`
}

// SymbolTradeMap maps an exchange symbol to its trade batch, for responses
// that nest trades per symbol.
type SymbolTradeMap map[string]TradeBatch

// ParseTradeEntry validates one raw trade record. All field problems are
// collected before returning.
func ParseTradeEntry(v any) (TradeEntry, error) {
	record, ok := v.(map[string]any)
	if !ok {
		return TradeEntry{}, &ShapeError{Want: "keyed record", Got: v}
	}

	var entry TradeEntry
	var errs []error

	if raw, ok := record["market"]; !ok {
		errs = append(errs, &MissingFieldError{Field: "market"})
	} else if s, err := coerceString("market", raw); err != nil {
		errs = append(errs, err)
	} else {
		entry.Market = s
	}

	amounts := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"price", &entry.Price},
		{"amount", &entry.Amount},
		{"total", &entry.Total},
	}
	for _, a := range amounts {
		raw, ok := record[a.name]
		if !ok {
			errs = append(errs, &MissingFieldError{Field: a.name})
			continue
		}
		d, err := coerceDecimal(a.name, raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*a.dst = d
	}

	if raw, ok := record["type"]; !ok {
		errs = append(errs, &MissingFieldError{Field: "type"})
	} else if s, isStr := raw.(string); isStr && (s == TradeTypeBuy || s == TradeTypeSell) {
		entry.Type = s
	} else {
		errs = append(errs, &CoercionError{
			Field:   "type",
			Value:   raw,
			Want:    "trade type",
			Allowed: []string{TradeTypeBuy, TradeTypeSell},
		})
	}

	if raw, ok := record["timestamp"]; !ok {
		errs = append(errs, &MissingFieldError{Field: "timestamp"})
	} else {
		entry.Timestamp = stringifyTimestamp(raw)
	}

	if err := aggregate(errs); err != nil {
		return TradeEntry{}, err
	}
	return entry, nil
}

// ParseTradeBatch validates a trades response: a "trades" list where each
// element goes through ParseTradeEntry, plus a required "status" string. An
// empty trades list is valid.
func ParseTradeBatch(v any) (TradeBatch, error) {
	record, ok := v.(map[string]any)
	if !ok {
		return TradeBatch{}, &ShapeError{Want: "keyed record", Got: v}
	}

	var batch TradeBatch
	var errs []error

	if raw, ok := record["status"]; !ok {
		errs = append(errs, &MissingFieldError{Field: "status"})
	} else if s, err := coerceString("status", raw); err != nil {
		errs = append(errs, err)
	} else {
		batch.Status = s
	}

	raw, ok := record["trades"]
	if !ok {
		errs = append(errs, &MissingFieldError{Field: "trades"})
		return TradeBatch{}, aggregate(errs)
	}
	rows, ok := raw.([]any)
	if !ok {
		errs = append(errs, &ShapeError{Want: "list of trades", Got: raw})
		return TradeBatch{}, aggregate(errs)
	}

	batch.Trades = make([]TradeEntry, 0, len(rows))
	for i, row := range rows {
		entry, err := ParseTradeEntry(row)
		if err != nil {
			errs = append(errs, &ItemError{Index: i, Err: err})
			continue
		}
		batch.Trades = append(batch.Trades, entry)
	}
	if err := aggregate(errs); err != nil {
		return TradeBatch{}, err
	}
	return batch, nil
}

// ParseSymbolTradeMap validates a record mapping symbol names to raw trade
// batches. Every key is validated even after a failure.
func ParseSymbolTradeMap(v any) (SymbolTradeMap, error) {
	record, ok := v.(map[string]any)
	if !ok {
		return nil, &ShapeError{Want: "keyed record", Got: v}
	}

	symbols := make([]string, 0, len(record))
	for symbol := range record {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols) // stable error ordering

	out := make(SymbolTradeMap, len(record))
	var errs []error
	for _, symbol := range symbols {
		batch, err := ParseTradeBatch(record[symbol])
		if err != nil {
			errs = append(errs, &ItemError{Key: symbol, Err: err})
			continue
		}
		out[symbol] = batch
	}
	if err := aggregate(errs); err != nil {
		return nil, err
	}
	return out, nil
}
