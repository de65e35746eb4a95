package inspect

import (
	"errors"
	"fmt"

	"nbxschema/pkg/nobitex"

	"go.uber.org/zap"
)

// Kind selects which schema a document is validated against.
type Kind string

const (
	KindCandle        Kind = "candle"
	KindCandles       Kind = "candles"
	KindSymbolCandles Kind = "symbol-candles"
	KindTrade         Kind = "trade"
	KindTrades        Kind = "trades"
	KindSymbolTrades  Kind = "symbol-trades"
)

// Report summarizes one inspection run.
type Report struct {
	Kind     Kind
	Valid    bool
	Items    int // entries in the document (symbols for per-symbol kinds)
	Problems int // leaf validation failures logged
}

// Inspector validates raw exchange documents and logs what it finds. The
// schemas themselves never log; all reporting happens here.
type Inspector struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// Inspect decodes data and validates it against kind's schema. Validation
// failures are logged and counted in the report; the returned error is
// reserved for unusable input (unknown kind, malformed JSON).
func (ins *Inspector) Inspect(kind Kind, data []byte) (Report, error) {
	report := Report{Kind: kind}

	var err error
	switch kind {
	case KindCandle:
		_, err = nobitex.ParseCandleEntryJSON(data)
		report.Items = 1
	case KindCandles:
		var series nobitex.CandleSeries
		series, err = nobitex.ParseCandleSeriesJSON(data)
		report.Items = len(series.Data)
	case KindSymbolCandles:
		var all nobitex.SymbolCandleMap
		all, err = nobitex.ParseSymbolCandleMapJSON(data)
		report.Items = len(all)
	case KindTrade:
		_, err = nobitex.ParseTradeEntryJSON(data)
		report.Items = 1
	case KindTrades:
		var batch nobitex.TradeBatch
		batch, err = nobitex.ParseTradeBatchJSON(data)
		report.Items = len(batch.Trades)
	case KindSymbolTrades:
		var all nobitex.SymbolTradeMap
		all, err = nobitex.ParseSymbolTradeMapJSON(data)
		report.Items = len(all)
	default:
		return Report{}, fmt.Errorf("unknown schema kind: %q", kind)
	}

	if err != nil {
		if errors.Is(err, nobitex.ErrInvalidJSON) {
			return Report{}, err
		}
		report.Problems = ins.logFailures(err, nil)
		return report, nil
	}

	report.Valid = true
	return report, nil
}

// logFailures walks an error tree, logging each leaf failure together with the
// symbol/index context collected on the way down, and returns the leaf count.
func (ins *Inspector) logFailures(err error, fields []zap.Field) int {
	switch e := err.(type) {
	case *nobitex.AggregateError:
		count := 0
		for _, sub := range e.Errs {
			count += ins.logFailures(sub, fields)
		}
		return count
	case *nobitex.ItemError:
		scoped := make([]zap.Field, len(fields), len(fields)+1)
		copy(scoped, fields)
		if e.Key != "" {
			scoped = append(scoped, zap.String("symbol", e.Key))
		} else {
			scoped = append(scoped, zap.Int("index", e.Index))
		}
		return ins.logFailures(e.Err, scoped)
	default:
		ins.logger.Warn("validation failure", append(fields, zap.String("reason", err.Error()))...)
		return 1
	}
}
