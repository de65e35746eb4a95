package nobitex

import (
	"encoding/json"
	"errors"
	"testing"
)

// go test -v --run TestDecodeDocument
func TestDecodeDocument(t *testing.T) {
	v, err := DecodeDocument([]byte(`{"data": [[1699000000000, "50000.5", 51000.123456789, "49500.0", "50500.0", "100.5"]], "ok": true, "note": null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("top level is %T, want map", v)
	}
	if record["ok"] != true {
		t.Errorf("ok = %v, want true", record["ok"])
	}
	if record["note"] != nil {
		t.Errorf("note = %v, want nil", record["note"])
	}

	rows := record["data"].([]any)
	row := rows[0].([]any)

	// Numbers keep their raw literal, no float64 round-trip.
	if n, ok := row[0].(json.Number); !ok || n.String() != "1699000000000" {
		t.Errorf("timestamp decoded as %T %v, want json.Number 1699000000000", row[0], row[0])
	}
	if n, ok := row[2].(json.Number); !ok || n.String() != "51000.123456789" {
		t.Errorf("high decoded as %T %v, want literal 51000.123456789", row[2], row[2])
	}
	if s, ok := row[1].(string); !ok || s != "50000.5" {
		t.Errorf("open decoded as %T %v, want string", row[1], row[1])
	}
}

// go test -v --run TestDecodeDocumentInvalid
func TestDecodeDocumentInvalid(t *testing.T) {
	_, err := DecodeDocument([]byte(`{"data": [`))
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}

// go test -v --run TestParseCandleSeriesJSON
func TestParseCandleSeriesJSON(t *testing.T) {
	series, err := ParseCandleSeriesJSON([]byte(`{
		"data": [
			[1699000000000, "50000.123456789", "51000.0", "49500.0", "50500.0", "100.5"],
			{"timestamp": 1699003600000, "open": "50500", "high": "52000", "low": "50000", "close": "51500", "volume": "150"}
		]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Data) != 2 {
		t.Fatalf("len = %d, want 2", len(series.Data))
	}
	if got := series.Data[0].Open.String(); got != "50000.123456789" {
		t.Errorf("open = %q, want 50000.123456789", got)
	}
}

// go test -v --run TestParseCandleSeriesJSONUnquotedNumbers
func TestParseCandleSeriesJSONUnquotedNumbers(t *testing.T) {
	// Precision survives even when the exchange emits bare JSON numbers.
	series, err := ParseCandleSeriesJSON([]byte(`{"data": [[1699000000000, 50000.123456789, 51000.987654321, 49500.0, 50500.0, 100.5]]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := series.Data[0].Open.String(); got != "50000.123456789" {
		t.Errorf("open = %q, want 50000.123456789", got)
	}
}

// go test -v --run TestParseSymbolTradeMapJSON
func TestParseSymbolTradeMapJSON(t *testing.T) {
	all, err := ParseSymbolTradeMapJSON([]byte(`{
		"BTCUSDT": {
			"trades": [{"market": "BTC-USDT", "price": "50000", "amount": "0.1", "total": "5000", "type": "sell", "timestamp": "2024-01-01T10:00:00+00:00"}],
			"status": "ok"
		}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if all["BTCUSDT"].Trades[0].Type != TradeTypeSell {
		t.Errorf("type = %q, want sell", all["BTCUSDT"].Trades[0].Type)
	}
}
