package inspect

import (
	"errors"
	"testing"

	"nbxschema/pkg/nobitex"

	"go.uber.org/zap"
)

// go test -v --run TestInspectValidCandles
func TestInspectValidCandles(t *testing.T) {
	ins := New(zap.NewNop())

	report, err := ins.Inspect(KindCandles, []byte(`{
		"data": [
			[1699000000000, "50000.5", "51000.0", "49500.0", "50500.0", "100.5"],
			[1699003600000, "50500.0", "52000.0", "50000.0", "51500.0", "150.75"]
		]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Valid {
		t.Error("valid document reported invalid")
	}
	if report.Items != 2 {
		t.Errorf("items = %d, want 2", report.Items)
	}
	if report.Problems != 0 {
		t.Errorf("problems = %d, want 0", report.Problems)
	}
}

// go test -v --run TestInspectCountsProblems
func TestInspectCountsProblems(t *testing.T) {
	ins := New(zap.NewNop())

	// One bad symbol with two broken candles, one healthy symbol.
	report, err := ins.Inspect(KindSymbolCandles, []byte(`{
		"BTCUSDT": {"data": [[1699000000000, "50000", "51000", "49500", "50500", "100"]]},
		"ETHUSDT": {"data": [
			[0, "100", "90", "50", "95", "1"],
			[0, "100", "110", "50", "bad", "1"]
		]}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Valid {
		t.Error("invalid document reported valid")
	}
	if report.Problems != 2 {
		t.Errorf("problems = %d, want 2", report.Problems)
	}
}

// go test -v --run TestInspectTrades
func TestInspectTrades(t *testing.T) {
	ins := New(zap.NewNop())

	report, err := ins.Inspect(KindTrades, []byte(`{"trades": [], "status": "ok"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Valid || report.Items != 0 {
		t.Errorf("empty batch: valid=%v items=%d, want valid with 0 items", report.Valid, report.Items)
	}
}

// go test -v --run TestInspectUnknownKind
func TestInspectUnknownKind(t *testing.T) {
	ins := New(zap.NewNop())

	if _, err := ins.Inspect(Kind("orders"), []byte(`{}`)); err == nil {
		t.Error("unknown kind accepted, want error")
	}
}

// go test -v --run TestInspectMalformedJSON
func TestInspectMalformedJSON(t *testing.T) {
	ins := New(zap.NewNop())

	_, err := ins.Inspect(KindCandles, []byte(`{"data": [`))
	if !errors.Is(err, nobitex.ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}
