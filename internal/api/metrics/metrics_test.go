package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, direction string) float64 {
	t.Helper()
	var m dto.Metric
	if err := StockMovementTotal.WithLabelValues(direction).Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestObserveStockDelta(t *testing.T) {
	in, out := counterValue(t, "in"), counterValue(t, "out")

	ObserveStockDelta(5)
	ObserveStockDelta(-3)
	ObserveStockDelta(0)

	if got := counterValue(t, "in") - in; got != 5 {
		t.Fatalf("expected in +5, got %v", got)
	}
	if got := counterValue(t, "out") - out; got != 3 {
		t.Fatalf("expected out +3, got %v", got)
	}
}
