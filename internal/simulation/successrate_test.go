package simulation

import (
	"errors"
	"testing"
)

func TestEvaluateSuccessRates(t *testing.T) {
	terminal := []float64{250000, 300000, 350000, 400000}

	scenarios, err := EvaluateSuccessRates(terminal, []float64{1000}, 0.04)
	if err != nil {
		t.Fatalf("EvaluateSuccessRates failed: %v", err)
	}

	if len(scenarios) != 1 {
		t.Fatalf("Expected one scenario, got %d", len(scenarios))
	}
	s := scenarios[0]
	if s.RequiredPrincipal != 300000 {
		t.Errorf("Expected required principal 300000, got %v", s.RequiredPrincipal)
	}
	if s.AnnualWithdrawal != 12000 {
		t.Errorf("Expected annual withdrawal 12000, got %v", s.AnnualWithdrawal)
	}
	if s.SuccessRate != 75 {
		t.Errorf("Expected 75%% success (300k ties count), got %v", s.SuccessRate)
	}
}

func TestEvaluateSuccessRatesPreservesOrder(t *testing.T) {
	terminal := []float64{500000, 900000, 1200000}
	amounts := []float64{3000, 1000, 2000, 1000}

	scenarios, err := EvaluateSuccessRates(terminal, amounts, 0.04)
	if err != nil {
		t.Fatalf("EvaluateSuccessRates failed: %v", err)
	}

	if len(scenarios) != len(amounts) {
		t.Fatalf("Expected %d scenarios (no deduplication), got %d", len(amounts), len(scenarios))
	}
	for i, amount := range amounts {
		if scenarios[i].MonthlyWithdrawal != amount {
			t.Errorf("Position %d: expected %v, got %v", i, amount, scenarios[i].MonthlyWithdrawal)
		}
	}
}

func TestEvaluateSuccessRatesInvalidInputs(t *testing.T) {
	if _, err := EvaluateSuccessRates([]float64{100000}, []float64{1000}, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for zero rate, got %v", err)
	}
	if _, err := EvaluateSuccessRates(nil, []float64{1000}, 0.04); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for empty terminal values, got %v", err)
	}
}

func TestEvaluateSuccessRatesEmptyAmounts(t *testing.T) {
	scenarios, err := EvaluateSuccessRates([]float64{100000}, nil, 0.04)
	if err != nil {
		t.Fatalf("Empty amount list should not error: %v", err)
	}
	if len(scenarios) != 0 {
		t.Errorf("Expected no scenarios, got %d", len(scenarios))
	}
}
