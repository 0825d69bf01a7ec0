package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// constSource returns the same standard-normal draw every month.
type constSource struct {
	z float64
}

func (s constSource) NormFloat64() float64 { return s.z }

func testParams(initial, contribution int64, years, paths int) domain.SimulationParameters {
	return domain.SimulationParameters{
		InitialInvestment:   decimal.NewFromInt(initial),
		MonthlyContribution: decimal.NewFromInt(contribution),
		Years:               years,
		Paths:               paths,
		Seed:                12345,
	}
}

func TestRunMatrixShape(t *testing.T) {
	params := testParams(10000, 500, 2, 7)
	params.ExpectedReturn = 0.07
	params.Volatility = 0.15

	matrix, err := NewEngine().Run(params)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if matrix.Rows() != 25 {
		t.Errorf("Expected 25 rows (2 years), got %d", matrix.Rows())
	}
	if matrix.Paths() != 7 {
		t.Errorf("Expected 7 paths, got %d", matrix.Paths())
	}
	for p := 0; p < matrix.Paths(); p++ {
		if matrix.At(0, p) != 10000 {
			t.Errorf("Row 0 path %d should equal the initial investment, got %v", p, matrix.At(0, p))
		}
	}
}

func TestRunZeroVolatilityNoContribution(t *testing.T) {
	// Zero growth, zero variance, zero contribution: every entry stays
	// at the initial investment exactly.
	params := testParams(10000, 0, 1, 1)

	matrix, err := NewEngine().Run(params)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for step := 0; step < matrix.Rows(); step++ {
		if got := matrix.At(step, 0); got != 10000 {
			t.Errorf("Step %d: expected 10000 exactly, got %v", step, got)
		}
	}
}

func TestRunContributionFinalMonthBoundary(t *testing.T) {
	// 12 monthly steps, contribution added on steps 1-11 only: the
	// terminal month receives growth but no new contribution.
	params := testParams(0, 1000, 1, 1)

	matrix, err := NewEngine().Run(params)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := matrix.At(11, 0); got != 11000 {
		t.Errorf("Expected 11000 after 11 contributions, got %v", got)
	}
	if got := matrix.At(12, 0); got != 11000 {
		t.Errorf("Terminal value should equal 11000 (no final-month contribution), got %v", got)
	}
}

func TestRunFixedSourceIsDeterministic(t *testing.T) {
	// With a zero-draw source the trajectory is plain monthly
	// compounding at expected_return/12.
	params := testParams(1000, 0, 1, 1)
	params.ExpectedReturn = 0.12
	params.Volatility = 0.20

	engine := NewEngine()
	engine.Source = func(seed int64) NormalSource { return constSource{} }

	matrix, err := engine.Run(params)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for step := 0; step <= 12; step++ {
		want := 1000 * math.Pow(1.01, float64(step))
		if got := matrix.At(step, 0); math.Abs(got-want) > 1e-9 {
			t.Errorf("Step %d: expected %v, got %v", step, want, got)
		}
	}
}

func TestRunSeedReproducibility(t *testing.T) {
	params := testParams(10000, 200, 3, 20)
	params.ExpectedReturn = 0.07
	params.Volatility = 0.15

	engine := NewEngine()
	first, err := engine.Run(params)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := engine.Run(params)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	for step := 0; step < first.Rows(); step++ {
		for p := 0; p < first.Paths(); p++ {
			if first.At(step, p) != second.At(step, p) {
				t.Fatalf("Seeded runs diverged at step %d path %d", step, p)
			}
		}
	}
}

func TestRunPathsAreIndependent(t *testing.T) {
	params := testParams(10000, 0, 1, 2)
	params.ExpectedReturn = 0.07
	params.Volatility = 0.15

	matrix, err := NewEngine().Run(params)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if matrix.At(12, 0) == matrix.At(12, 1) {
		t.Error("Two volatile paths produced identical terminal values; random streams are shared")
	}
}

func TestRunInvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.SimulationParameters)
	}{
		{"zero years", func(p *domain.SimulationParameters) { p.Years = 0 }},
		{"negative years", func(p *domain.SimulationParameters) { p.Years = -5 }},
		{"zero paths", func(p *domain.SimulationParameters) { p.Paths = 0 }},
		{"negative volatility", func(p *domain.SimulationParameters) { p.Volatility = -0.1 }},
		{"negative initial", func(p *domain.SimulationParameters) { p.InitialInvestment = decimal.NewFromInt(-1) }},
		{"negative contribution", func(p *domain.SimulationParameters) { p.MonthlyContribution = decimal.NewFromInt(-1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := testParams(10000, 100, 10, 100)
			tc.mutate(&params)

			_, err := NewEngine().Run(params)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestRunNegativeExpectedReturnAllowed(t *testing.T) {
	params := testParams(10000, 0, 1, 1)
	params.ExpectedReturn = -0.12

	matrix, err := NewEngine().Run(params)
	if err != nil {
		t.Fatalf("Negative expected return should be accepted: %v", err)
	}

	want := 10000 * math.Pow(0.99, 12)
	if got := matrix.At(12, 0); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v with -1%% monthly return, got %v", want, got)
	}
}
