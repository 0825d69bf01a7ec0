package simulation

import (
	"math"
	"sync"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

const defaultWorkers = 10

// Engine generates Monte Carlo portfolio trajectories. The zero value
// is not usable; create one with NewEngine and override fields as
// needed (tests typically swap Source for a fixed generator).
type Engine struct {
	// Workers bounds the number of paths simulated concurrently.
	Workers int
	// Source builds the per-path random stream.
	Source SourceFactory
	Logger Logger
}

// NewEngine creates an engine with the default Box-Muller randomness
// and a bounded worker pool.
func NewEngine() *Engine {
	return &Engine{
		Workers: defaultWorkers,
		Source:  NewBoxMullerSource,
		Logger:  NopLogger{},
	}
}

// Run simulates params.Paths independent monthly trajectories and
// returns the full matrix. Annual return and volatility are converted
// to monthly figures (return/12, volatility/sqrt(12)); each month the
// contribution is added before the growth multiplier, and the final
// month receives growth only.
func (e *Engine) Run(params domain.SimulationParameters) (*TrajectoryMatrix, error) {
	if err := validateParameters(params); err != nil {
		return nil, err
	}

	months := params.Years * 12
	monthlyReturn := params.ExpectedReturn / 12
	monthlyVolatility := params.Volatility / math.Sqrt(12)
	initial := params.InitialInvestment.InexactFloat64()
	contribution := params.MonthlyContribution.InexactFloat64()

	seed := params.Seed
	if seed == 0 {
		seed = seedFunc()
	}

	e.Logger.Debugf("simulating %d paths over %d months (seed=%d)", params.Paths, months, seed)

	matrix := NewTrajectoryMatrix(months, params.Paths)

	workers := e.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for p := 0; p < params.Paths; p++ {
		wg.Add(1)
		go func(path int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			src := e.Source(seed + int64(path))
			e.simulatePath(matrix, path, initial, contribution, monthlyReturn, monthlyVolatility, src)
		}(p)
	}

	wg.Wait()

	return matrix, nil
}

// simulatePath fills one column of the matrix. Each write targets a
// distinct cell, so columns can be filled concurrently without locks.
func (e *Engine) simulatePath(matrix *TrajectoryMatrix, path int, initial, contribution, monthlyReturn, monthlyVolatility float64, src NormalSource) {
	months := matrix.Months()
	value := initial
	matrix.Set(0, path, value)

	for t := 1; t <= months; t++ {
		monthReturn := monthlyReturn + monthlyVolatility*src.NormFloat64()
		base := value
		if t < months {
			base += contribution
		}
		value = base * (1 + monthReturn)
		matrix.Set(t, path, value)
	}
}

func validateParameters(params domain.SimulationParameters) error {
	if params.Years < 1 {
		return invalidParamf("years must be at least 1, got %d", params.Years)
	}
	if params.Paths < 1 {
		return invalidParamf("paths must be at least 1, got %d", params.Paths)
	}
	if params.Volatility < 0 {
		return invalidParamf("volatility cannot be negative, got %v", params.Volatility)
	}
	if params.InitialInvestment.IsNegative() {
		return invalidParamf("initial investment cannot be negative, got %s", params.InitialInvestment)
	}
	if params.MonthlyContribution.IsNegative() {
		return invalidParamf("monthly contribution cannot be negative, got %s", params.MonthlyContribution)
	}
	return nil
}
