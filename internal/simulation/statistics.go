package simulation

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// Default aggregation inputs, matching the common dashboard
// presentation: a 90% band, a 50% band and the median; the 4% rule and
// its neighbors for withdrawal income.
var (
	DefaultConfidenceLevels = []float64{0.05, 0.25, 0.5, 0.75, 0.95}
	DefaultWithdrawalRates  = []float64{0.03, 0.035, 0.04, 0.045, 0.05}
)

// DefaultTargetAmounts returns the stock set of wealth targets for a
// given starting amount: double it, 5x it, and the 1/2/5 million marks.
func DefaultTargetAmounts(initialInvestment float64) []float64 {
	return []float64{
		initialInvestment * 2,
		initialInvestment * 5,
		1_000_000,
		2_000_000,
		5_000_000,
	}
}

// AggregationOptions selects the statistics derived from a matrix.
// Nil slices fall back to the package defaults.
type AggregationOptions struct {
	ConfidenceLevels []float64
	TargetAmounts    []float64
	WithdrawalRates  []float64
}

// Aggregate reduces the trajectory matrix to per-step percentile bands
// and terminal scalar statistics. It is a pure function: calling it
// twice with the same inputs yields identical results.
func Aggregate(matrix *TrajectoryMatrix, opts AggregationOptions) (*domain.SimulationStatistics, error) {
	if matrix == nil || matrix.Paths() < 1 {
		return nil, invalidParamf("matrix must contain at least one path")
	}

	levels := opts.ConfidenceLevels
	if len(levels) == 0 {
		levels = DefaultConfidenceLevels
	}
	for _, level := range levels {
		if level < 0 || level > 1 {
			return nil, invalidParamf("confidence level must be in [0, 1], got %v", level)
		}
	}
	rates := opts.WithdrawalRates
	if len(rates) == 0 {
		rates = DefaultWithdrawalRates
	}
	for _, rate := range rates {
		if rate <= 0 {
			return nil, invalidParamf("withdrawal rate must be positive, got %v", rate)
		}
	}
	targets := opts.TargetAmounts
	if len(targets) == 0 {
		targets = DefaultTargetAmounts(matrix.At(0, 0))
	}

	rows := matrix.Rows()
	series := domain.TimeSeriesStatistics{
		TimePoints: matrix.TimePoints(),
		Mean:       make([]float64, rows),
		Median:     make([]float64, rows),
		Bands:      make([]domain.PercentileBand, len(levels)),
	}
	for i, level := range levels {
		series.Bands[i] = domain.PercentileBand{
			Level:  level,
			Values: make([]float64, rows),
		}
	}

	// Row buffer reused across time steps; Quantile requires sorted
	// input so each step works on a sorted copy of the row.
	sorted := make([]float64, matrix.Paths())
	for t := 0; t < rows; t++ {
		row := matrix.Row(t)
		copy(sorted, row)
		sort.Float64s(sorted)

		series.Mean[t] = stat.Mean(sorted, nil)
		series.Median[t] = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
		for i, level := range levels {
			series.Bands[i].Values[t] = stat.Quantile(level, stat.LinInterp, sorted, nil)
		}
	}

	copy(sorted, matrix.FinalRow())
	sort.Float64s(sorted)
	terminal := terminalStatistics(sorted, targets, rates)

	return &domain.SimulationStatistics{
		TimeSeries: series,
		Terminal:   terminal,
	}, nil
}

// terminalStatistics reduces the sorted final row. The caller
// guarantees final is sorted ascending and non-empty.
func terminalStatistics(final []float64, targets []float64, rates []float64) domain.TerminalStatistics {
	stats := domain.TerminalStatistics{
		Mean:   stat.Mean(final, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, final, nil),
		Min:    final[0],
		Max:    final[len(final)-1],
	}

	stats.TargetProbabilities = make([]domain.TargetProbability, 0, len(targets))
	for _, target := range targets {
		stats.TargetProbabilities = append(stats.TargetProbabilities, domain.TargetProbability{
			Target:      target,
			Probability: percentAtOrAbove(final, target),
		})
	}

	low := stat.Quantile(0.05, stat.LinInterp, final, nil)
	high := stat.Quantile(0.95, stat.LinInterp, final, nil)
	stats.MonthlyIncome = make([]domain.WithdrawalIncome, 0, len(rates))
	for _, rate := range rates {
		monthly := rate / 12
		stats.MonthlyIncome = append(stats.MonthlyIncome, domain.WithdrawalIncome{
			AnnualRate: rate,
			Median:     stats.Median * monthly,
			Mean:       stats.Mean * monthly,
			Low:        low * monthly,
			High:       high * monthly,
		})
	}

	return stats
}

// percentAtOrAbove returns the share (0-100) of sorted values that are
// greater than or equal to threshold.
func percentAtOrAbove(sorted []float64, threshold float64) float64 {
	idx := sort.SearchFloat64s(sorted, threshold)
	return float64(len(sorted)-idx) / float64(len(sorted)) * 100
}
