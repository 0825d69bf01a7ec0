package simulation

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// DefaultWithdrawalRate is the 4% rule.
const DefaultWithdrawalRate = 0.04

// SolveReadiness derives the principal required to fund
// targetMonthlyIncome under the withdrawal rule, the share of paths
// that reach it, the income the terminal distribution would actually
// deliver, and the first point at which the median trajectory crosses
// the requirement. If the median never crosses within the horizon the
// result carries TargetReachable=false and YearsToRetirement must be
// ignored.
func SolveReadiness(targetMonthlyIncome float64, terminalValues, medianSeries, timePoints []float64, withdrawalRate float64) (*domain.ReadinessResult, error) {
	if withdrawalRate <= 0 {
		return nil, invalidParamf("withdrawal rate must be positive, got %v", withdrawalRate)
	}
	if targetMonthlyIncome <= 0 {
		return nil, invalidParamf("target monthly income must be positive, got %v", targetMonthlyIncome)
	}
	if len(terminalValues) == 0 {
		return nil, invalidParamf("terminal values must not be empty")
	}
	if len(medianSeries) != len(timePoints) {
		return nil, invalidParamf("median series has %d steps but %d time points", len(medianSeries), len(timePoints))
	}

	requiredPrincipal := targetMonthlyIncome * 12 / withdrawalRate

	sorted := make([]float64, len(terminalValues))
	copy(sorted, terminalValues)
	sort.Float64s(sorted)

	monthlyRate := withdrawalRate / 12
	income := domain.IncomeProjection{
		P5:     stat.Quantile(0.05, stat.LinInterp, sorted, nil) * monthlyRate,
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil) * monthlyRate,
		Mean:   stat.Mean(sorted, nil) * monthlyRate,
		P95:    stat.Quantile(0.95, stat.LinInterp, sorted, nil) * monthlyRate,
	}

	result := &domain.ReadinessResult{
		TargetMonthlyIncome: targetMonthlyIncome,
		WithdrawalRate:      withdrawalRate,
		RequiredPrincipal:   requiredPrincipal,
		SuccessRate:         percentAtOrAbove(sorted, requiredPrincipal),
		MonthlyIncome:       income,
		IncomePercentOfTarget: domain.IncomeProjection{
			P5:     income.P5 / targetMonthlyIncome * 100,
			Median: income.Median / targetMonthlyIncome * 100,
			Mean:   income.Mean / targetMonthlyIncome * 100,
			P95:    income.P95 / targetMonthlyIncome * 100,
		},
	}

	for i, median := range medianSeries {
		if median >= requiredPrincipal {
			result.TargetReachable = true
			result.YearsToRetirement = timePoints[i]
			break
		}
	}

	return result, nil
}
