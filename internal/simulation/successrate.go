package simulation

import (
	"sort"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// EvaluateSuccessRates converts each candidate monthly withdrawal to a
// required principal under the withdrawal rule and reports the share
// of paths whose terminal value clears it. Output order matches input
// order; no deduplication or sorting is applied.
func EvaluateSuccessRates(terminalValues, monthlyWithdrawals []float64, withdrawalRate float64) ([]domain.WithdrawalScenario, error) {
	if withdrawalRate <= 0 {
		return nil, invalidParamf("withdrawal rate must be positive, got %v", withdrawalRate)
	}
	if len(terminalValues) == 0 {
		return nil, invalidParamf("terminal values must not be empty")
	}

	sorted := make([]float64, len(terminalValues))
	copy(sorted, terminalValues)
	sort.Float64s(sorted)

	scenarios := make([]domain.WithdrawalScenario, 0, len(monthlyWithdrawals))
	for _, monthly := range monthlyWithdrawals {
		requiredPrincipal := monthly * 12 / withdrawalRate
		scenarios = append(scenarios, domain.WithdrawalScenario{
			MonthlyWithdrawal: monthly,
			AnnualWithdrawal:  monthly * 12,
			RequiredPrincipal: requiredPrincipal,
			SuccessRate:       percentAtOrAbove(sorted, requiredPrincipal),
		})
	}

	return scenarios, nil
}
