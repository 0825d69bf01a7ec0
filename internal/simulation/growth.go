package simulation

import (
	"math"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// CompoundGrowth projects a deterministic monthly schedule of balance,
// cumulative contributions and earnings. annualReturnPercent is a
// percentage (7.0 = 7%); the monthly rate is the geometric twelfth
// root, and the contribution is added before each month's growth.
func CompoundGrowth(initialInvestment, monthlyContribution float64, years int, annualReturnPercent float64) ([]domain.GrowthPoint, error) {
	if years < 1 {
		return nil, invalidParamf("years must be at least 1, got %d", years)
	}
	if initialInvestment < 0 {
		return nil, invalidParamf("initial investment cannot be negative, got %v", initialInvestment)
	}
	if monthlyContribution < 0 {
		return nil, invalidParamf("monthly contribution cannot be negative, got %v", monthlyContribution)
	}

	monthlyRate := math.Pow(1+annualReturnPercent/100, 1.0/12) - 1
	months := years * 12

	points := make([]domain.GrowthPoint, months+1)
	points[0] = domain.GrowthPoint{
		Balance:       initialInvestment,
		Contributions: initialInvestment,
	}

	for i := 1; i <= months; i++ {
		balance := (points[i-1].Balance + monthlyContribution) * (1 + monthlyRate)
		contributions := points[i-1].Contributions + monthlyContribution
		points[i] = domain.GrowthPoint{
			Month:         i,
			Year:          i / 12,
			Balance:       balance,
			Contributions: contributions,
			Earnings:      balance - contributions,
		}
	}

	return points, nil
}

// PortfolioSpec describes the three-component portfolio projection.
// Allocations are percentages that must sum to 100; returns are
// annual percentages per component.
type PortfolioSpec struct {
	InitialInvestment          float64
	MonthlyContribution        float64
	Years                      int
	USAllocation               float64
	InternationalAllocation    float64
	BondAllocation             float64
	USReturnPercent            float64
	InternationalReturnPercent float64
	BondReturnPercent          float64
}

// PortfolioGrowth splits the initial amount and contribution across
// the three components, projects each with CompoundGrowth, and returns
// annual combined snapshots.
func PortfolioGrowth(spec PortfolioSpec) ([]domain.PortfolioGrowthYear, error) {
	total := spec.USAllocation + spec.InternationalAllocation + spec.BondAllocation
	if math.Abs(total-100) > 1e-9 {
		return nil, invalidParamf("allocations must sum to 100, got %v", total)
	}

	us, err := CompoundGrowth(
		spec.InitialInvestment*spec.USAllocation/100,
		spec.MonthlyContribution*spec.USAllocation/100,
		spec.Years, spec.USReturnPercent)
	if err != nil {
		return nil, err
	}
	intl, err := CompoundGrowth(
		spec.InitialInvestment*spec.InternationalAllocation/100,
		spec.MonthlyContribution*spec.InternationalAllocation/100,
		spec.Years, spec.InternationalReturnPercent)
	if err != nil {
		return nil, err
	}
	bond, err := CompoundGrowth(
		spec.InitialInvestment*spec.BondAllocation/100,
		spec.MonthlyContribution*spec.BondAllocation/100,
		spec.Years, spec.BondReturnPercent)
	if err != nil {
		return nil, err
	}

	annual := make([]domain.PortfolioGrowthYear, 0, spec.Years+1)
	for year := 0; year <= spec.Years; year++ {
		month := year * 12
		balance := us[month].Balance + intl[month].Balance + bond[month].Balance
		contributions := us[month].Contributions + intl[month].Contributions + bond[month].Contributions
		annual = append(annual, domain.PortfolioGrowthYear{
			Year:                year,
			USStocks:            us[month].Balance,
			InternationalStocks: intl[month].Balance,
			Bonds:               bond[month].Balance,
			TotalBalance:        balance,
			TotalContributions:  contributions,
			TotalEarnings:       balance - contributions,
		})
	}

	return annual, nil
}

// ProjectGrowth runs the projections a scenario's growth section asks
// for: the three-component breakdown when allocations are supplied,
// the single combined projection otherwise, plus the fee-impact
// comparison when a current expense ratio is set. Annual and Portfolio
// hold yearly snapshots.
func ProjectGrowth(cfg domain.GrowthConfig) (*domain.GrowthProjection, error) {
	initial := cfg.InitialInvestment.InexactFloat64()
	contribution := cfg.MonthlyContribution.InexactFloat64()

	projection := &domain.GrowthProjection{}

	if cfg.USAllocation+cfg.InternationalAllocation+cfg.BondAllocation > 0 {
		portfolio, err := PortfolioGrowth(PortfolioSpec{
			InitialInvestment:          initial,
			MonthlyContribution:        contribution,
			Years:                      cfg.Years,
			USAllocation:               cfg.USAllocation,
			InternationalAllocation:    cfg.InternationalAllocation,
			BondAllocation:             cfg.BondAllocation,
			USReturnPercent:            cfg.USReturnPercent,
			InternationalReturnPercent: cfg.InternationalReturnPercent,
			BondReturnPercent:          cfg.BondReturnPercent,
		})
		if err != nil {
			return nil, err
		}
		projection.Portfolio = portfolio
	} else {
		points, err := CompoundGrowth(initial, contribution, cfg.Years, cfg.AnnualReturnPercent)
		if err != nil {
			return nil, err
		}
		projection.Annual = annualSnapshots(points, cfg.Years)
	}

	if cfg.CurrentExpensePercent > 0 {
		impact, err := FeeImpact(initial, contribution, cfg.Years, cfg.AnnualReturnPercent, cfg.CurrentExpensePercent, cfg.AlternativeExpensePercent)
		if err != nil {
			return nil, err
		}
		projection.FeeImpact = impact
	}

	return projection, nil
}

func annualSnapshots(points []domain.GrowthPoint, years int) []domain.GrowthPoint {
	annual := make([]domain.GrowthPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		annual = append(annual, points[year*12])
	}
	return annual
}

// FeeImpact compares year-end balances under the current expense ratio
// and an alternative. A zero alternative means "half of current". All
// rate arguments are percentages.
func FeeImpact(initialInvestment, monthlyContribution float64, years int, expectedReturnPercent, currentExpensePercent, alternativeExpensePercent float64) ([]domain.FeeImpactYear, error) {
	if currentExpensePercent < 0 || alternativeExpensePercent < 0 {
		return nil, invalidParamf("expense ratios cannot be negative")
	}
	if alternativeExpensePercent == 0 {
		alternativeExpensePercent = currentExpensePercent / 2
	}

	current, err := CompoundGrowth(initialInvestment, monthlyContribution, years, expectedReturnPercent-currentExpensePercent)
	if err != nil {
		return nil, err
	}
	alternative, err := CompoundGrowth(initialInvestment, monthlyContribution, years, expectedReturnPercent-alternativeExpensePercent)
	if err != nil {
		return nil, err
	}

	comparison := make([]domain.FeeImpactYear, 0, years+1)
	for year := 0; year <= years; year++ {
		month := year * 12
		comparison = append(comparison, domain.FeeImpactYear{
			Year:               year,
			BalanceCurrent:     current[month].Balance,
			BalanceAlternative: alternative[month].Balance,
			FeeImpact:          alternative[month].Balance - current[month].Balance,
		})
	}

	return comparison, nil
}
