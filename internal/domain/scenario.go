package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario is the top-level input document for a simulation run.
// It is loaded from a YAML file by the config package; every section
// other than Simulation is optional.
type Scenario struct {
	Name         string               `yaml:"name" json:"name"`
	Simulation   SimulationParameters `yaml:"simulation" json:"simulation"`
	Aggregation  AggregationConfig    `yaml:"aggregation" json:"aggregation"`
	Readiness    *ReadinessConfig     `yaml:"readiness,omitempty" json:"readiness,omitempty"`
	SuccessRates *SuccessRateConfig   `yaml:"success_rates,omitempty" json:"success_rates,omitempty"`
	Growth       *GrowthConfig        `yaml:"growth,omitempty" json:"growth,omitempty"`
}

// SimulationParameters describes a single stochastic projection.
// Returns and volatility are annual decimals (0.07 = 7%); the engine
// derives the monthly figures.
type SimulationParameters struct {
	InitialInvestment   decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               int             `yaml:"years" json:"years"`
	ExpectedReturn      float64         `yaml:"expected_return" json:"expected_return"`
	Volatility          float64         `yaml:"volatility" json:"volatility"`
	Paths               int             `yaml:"paths" json:"paths"`
	// Seed makes the run reproducible when non-zero.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// AggregationConfig selects which statistics are derived from the
// trajectory matrix. Empty slices fall back to the engine defaults.
type AggregationConfig struct {
	ConfidenceLevels []float64         `yaml:"confidence_levels,omitempty" json:"confidence_levels,omitempty"`
	TargetAmounts    []decimal.Decimal `yaml:"target_amounts,omitempty" json:"target_amounts,omitempty"`
	WithdrawalRates  []float64         `yaml:"withdrawal_rates,omitempty" json:"withdrawal_rates,omitempty"`
}

// ReadinessConfig asks "can I retire on this monthly income".
type ReadinessConfig struct {
	TargetMonthlyIncome decimal.Decimal `yaml:"target_monthly_income" json:"target_monthly_income"`
	WithdrawalRate      float64         `yaml:"withdrawal_rate" json:"withdrawal_rate"`
}

// SuccessRateConfig tests a list of candidate monthly withdrawals
// against the terminal distribution.
type SuccessRateConfig struct {
	MonthlyWithdrawals []decimal.Decimal `yaml:"monthly_withdrawals" json:"monthly_withdrawals"`
	WithdrawalRate     float64           `yaml:"withdrawal_rate,omitempty" json:"withdrawal_rate,omitempty"`
}

// GrowthConfig drives the deterministic compound-growth projector and
// the optional fee-impact comparison. When the three allocations are
// set (they must then sum to 100) the projection splits across the
// US / international / bond components with per-component returns;
// otherwise AnnualReturnPercent drives a single combined projection.
type GrowthConfig struct {
	InitialInvestment   decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               int             `yaml:"years" json:"years"`
	AnnualReturnPercent float64         `yaml:"annual_return_percent" json:"annual_return_percent"`

	USAllocation               float64 `yaml:"us_allocation,omitempty" json:"us_allocation,omitempty"`
	InternationalAllocation    float64 `yaml:"international_allocation,omitempty" json:"international_allocation,omitempty"`
	BondAllocation             float64 `yaml:"bond_allocation,omitempty" json:"bond_allocation,omitempty"`
	USReturnPercent            float64 `yaml:"us_return_percent,omitempty" json:"us_return_percent,omitempty"`
	InternationalReturnPercent float64 `yaml:"international_return_percent,omitempty" json:"international_return_percent,omitempty"`
	BondReturnPercent          float64 `yaml:"bond_return_percent,omitempty" json:"bond_return_percent,omitempty"`

	// Expense ratios in percent; AlternativeExpensePercent of zero means
	// "half of current", matching the comparison default.
	CurrentExpensePercent     float64 `yaml:"current_expense_percent,omitempty" json:"current_expense_percent,omitempty"`
	AlternativeExpensePercent float64 `yaml:"alternative_expense_percent,omitempty" json:"alternative_expense_percent,omitempty"`
}
