package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// InputParser handles parsing of scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario domain.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario validates the loaded scenario. Defaults for empty
// aggregation lists are applied later by the simulation package, so
// only supplied values are checked here.
func (ip *InputParser) ValidateScenario(scenario *domain.Scenario) error {
	if err := ip.validateSimulation(&scenario.Simulation); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if err := ip.validateAggregation(&scenario.Aggregation); err != nil {
		return fmt.Errorf("aggregation: %w", err)
	}
	if scenario.Readiness != nil {
		if err := ip.validateReadiness(scenario.Readiness); err != nil {
			return fmt.Errorf("readiness: %w", err)
		}
	}
	if scenario.SuccessRates != nil {
		if err := ip.validateSuccessRates(scenario.SuccessRates); err != nil {
			return fmt.Errorf("success_rates: %w", err)
		}
	}
	if scenario.Growth != nil {
		if err := ip.validateGrowth(scenario.Growth); err != nil {
			return fmt.Errorf("growth: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateSimulation(params *domain.SimulationParameters) error {
	if params.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if params.Paths < 1 {
		return fmt.Errorf("paths must be at least 1")
	}
	if params.Volatility < 0 {
		return fmt.Errorf("volatility cannot be negative")
	}
	if params.InitialInvestment.IsNegative() {
		return fmt.Errorf("initial investment cannot be negative")
	}
	if params.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateAggregation(agg *domain.AggregationConfig) error {
	for _, level := range agg.ConfidenceLevels {
		if level < 0 || level > 1 {
			return fmt.Errorf("confidence level %v must be between 0 and 1", level)
		}
	}
	for _, target := range agg.TargetAmounts {
		if !target.IsPositive() {
			return fmt.Errorf("target amount %s must be positive", target)
		}
	}
	for _, rate := range agg.WithdrawalRates {
		if rate <= 0 {
			return fmt.Errorf("withdrawal rate %v must be positive", rate)
		}
	}
	return nil
}

func (ip *InputParser) validateReadiness(readiness *domain.ReadinessConfig) error {
	if !readiness.TargetMonthlyIncome.IsPositive() {
		return fmt.Errorf("target monthly income must be positive")
	}
	if readiness.WithdrawalRate <= 0 {
		return fmt.Errorf("withdrawal rate must be positive")
	}
	return nil
}

func (ip *InputParser) validateSuccessRates(sr *domain.SuccessRateConfig) error {
	if len(sr.MonthlyWithdrawals) == 0 {
		return fmt.Errorf("monthly withdrawals must not be empty")
	}
	for _, amount := range sr.MonthlyWithdrawals {
		if !amount.IsPositive() {
			return fmt.Errorf("monthly withdrawal %s must be positive", amount)
		}
	}
	if sr.WithdrawalRate < 0 {
		return fmt.Errorf("withdrawal rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateGrowth(growth *domain.GrowthConfig) error {
	if growth.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if growth.InitialInvestment.IsNegative() {
		return fmt.Errorf("initial investment cannot be negative")
	}
	if growth.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if growth.CurrentExpensePercent < 0 || growth.AlternativeExpensePercent < 0 {
		return fmt.Errorf("expense ratios cannot be negative")
	}
	total := growth.USAllocation + growth.InternationalAllocation + growth.BondAllocation
	if total != 0 && math.Abs(total-100) > 1e-9 {
		return fmt.Errorf("allocations must sum to 100, got %v", total)
	}
	if growth.USAllocation < 0 || growth.InternationalAllocation < 0 || growth.BondAllocation < 0 {
		return fmt.Errorf("allocations cannot be negative")
	}
	return nil
}
