package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestegg/retirement-simulator/internal/config"
	"github.com/nestegg/retirement-simulator/internal/domain"
	"github.com/nestegg/retirement-simulator/internal/logging"
	"github.com/nestegg/retirement-simulator/internal/output"
	"github.com/nestegg/retirement-simulator/internal/simulation"
)

var (
	scenarioFile string
	reportFormat string
	reportDir    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a Monte Carlo simulation from a scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(scenarioFile)
		if err != nil {
			return err
		}

		report, err := runScenario(scenario)
		if err != nil {
			return err
		}

		return output.GenerateReport(report, reportFormat, reportDir)
	},
}

func init() {
	simulateCmd.Flags().StringVarP(&scenarioFile, "config", "c", "", "scenario YAML file (required)")
	simulateCmd.Flags().StringVarP(&reportFormat, "format", "f", "console", "output format: console, json, csv")
	simulateCmd.Flags().StringVarP(&reportDir, "output", "o", "", "directory for report files (default: current directory)")
	_ = simulateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(simulateCmd)
}

// runScenario wires the pipeline: simulate, aggregate, then readiness,
// success rates and the deterministic growth projection as requested
// by the scenario's optional sections.
func runScenario(scenario *domain.Scenario) (*domain.SimulationReport, error) {
	engine := simulation.NewEngine()
	engine.Logger = logging.EngineLogger{}

	matrix, err := engine.Run(scenario.Simulation)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	stats, err := simulation.Aggregate(matrix, aggregationOptions(scenario.Aggregation))
	if err != nil {
		return nil, fmt.Errorf("aggregation failed: %w", err)
	}

	report := &domain.SimulationReport{
		Name:       scenario.Name,
		Parameters: scenario.Simulation,
		Statistics: *stats,
	}

	if r := scenario.Readiness; r != nil {
		readiness, err := simulation.SolveReadiness(
			r.TargetMonthlyIncome.InexactFloat64(),
			matrix.FinalRow(),
			stats.TimeSeries.Median,
			stats.TimeSeries.TimePoints,
			r.WithdrawalRate,
		)
		if err != nil {
			return nil, fmt.Errorf("readiness failed: %w", err)
		}
		report.Readiness = readiness
	}

	if sr := scenario.SuccessRates; sr != nil {
		rate := sr.WithdrawalRate
		if rate == 0 {
			rate = simulation.DefaultWithdrawalRate
		}
		amounts := make([]float64, len(sr.MonthlyWithdrawals))
		for i, amount := range sr.MonthlyWithdrawals {
			amounts[i] = amount.InexactFloat64()
		}
		scenarios, err := simulation.EvaluateSuccessRates(matrix.FinalRow(), amounts, rate)
		if err != nil {
			return nil, fmt.Errorf("success rates failed: %w", err)
		}
		report.SuccessRates = scenarios
	}

	if g := scenario.Growth; g != nil {
		growth, err := simulation.ProjectGrowth(*g)
		if err != nil {
			return nil, fmt.Errorf("growth projection failed: %w", err)
		}
		report.Growth = growth
	}

	return report, nil
}

func aggregationOptions(cfg domain.AggregationConfig) simulation.AggregationOptions {
	opts := simulation.AggregationOptions{
		ConfidenceLevels: cfg.ConfidenceLevels,
		WithdrawalRates:  cfg.WithdrawalRates,
	}
	if len(cfg.TargetAmounts) > 0 {
		opts.TargetAmounts = make([]float64, len(cfg.TargetAmounts))
		for i, target := range cfg.TargetAmounts {
			opts.TargetAmounts[i] = target.InexactFloat64()
		}
	}
	return opts
}
