package output

import (
	"fmt"
	"strings"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// ConsoleFormatter renders the report as human-readable text tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var b strings.Builder

	title := "MONTE CARLO SIMULATION"
	if report.Name != "" {
		title = fmt.Sprintf("MONTE CARLO SIMULATION: %s", strings.ToUpper(report.Name))
	}
	writeHeader(&b, title)

	params := report.Parameters
	fmt.Fprintf(&b, "Initial Investment:   %s\n", FormatCurrency(params.InitialInvestment.InexactFloat64()))
	fmt.Fprintf(&b, "Monthly Contribution: %s\n", FormatCurrency(params.MonthlyContribution.InexactFloat64()))
	fmt.Fprintf(&b, "Horizon:              %d years\n", params.Years)
	fmt.Fprintf(&b, "Expected Return:      %s\n", FormatRate(params.ExpectedReturn))
	fmt.Fprintf(&b, "Volatility:           %s\n", FormatRate(params.Volatility))
	fmt.Fprintf(&b, "Paths:                %d\n", params.Paths)

	terminal := report.Statistics.Terminal
	writeHeader(&b, "FINAL PORTFOLIO VALUE")
	fmt.Fprintf(&b, "Median: %s\n", FormatCurrency(terminal.Median))
	fmt.Fprintf(&b, "Mean:   %s\n", FormatCurrency(terminal.Mean))
	fmt.Fprintf(&b, "Min:    %s\n", FormatCurrency(terminal.Min))
	fmt.Fprintf(&b, "Max:    %s\n", FormatCurrency(terminal.Max))

	if len(terminal.TargetProbabilities) > 0 {
		writeHeader(&b, "TARGET PROBABILITIES")
		for _, tp := range terminal.TargetProbabilities {
			fmt.Fprintf(&b, "%-16s %s\n", FormatCurrency(tp.Target), FormatPercentage(tp.Probability))
		}
	}

	if len(terminal.MonthlyIncome) > 0 {
		writeHeader(&b, "MONTHLY INCOME BY WITHDRAWAL RATE")
		fmt.Fprintf(&b, "%-8s %-14s %-14s %-14s %-14s\n", "Rate", "Median", "Mean", "Low (5th)", "High (95th)")
		for _, wi := range terminal.MonthlyIncome {
			fmt.Fprintf(&b, "%-8s %-14s %-14s %-14s %-14s\n",
				FormatRate(wi.AnnualRate),
				FormatCurrency(wi.Median),
				FormatCurrency(wi.Mean),
				FormatCurrency(wi.Low),
				FormatCurrency(wi.High))
		}
	}

	if report.Readiness != nil {
		c.writeReadiness(&b, report.Readiness)
	}

	if report.Growth != nil {
		c.writeGrowth(&b, report.Growth)
	}

	if len(report.SuccessRates) > 0 {
		writeHeader(&b, "WITHDRAWAL SUCCESS RATES")
		fmt.Fprintf(&b, "%-14s %-14s %-18s %s\n", "Monthly", "Annual", "Required", "Success Rate")
		for _, ws := range report.SuccessRates {
			fmt.Fprintf(&b, "%-14s %-14s %-18s %s\n",
				FormatCurrency(ws.MonthlyWithdrawal),
				FormatCurrency(ws.AnnualWithdrawal),
				FormatCurrency(ws.RequiredPrincipal),
				FormatPercentage(ws.SuccessRate))
		}
	}

	return []byte(b.String()), nil
}

func (c ConsoleFormatter) writeReadiness(b *strings.Builder, r *domain.ReadinessResult) {
	writeHeader(b, "RETIREMENT READINESS")
	fmt.Fprintf(b, "Target Monthly Income: %s\n", FormatCurrency(r.TargetMonthlyIncome))
	fmt.Fprintf(b, "Withdrawal Rate:       %s\n", FormatRate(r.WithdrawalRate))
	fmt.Fprintf(b, "Required Principal:    %s\n", FormatCurrency(r.RequiredPrincipal))
	fmt.Fprintf(b, "Success Rate:          %s\n", FormatPercentage(r.SuccessRate))
	if r.TargetReachable {
		fmt.Fprintf(b, "Years to Retirement:   %.2f\n", r.YearsToRetirement)
	} else {
		fmt.Fprintf(b, "Years to Retirement:   not reached within horizon\n")
	}
	fmt.Fprintf(b, "\nProjected monthly income (%% of target):\n")
	fmt.Fprintf(b, "  5th Percentile:  %-14s (%s)\n", FormatCurrency(r.MonthlyIncome.P5), FormatPercentage(r.IncomePercentOfTarget.P5))
	fmt.Fprintf(b, "  Median:          %-14s (%s)\n", FormatCurrency(r.MonthlyIncome.Median), FormatPercentage(r.IncomePercentOfTarget.Median))
	fmt.Fprintf(b, "  Mean:            %-14s (%s)\n", FormatCurrency(r.MonthlyIncome.Mean), FormatPercentage(r.IncomePercentOfTarget.Mean))
	fmt.Fprintf(b, "  95th Percentile: %-14s (%s)\n", FormatCurrency(r.MonthlyIncome.P95), FormatPercentage(r.IncomePercentOfTarget.P95))
}

func (c ConsoleFormatter) writeGrowth(b *strings.Builder, g *domain.GrowthProjection) {
	if len(g.Annual) > 0 {
		writeHeader(b, "COMPOUND GROWTH")
		fmt.Fprintf(b, "%-6s %-16s %-16s %s\n", "Year", "Balance", "Contributions", "Earnings")
		for _, p := range g.Annual {
			fmt.Fprintf(b, "%-6d %-16s %-16s %s\n",
				p.Year,
				FormatCurrency(p.Balance),
				FormatCurrency(p.Contributions),
				FormatCurrency(p.Earnings))
		}
	}

	if len(g.Portfolio) > 0 {
		writeHeader(b, "PORTFOLIO GROWTH")
		fmt.Fprintf(b, "%-6s %-16s %-16s %-16s %s\n", "Year", "US Stocks", "International", "Bonds", "Total")
		for _, y := range g.Portfolio {
			fmt.Fprintf(b, "%-6d %-16s %-16s %-16s %s\n",
				y.Year,
				FormatCurrency(y.USStocks),
				FormatCurrency(y.InternationalStocks),
				FormatCurrency(y.Bonds),
				FormatCurrency(y.TotalBalance))
		}
	}

	if len(g.FeeImpact) > 0 {
		writeHeader(b, "FEE IMPACT")
		fmt.Fprintf(b, "%-6s %-16s %-16s %s\n", "Year", "Current", "Alternative", "Difference")
		for _, y := range g.FeeImpact {
			fmt.Fprintf(b, "%-6d %-16s %-16s %s\n",
				y.Year,
				FormatCurrency(y.BalanceCurrent),
				FormatCurrency(y.BalanceAlternative),
				FormatCurrency(y.FeeImpact))
		}
	}
}

func writeHeader(b *strings.Builder, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n")
}
