package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// CSVSummarizer exports the terminal statistics, target probabilities,
// withdrawal income table, success rates and growth projection as CSV
// sections separated by blank lines.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	terminal := report.Statistics.Terminal
	records := [][]string{
		{"Statistic", "Value"},
		{"Final Median", fmtFloat(terminal.Median)},
		{"Final Mean", fmtFloat(terminal.Mean)},
		{"Final Min", fmtFloat(terminal.Min)},
		{"Final Max", fmtFloat(terminal.Max)},
		{},
		{"Target", "Probability (%)"},
	}
	for _, tp := range terminal.TargetProbabilities {
		records = append(records, []string{fmtFloat(tp.Target), fmtFloat(tp.Probability)})
	}

	records = append(records, nil, []string{"Annual Rate", "Median Income", "Mean Income", "Low (5th)", "High (95th)"})
	for _, wi := range terminal.MonthlyIncome {
		records = append(records, []string{
			fmtFloat(wi.AnnualRate),
			fmtFloat(wi.Median),
			fmtFloat(wi.Mean),
			fmtFloat(wi.Low),
			fmtFloat(wi.High),
		})
	}

	if len(report.SuccessRates) > 0 {
		records = append(records, nil, []string{"Monthly Withdrawal", "Annual Withdrawal", "Required Principal", "Success Rate (%)"})
		for _, ws := range report.SuccessRates {
			records = append(records, []string{
				fmtFloat(ws.MonthlyWithdrawal),
				fmtFloat(ws.AnnualWithdrawal),
				fmtFloat(ws.RequiredPrincipal),
				fmtFloat(ws.SuccessRate),
			})
		}
	}

	if g := report.Growth; g != nil {
		if len(g.Annual) > 0 {
			records = append(records, nil, []string{"Year", "Balance", "Contributions", "Earnings"})
			for _, p := range g.Annual {
				records = append(records, []string{
					strconv.Itoa(p.Year),
					fmtFloat(p.Balance),
					fmtFloat(p.Contributions),
					fmtFloat(p.Earnings),
				})
			}
		}
		if len(g.Portfolio) > 0 {
			records = append(records, nil, []string{"Year", "US Stocks", "International", "Bonds", "Total Balance"})
			for _, y := range g.Portfolio {
				records = append(records, []string{
					strconv.Itoa(y.Year),
					fmtFloat(y.USStocks),
					fmtFloat(y.InternationalStocks),
					fmtFloat(y.Bonds),
					fmtFloat(y.TotalBalance),
				})
			}
		}
		if len(g.FeeImpact) > 0 {
			records = append(records, nil, []string{"Year", "Balance Current", "Balance Alternative", "Fee Impact"})
			for _, y := range g.FeeImpact {
				records = append(records, []string{
					strconv.Itoa(y.Year),
					fmtFloat(y.BalanceCurrent),
					fmtFloat(y.BalanceAlternative),
					fmtFloat(y.FeeImpact),
				})
			}
		}
	}

	for _, record := range records {
		if len(record) == 0 {
			record = []string{""}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
