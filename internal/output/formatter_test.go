package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

func sampleReport() *domain.SimulationReport {
	return &domain.SimulationReport{
		Name: "Sample",
		Parameters: domain.SimulationParameters{
			InitialInvestment:   decimal.NewFromInt(100000),
			MonthlyContribution: decimal.NewFromInt(1000),
			Years:               1,
			ExpectedReturn:      0.07,
			Volatility:          0.15,
			Paths:               2,
		},
		Statistics: domain.SimulationStatistics{
			TimeSeries: domain.TimeSeriesStatistics{
				TimePoints: []float64{0, 1},
				Mean:       []float64{100000, 120000},
				Median:     []float64{100000, 118000},
				Bands: []domain.PercentileBand{
					{Level: 0.05, Values: []float64{100000, 90000}},
					{Level: 0.95, Values: []float64{100000, 150000}},
				},
			},
			Terminal: domain.TerminalStatistics{
				Mean:   120000,
				Median: 118000,
				Min:    90000,
				Max:    150000,
				TargetProbabilities: []domain.TargetProbability{
					{Target: 200000, Probability: 12.5},
				},
				MonthlyIncome: []domain.WithdrawalIncome{
					{AnnualRate: 0.04, Median: 393.33, Mean: 400, Low: 300, High: 500},
				},
			},
		},
		Readiness: &domain.ReadinessResult{
			TargetMonthlyIncome: 5000,
			WithdrawalRate:      0.04,
			RequiredPrincipal:   1500000,
			SuccessRate:         0,
			TargetReachable:     false,
		},
		SuccessRates: []domain.WithdrawalScenario{
			{MonthlyWithdrawal: 1000, AnnualWithdrawal: 12000, RequiredPrincipal: 300000, SuccessRate: 0},
		},
	}
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "parameters")
	assert.Contains(t, decoded, "statistics")
	assert.Contains(t, decoded, "readiness")

	readiness := decoded["readiness"].(map[string]any)
	assert.Equal(t, false, readiness["target_reachable"])
	assert.Equal(t, 1500000.0, readiness["required_principal"])
}

func TestCSVSummarizer(t *testing.T) {
	data, err := CSVSummarizer{}.Format(sampleReport())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Final Median,118000.00")
	assert.Contains(t, text, "Target,Probability (%)")
	assert.Contains(t, text, "Monthly Withdrawal,Annual Withdrawal")
	assert.Contains(t, text, "300000.00")
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "MONTE CARLO SIMULATION: SAMPLE")
	assert.Contains(t, text, "FINAL PORTFOLIO VALUE")
	assert.Contains(t, text, "$118,000.00")
	assert.Contains(t, text, "RETIREMENT READINESS")
	assert.Contains(t, text, "not reached within horizon")
	assert.Contains(t, text, "WITHDRAWAL SUCCESS RATES")
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "csv"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.NotNil(t, GetFormatterByName(" JSON "))
	assert.Nil(t, GetFormatterByName("html"))
}

func TestGenerateReportUnsupportedFormat(t *testing.T) {
	err := GenerateReport(sampleReport(), "carrier-pigeon", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.True(t, strings.Contains(err.Error(), "console"))
}

func TestWriteFormattedToDirectory(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFormatted(JSONFormatter{}, sampleReport(), "json", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "simulation_report_"))
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "statistics")
}

func TestGenerateReportWritesFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, GenerateReport(sampleReport(), "csv", dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".csv"))
}

func TestFormattersRenderGrowth(t *testing.T) {
	report := sampleReport()
	report.Growth = &domain.GrowthProjection{
		Annual: []domain.GrowthPoint{
			{Year: 0, Balance: 10000, Contributions: 10000},
			{Year: 1, Balance: 17000, Contributions: 16000, Earnings: 1000},
		},
		FeeImpact: []domain.FeeImpactYear{
			{Year: 1, BalanceCurrent: 16900, BalanceAlternative: 16950, FeeImpact: 50},
		},
	}

	console, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(console), "COMPOUND GROWTH")
	assert.Contains(t, string(console), "FEE IMPACT")
	assert.Contains(t, string(console), "$17,000.00")

	csvData, err := CSVSummarizer{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "Year,Balance,Contributions,Earnings")
	assert.Contains(t, string(csvData), "1,17000.00,16000.00,1000.00")
	assert.Contains(t, string(csvData), "Year,Balance Current,Balance Alternative,Fee Impact")

	jsonData, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(jsonData, &decoded))
	assert.Contains(t, decoded, "growth")
}

func TestConsoleFormatterRendersPortfolioGrowth(t *testing.T) {
	report := sampleReport()
	report.Growth = &domain.GrowthProjection{
		Portfolio: []domain.PortfolioGrowthYear{
			{Year: 1, USStocks: 6000, InternationalStocks: 3000, Bonds: 1000, TotalBalance: 10000},
		},
	}

	console, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(console), "PORTFOLIO GROWTH")
	assert.Contains(t, string(console), "$6,000.00")
}
