package domain

// TimeSeriesStatistics holds cross-path reductions at every time step.
// All slices are indexed by time step (months+1 entries); TimePoints is
// the matching x-axis in years.
type TimeSeriesStatistics struct {
	TimePoints []float64        `json:"time_points"`
	Mean       []float64        `json:"mean"`
	Median     []float64        `json:"median"`
	Bands      []PercentileBand `json:"bands"`
}

// PercentileBand is one requested confidence level over time.
type PercentileBand struct {
	Level  float64   `json:"level"`
	Values []float64 `json:"values"`
}

// TerminalStatistics are scalar reductions over the final time step.
type TerminalStatistics struct {
	Mean                float64             `json:"mean"`
	Median              float64             `json:"median"`
	Min                 float64             `json:"min"`
	Max                 float64             `json:"max"`
	TargetProbabilities []TargetProbability `json:"target_probabilities"`
	MonthlyIncome       []WithdrawalIncome  `json:"monthly_income"`
}

// TargetProbability is the chance (0-100) that a path finishes at or
// above Target. Entries keep the order the targets were requested in.
type TargetProbability struct {
	Target      float64 `json:"target"`
	Probability float64 `json:"probability"`
}

// WithdrawalIncome is the implied monthly income under a withdrawal
// rule at four points of the terminal distribution. Low and High are
// the 5th and 95th percentiles.
type WithdrawalIncome struct {
	AnnualRate float64 `json:"annual_rate"`
	Median     float64 `json:"median"`
	Mean       float64 `json:"mean"`
	Low        float64 `json:"low"`
	High       float64 `json:"high"`
}

// SimulationStatistics bundles the per-step and terminal reductions.
type SimulationStatistics struct {
	TimeSeries TimeSeriesStatistics `json:"time_series"`
	Terminal   TerminalStatistics   `json:"terminal"`
}

// IncomeProjection samples a projected quantity at four distribution
// points of the terminal portfolio value.
type IncomeProjection struct {
	P5     float64 `json:"p5"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	P95    float64 `json:"p95"`
}

// ReadinessResult answers whether a target monthly income is fundable.
// YearsToRetirement is meaningful only when TargetReachable is true;
// callers must branch on the flag, never on a magic numeric value.
type ReadinessResult struct {
	TargetMonthlyIncome   float64          `json:"target_monthly_income"`
	WithdrawalRate        float64          `json:"withdrawal_rate"`
	RequiredPrincipal     float64          `json:"required_principal"`
	SuccessRate           float64          `json:"success_rate"`
	MonthlyIncome         IncomeProjection `json:"monthly_income_projections"`
	IncomePercentOfTarget IncomeProjection `json:"income_percent_of_target"`
	TargetReachable       bool             `json:"target_reachable"`
	YearsToRetirement     float64          `json:"years_to_retirement"`
}

// WithdrawalScenario is one row of the success-rate table.
type WithdrawalScenario struct {
	MonthlyWithdrawal float64 `json:"monthly_withdrawal"`
	AnnualWithdrawal  float64 `json:"annual_withdrawal"`
	RequiredPrincipal float64 `json:"required_principal"`
	SuccessRate       float64 `json:"success_rate"`
}

// SimulationReport is the complete output of one scenario run, shaped
// for direct serialization by the output formatters.
type SimulationReport struct {
	Name         string               `json:"name,omitempty"`
	Parameters   SimulationParameters `json:"parameters"`
	Statistics   SimulationStatistics `json:"statistics"`
	Readiness    *ReadinessResult     `json:"readiness,omitempty"`
	SuccessRates []WithdrawalScenario `json:"success_rates,omitempty"`
	Growth       *GrowthProjection    `json:"growth,omitempty"`
}

// GrowthProjection is the deterministic projection requested by a
// scenario's growth section. Exactly one of Annual and Portfolio is
// populated: annual snapshots of the single combined projection, or
// the three-component breakdown when allocations were supplied.
type GrowthProjection struct {
	Annual    []GrowthPoint         `json:"annual,omitempty"`
	Portfolio []PortfolioGrowthYear `json:"portfolio,omitempty"`
	FeeImpact []FeeImpactYear       `json:"fee_impact,omitempty"`
}

// GrowthPoint is one month of the deterministic compound projector.
type GrowthPoint struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
	Earnings      float64 `json:"earnings"`
}

// PortfolioGrowthYear is an annual snapshot of the three-component
// portfolio projection.
type PortfolioGrowthYear struct {
	Year                int     `json:"year"`
	USStocks            float64 `json:"us_stocks"`
	InternationalStocks float64 `json:"international_stocks"`
	Bonds               float64 `json:"bonds"`
	TotalBalance        float64 `json:"total_balance"`
	TotalContributions  float64 `json:"total_contributions"`
	TotalEarnings       float64 `json:"total_earnings"`
}

// FeeImpactYear compares year-end balances under two expense ratios.
type FeeImpactYear struct {
	Year               int     `json:"year"`
	BalanceCurrent     float64 `json:"balance_current"`
	BalanceAlternative float64 `json:"balance_alternative"`
	FeeImpact          float64 `json:"fee_impact"`
}
