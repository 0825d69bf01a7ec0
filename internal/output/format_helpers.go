package output

import (
	"fmt"

	"github.com/nestegg/retirement-simulator/pkg/money"
)

// FormatCurrency formats an amount as USD with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested
// in isolation.
func FormatCurrency(amount float64) string { return money.New(amount).Display() }

// FormatPercentage formats a 0-100 value as a percentage with 2 decimals.
func FormatPercentage(value float64) string { return fmt.Sprintf("%.2f%%", value) }

// FormatRate formats an annual rate decimal (0.04) as "4%". The %.4g
// verb swallows float artifacts like 3.5000000000000004.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.4g%%", rate*100)
}
