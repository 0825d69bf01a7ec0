package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,500,000.00", FormatCurrency(1500000))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$1,234.57", FormatCurrency(1234.567))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "75.00%", FormatPercentage(75))
	assert.Equal(t, "12.50%", FormatPercentage(12.5))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "4%", FormatRate(0.04))
	assert.Equal(t, "3.5%", FormatRate(0.035))
}
