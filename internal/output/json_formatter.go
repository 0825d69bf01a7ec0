package output

import (
	"encoding/json"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// JSONFormatter serializes the simulation report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
