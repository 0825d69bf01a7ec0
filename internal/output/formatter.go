package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte
// slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	Format(report *domain.SimulationReport) ([]byte, error)
	// Name returns a short identifier for dispatch and logging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVSummarizer{},
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames lists the registered formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}

// WriteFormatted runs a formatter and writes its output to a
// timestamped file with the given extension under dir, returning the
// path. An empty dir means the current directory.
func WriteFormatted(f Formatter, report *domain.SimulationReport, ext, dir string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("simulation_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
