package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nestegg/retirement-simulator/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the
// requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// GenerateReport formats the report and writes it: console output goes
// to stdout, everything else to a timestamped file under outputDir
// (empty means the current directory).
func GenerateReport(report *domain.SimulationReport, format, outputDir string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}

	if f.Name() == "console" {
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	ext := f.Name()
	filename, err := WriteFormatted(f, report, ext, outputDir)
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}
