package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a charmbracelet logger writing to stderr. Debug
// logging (per-round deal/settle lines) is only useful for small runs.
func SetupLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}
