package ui

import (
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/utils"
)

// ColorizeSalary formats a salary and colors it relative to the average salary
// of the training data
func ColorizeSalary(value, average float64, currency string) string {
	formatted := utils.FormatSalary(value, currency)

	switch {
	case value <= 0:
		return pterm.Red(formatted)
	case average <= 0:
		return formatted
	case value >= average*1.5:
		return pterm.Green(formatted) // well above average
	case value >= average:
		return pterm.LightGreen(formatted)
	case value >= average*0.5:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// NewLogger creates a logger writing to w at the given level
// (trace, debug, info, warn or error)
func NewLogger(w io.Writer, level string) *pterm.Logger {
	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(parseLogLevel(level))
	return logger
}

func parseLogLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
