package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Pace label constants.
const (
	CompleteValue = "Complete" // Sprint landed
	AheadValue    = "Ahead"    // Progress leads the elapsed time share
	OnTrackValue  = "On Track" // Progress roughly matches elapsed time
	BehindValue   = "Behind"   // Progress trails elapsed time
	AtRiskValue   = "At Risk"  // Progress trails badly; unlikely to land
)

// Color variables for console output.
var (
	CompleteColor = color.New(color.FgGreen, color.Bold) // completeColor marks a finished sprint.
	AheadColor    = color.New(color.FgGreen)             // aheadColor marks comfortable progress.
	OnTrackColor  = color.New(color.FgCyan)              // onTrackColor marks nominal progress.
	BehindColor   = color.New(color.FgYellow)            // behindColor marks standard caution.
	AtRiskColor   = color.New(color.FgRed, color.Bold)   // atRiskColor marks likely slippage.
)

// GetPlainLabel returns a plain text pace label by comparing the completion
// percentage against the share of the sprint window already elapsed. This is
// the core logic used for CSV, JSON and table printing.
func GetPlainLabel(percentage, elapsedShare int) string {
	gap := percentage - elapsedShare
	switch {
	case percentage >= 100:
		return CompleteValue
	case gap >= 10:
		return AheadValue
	case gap >= -10:
		return OnTrackValue
	case gap >= -25:
		return BehindValue
	default:
		return AtRiskValue
	}
}

// GetColorLabel returns a colored pace label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(percentage, elapsedShare int) string {
	text := GetPlainLabel(percentage, elapsedShare)

	switch text {
	case CompleteValue:
		return CompleteColor.Sprint(text)
	case AheadValue:
		return AheadColor.Sprint(text)
	case OnTrackValue:
		return OnTrackColor.Sprint(text)
	case BehindValue:
		return BehindColor.Sprint(text)
	default: // "At Risk"
		return AtRiskColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetArchiveDBFilePath returns the default SQLite archive location, under
// the user cache directory when available.
func GetArchiveDBFilePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "."
	}
	dir := filepath.Join(base, "sprintlens")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "sprintlens-archive.db"
	}
	return filepath.Join(dir, "archive.db")
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
