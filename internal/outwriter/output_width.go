package outwriter

import (
	"os"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"golang.org/x/term"
)

// Approximate rendered widths of the series table with and without the
// breakdown columns, including borders and padding.
const (
	coreTableWidth      = 70
	breakdownTableWidth = 115
)

// getTerminalWidth returns the effective terminal width, honoring the
// absolute width override from flag/env.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// showBreakdownColumns reports whether the terminal is wide enough for the
// started/unstarted/backlog/cancelled columns on top of the core ones.
func showBreakdownColumns(cfg *contract.Config) bool {
	return getTerminalWidth(cfg) >= breakdownTableWidth
}
