package cli

import (
	"strings"

	"github.com/borrowsafe/borrowsafe/internal/datex"
)

// promptLine asks for one line of input and returns it trimmed. EOF yields "".
func (a *App) promptLine(label string) string {
	printfFn("%s: ", label)
	if !a.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}

// promptDay asks for a calendar day until the input parses or is left empty
// (which returns the zero Day so callers fall back to their default).
func (a *App) promptDay(label string) datex.Day {
	for {
		raw := a.promptLine(label + " (YYYY-MM-DD, empty for today)")
		day, err := datex.Parse(raw)
		if err != nil {
			printlnFn("Please use the YYYY-MM-DD format.")
			continue
		}
		return day
	}
}
