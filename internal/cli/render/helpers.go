package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Capitalize first letter
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", message)
}

// FormatSuggestions formats "did you mean" hints for a failed lookup
func FormatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("did you mean:")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "\n  - %s", s)
	}
	return b.String()
}
