package render

import (
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/palisade-org/palisade/internal/domain/models"
)

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	successStyle = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow)
	failStyle    = color.New(color.FgRed)
	faintStyle   = color.New(color.Faint)

	titleCaser = cases.Title(language.English)
)

// statusLabel renders a lifecycle status as a colored display word, e.g.
// PROPOSED -> "Proposed" in yellow.
func statusLabel(status models.TransactionStatus) string {
	label := titleCaser.String(strings.ToLower(string(status)))
	switch status {
	case models.TransactionStatusExecuted:
		return successStyle.Sprint(label)
	case models.TransactionStatusFailed:
		return failStyle.Sprint(label)
	default:
		return warnStyle.Sprint(label)
	}
}

// shortHash trims a 0x-prefixed hash for table display.
func shortHash(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:10] + "…" + hash[len(hash)-4:]
}
