package formatter

import (
	"fmt"
	"strings"
)

// FormatImportSummary renders the counts of an import.
func FormatImportSummary(read, imported, students int, rejected []error, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Imported %s of %d records for %d students\n",
		paint(StyleGreen, fmt.Sprint(imported)), read, students)
	if len(rejected) == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", paint(StyleYellow, fmt.Sprintf("%d problems in excluded records:", len(rejected))))
	shown := rejected
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, e := range shown {
		fmt.Fprintf(&b, "  - %s\n", e.Error())
	}
	if len(shown) < len(rejected) {
		b.WriteString(Dim(fmt.Sprintf("  ... %d more (use --verbose to list all)", len(rejected)-len(shown))) + "\n")
	}
	return b.String()
}
