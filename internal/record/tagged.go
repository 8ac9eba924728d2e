package record

import (
	"fmt"
	"strings"

	"github.com/ivoa/docrepo-ads/internal/authors"
)

// ToTagged renders a record in the ADS tagged format.
func ToTagged(r Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%%R %s\n", r.Bibcode)
	fmt.Fprintf(&b, "%%D %d/%d\n", r.Date.Month, r.Date.Year)

	// The %I tag carries all full-text and identifier links; continuation
	// lines are separated by ";".
	fmt.Fprintf(&b, "%%I ELECTR: %s", r.LandingURL)
	if r.PDFURL != "" {
		fmt.Fprintf(&b, ";\nPDF: %s", r.PDFURL)
	}
	if r.EprintID != "" {
		fmt.Fprintf(&b, ";\nEPRINT: %s", r.EprintID)
	}
	if r.ArXivID != "" {
		fmt.Fprintf(&b, ";\nARXIV: %s", r.ArXivID)
	}
	b.WriteString("\n")

	if len(r.Authors) > 0 {
		fmt.Fprintf(&b, "%%A %s\n", authors.Join(r.Authors))
	}
	if len(r.Editors) > 0 {
		fmt.Fprintf(&b, "%%e %s\n", authors.Join(r.Editors))
	}
	fmt.Fprintf(&b, "%%T %s\n", r.Title)
	fmt.Fprintf(&b, "%%G %s\n", Source)
	if r.Journal != "" {
		fmt.Fprintf(&b, "%%J %s\n", r.Journal)
	}
	if r.Abstract != "" {
		fmt.Fprintf(&b, "%%B %s\n", r.Abstract)
	}

	return b.String()
}

// ToTaggedList renders records in order, separated by blank lines.
func ToTaggedList(recs []Record) string {
	parts := make([]string, 0, len(recs))
	for _, r := range recs {
		parts = append(parts, ToTagged(r))
	}
	return strings.Join(parts, "\n")
}
