// Package document defines the core domain types for IVOA repository documents.
package document

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Type classifies a document for bibcode generation. The values double as
// the ADS bibstem segment.
type Type string

const (
	// TypeRecommendation covers IVOA Recommendations and Endorsed Notes,
	// which ADS treats as refereed.
	TypeRecommendation Type = "spec"

	// TypeNote covers ordinary IVOA Notes (unrefereed).
	TypeNote Type = "rept"
)

// Refereed reports whether documents of this type count as refereed.
func (t Type) Refereed() bool {
	return t == TypeRecommendation
}

// Date is a publication date as printed on a landing page tagline.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// IsZero reports whether the date is entirely unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Valid reports whether the date has a plausible year, month, and day.
func (d Date) Valid() bool {
	return d.Year > 0 && d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= 31
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Document is the metadata of one IVOA document, as extracted from its
// landing page. Immutable after construction except for Authors, which the
// editor hack in the authors package rewrites to a new slice.
type Document struct {
	LandingURL string   `json:"landing_url"` // Stable external key
	Title      string   `json:"title"`
	Authors    []string `json:"authors"` // May still contain the editors
	Editors    []string `json:"editors"` // May be empty
	Date       Date     `json:"date"`
	Abstract   string   `json:"abstract"`
	Journal    string   `json:"journal"` // The landing page tagline
	Type       Type     `json:"type"`
	PDFURL     string   `json:"pdf_url,omitempty"`
	ArXivID    string   `json:"arxiv_id,omitempty"`
}

// ErrInvalid is wrapped by all validation failures.
var ErrInvalid = errors.New("invalid document")

// Validate checks that the mandatory fields are present. The returned error
// names every missing field so a bad landing page can be fixed in one pass.
func (d *Document) Validate() error {
	var missing []string
	if d.LandingURL == "" {
		missing = append(missing, "url")
	}
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if len(d.Authors) == 0 {
		missing = append(missing, "authors")
	}
	if !d.Date.Valid() {
		missing = append(missing, "date")
	}
	if d.Abstract == "" {
		missing = append(missing, "abstract")
	}
	if d.Journal == "" {
		missing = append(missing, "journal")
	}
	if d.Type == "" {
		missing = append(missing, "type")
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	origin := d.LandingURL
	if origin == "" {
		origin = "<unknown origin>"
	}
	return fmt.Errorf("%w at %s: missing %s", ErrInvalid, origin, strings.Join(missing, ", "))
}

// InferType decides between Recommendation and Note from the journal
// tagline. Endorsed Notes go through the REC process and count as specs.
func InferType(journal string) Type {
	if strings.Contains(journal, "Recommendation") || strings.Contains(journal, "Endorsed Note") {
		return TypeRecommendation
	}
	return TypeNote
}

// FirstEditor returns the first editor name, or "" when there are none.
// Identifier generation buckets same-day documents by this value.
func (d *Document) FirstEditor() string {
	if len(d.Editors) == 0 {
		return ""
	}
	return d.Editors[0]
}
