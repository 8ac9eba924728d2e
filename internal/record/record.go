// Package record assembles the per-document submission records and renders
// them in the ADS tagged format.
package record

import (
	"github.com/ivoa/docrepo-ads/internal/document"
	"github.com/ivoa/docrepo-ads/internal/identifier"
)

// Source is the %G tag value for everything this harvester emits.
const Source = "IVOA"

// Record is one assembled submission record. It is the seam where the
// normalized author list, the generated identifiers, and the scraped
// metadata must agree on a single document.
type Record struct {
	Bibcode    string        `json:"bibcode"`
	EprintID   string        `json:"eprint_id"` // Informational, ADS ignores it
	Authors    []string      `json:"authors"`   // Normalized: editors first
	Editors    []string      `json:"editors"`
	Title      string        `json:"title"`
	Date       document.Date `json:"date"`
	Type       document.Type `json:"type"`
	Journal    string        `json:"journal"`
	Abstract   string        `json:"abstract"`
	LandingURL string        `json:"landing_url"`
	PDFURL     string        `json:"pdf_url,omitempty"`
	ArXivID    string        `json:"arxiv_id,omitempty"`
}

// Assemble builds the record for one document and its identifiers. The
// document's author list must already be normalized.
func Assemble(doc document.Document, id identifier.Assignment) Record {
	return Record{
		Bibcode:    id.Bibcode,
		EprintID:   id.EprintID,
		Authors:    doc.Authors,
		Editors:    doc.Editors,
		Title:      doc.Title,
		Date:       doc.Date,
		Type:       doc.Type,
		Journal:    doc.Journal,
		Abstract:   doc.Abstract,
		LandingURL: doc.LandingURL,
		PDFURL:     doc.PDFURL,
		ArXivID:    doc.ArXivID,
	}
}

// AssembleAll pairs documents with their assignments positionally.
func AssembleAll(docs []document.Document, ids []identifier.Assignment) []Record {
	recs := make([]Record, 0, len(docs))
	for i, doc := range docs {
		recs = append(recs, Assemble(doc, ids[i]))
	}
	return recs
}

// Key returns the record's deduplication key: the arXiv id when the
// document has one, otherwise the computed bibcode.
func (r Record) Key() string {
	if r.ArXivID != "" {
		return r.ArXivID
	}
	return r.Bibcode
}
