// Package identifier derives bibcodes and IVOA eprint ids for a harvest
// run. All state lives in a Generator value scoped to one run; nothing is
// persisted between runs.
package identifier

import (
	"errors"
	"fmt"

	"github.com/ivoa/docrepo-ads/internal/document"
)

// qualifierAlphabet supplies disambiguation suffixes for same-bucket
// collisions, in assignment order. The first document in a bucket gets no
// qualifier at all.
const qualifierAlphabet = "abcdefghijklmnopqrstuvwxyz"

var (
	// ErrQualifiersExhausted means a collision bucket held more documents
	// than the qualifier alphabet can disambiguate. Proceeding would emit
	// silently colliding bibcodes, so this is fatal.
	ErrQualifiersExhausted = errors.New("bibcode qualifier alphabet exhausted")

	// ErrBibcodeClash means two documents from distinct collision buckets
	// rendered to the same final bibcode. Qualifiers never cross buckets,
	// so this cannot be repaired automatically.
	ErrBibcodeClash = errors.New("clashing bibcodes")
)

// Assignment holds the identifiers derived for one document.
type Assignment struct {
	Bibcode  string
	EprintID string
}

// bucketKey groups documents that may need qualifier disambiguation: same
// first editor, same publication day.
type bucketKey struct {
	editor string
	date   document.Date
}

// counterKey scopes an eprint-id counter: one per year, month, and type.
type counterKey struct {
	year  int
	month int
	typ   document.Type
}

// Generator assigns identifiers in input order. Zero value is not usable;
// call NewGenerator once per harvest run.
type Generator struct {
	qualifiers map[bucketKey]int
	counters   map[counterKey]int
	seen       map[string]string // final bibcode -> landing URL
}

// NewGenerator returns a Generator with fresh qualifier buckets and eprint
// counters.
func NewGenerator() *Generator {
	return &Generator{
		qualifiers: make(map[bucketKey]int),
		counters:   make(map[counterKey]int),
		seen:       make(map[string]string),
	}
}

// Assign derives one Assignment per document, in input order. The order is
// the caller's responsibility (see Sort in the harvest pipeline); identical
// ordered input reproduces identical identifiers.
//
// Within a collision bucket the first document stays unqualified and later
// ones get "a", "b", ... appended. Exhausting the alphabet, or a bibcode
// clash across buckets, aborts with no partial result.
func (g *Generator) Assign(docs []document.Document) ([]Assignment, error) {
	out := make([]Assignment, 0, len(docs))
	for _, doc := range docs {
		bibcode, err := g.nextBibcode(&doc)
		if err != nil {
			return nil, err
		}
		out = append(out, Assignment{
			Bibcode:  bibcode,
			EprintID: g.nextEprintID(&doc),
		})
	}
	return out, nil
}

func (g *Generator) nextBibcode(doc *document.Document) (string, error) {
	key := bucketKey{editor: doc.FirstEditor(), date: doc.Date}
	n := g.qualifiers[key]
	g.qualifiers[key] = n + 1

	var qualifier string
	switch {
	case n == 0:
		// First in its bucket, no qualifier.
	case n <= len(qualifierAlphabet):
		qualifier = string(qualifierAlphabet[n-1])
	default:
		return "", fmt.Errorf("%w: %d same-day documents for editor %q on %s",
			ErrQualifiersExhausted, n+1, key.editor, doc.Date)
	}

	bibcode := fmt.Sprintf("%s%04d-%02d-%02d%s",
		doc.Type, doc.Date.Year, doc.Date.Month, doc.Date.Day, qualifier)

	if prev, dup := g.seen[bibcode]; dup {
		return "", fmt.Errorf("%w: %s generated for both %s and %s",
			ErrBibcodeClash, bibcode, prev, doc.LandingURL)
	}
	g.seen[bibcode] = doc.LandingURL

	return bibcode, nil
}

func (g *Generator) nextEprintID(doc *document.Document) string {
	key := counterKey{year: doc.Date.Year, month: doc.Date.Month, typ: doc.Type}
	n := g.counters[key]
	g.counters[key] = n + 1

	kind := "n"
	if doc.Type == document.TypeRecommendation {
		kind = "r"
	}
	return fmt.Sprintf("ivoa:%s.%04d.%02d.%02d", kind, doc.Date.Year, doc.Date.Month, n)
}
