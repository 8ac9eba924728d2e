package identifier

import (
	"sort"

	"github.com/ivoa/docrepo-ads/internal/authors"
	"github.com/ivoa/docrepo-ads/internal/document"
)

// Sort puts documents into identifier-assignment order: by date, then first
// author surname, then title. Assign must see documents in this order for
// qualifier and eprint-counter assignment to be reproducible between runs.
func Sort(docs []document.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := &docs[i], &docs[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		as, bs := authors.FirstSurname(a.Authors), authors.FirstSurname(b.Authors)
		if as != bs {
			return as < bs
		}
		return a.Title < b.Title
	})
}
