// Package harvest walks the document repository and turns it into
// submission records: collect, normalize, identify, deduplicate, assemble.
package harvest

import (
	"context"
	"fmt"

	"github.com/ivoa/docrepo-ads/internal/authors"
	"github.com/ivoa/docrepo-ads/internal/dedup"
	"github.com/ivoa/docrepo-ads/internal/document"
	"github.com/ivoa/docrepo-ads/internal/identifier"
	"github.com/ivoa/docrepo-ads/internal/landing"
	"github.com/ivoa/docrepo-ads/internal/record"
)

// PageSource retrieves page bodies by URL.
type PageSource interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// WarnFunc receives per-document problems that do not abort the run.
type WarnFunc func(format string, args ...any)

// Harvester collects documents from the repository.
type Harvester struct {
	pages PageSource
	arxiv landing.ArXivLookup
	warn  WarnFunc
}

// New creates a Harvester. arxiv may be nil when no arXiv map is loaded;
// warn may be nil to drop warnings.
func New(pages PageSource, arxiv landing.ArXivLookup, warn WarnFunc) *Harvester {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Harvester{pages: pages, arxiv: arxiv, warn: warn}
}

// Collect fetches the repository index, discovers all Recommendation
// landing pages, appends the approved note URLs, and parses every landing
// page. A malformed document is reported through warn and skipped; the run
// continues. Failure to fetch the index itself is fatal.
func (h *Harvester) Collect(ctx context.Context, repoURL string, noteURLs []string) ([]document.Document, error) {
	body, err := h.pages.Fetch(ctx, repoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching repository index: %w", err)
	}

	recURLs, err := landing.ParseIndex(repoURL, body)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(recURLs)+len(noteURLs))
	urls = append(urls, recURLs...)
	for _, u := range noteURLs {
		urls = append(urls, landing.NormalizeURL(repoURL, u))
	}

	var docs []document.Document
	for _, u := range urls {
		doc, err := h.collectOne(ctx, u)
		if err != nil {
			h.warn("in document %s: %v", u, err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// CollectSingle parses one landing page; for testing and debugging only,
// since identifiers assigned outside the full collection may be wrong.
func (h *Harvester) CollectSingle(ctx context.Context, url string) ([]document.Document, error) {
	doc, err := h.collectOne(ctx, url)
	if err != nil {
		return nil, err
	}
	return []document.Document{doc}, nil
}

func (h *Harvester) collectOne(ctx context.Context, url string) (document.Document, error) {
	body, err := h.pages.Fetch(ctx, url)
	if err != nil {
		return document.Document{}, err
	}
	doc, err := landing.Parse(url, body, h.arxiv)
	if err != nil {
		return document.Document{}, err
	}
	if err := doc.Validate(); err != nil {
		return document.Document{}, err
	}
	return doc, nil
}

// Build normalizes author lists, sorts the collection into assignment
// order, generates identifiers, and assembles records. Identifier
// generation failures (qualifier exhaustion, bibcode clash) are fatal and
// produce no records.
func Build(docs []document.Document) ([]record.Record, error) {
	for i := range docs {
		docs[i].Authors = authors.Normalize(docs[i].Authors, docs[i].Editors)
	}

	identifier.Sort(docs)

	ids, err := identifier.NewGenerator().Assign(docs)
	if err != nil {
		return nil, err
	}

	return record.AssembleAll(docs, ids), nil
}

// Deduplicate drops the records the bibliographic database already knows.
// A nil fetcher means the caller opted out and all records pass through.
// Fetch failures are fatal: no records are returned (fail closed).
func Deduplicate(ctx context.Context, recs []record.Record, fetcher dedup.KeyFetcher) ([]record.Record, error) {
	if fetcher == nil {
		return recs, nil
	}
	return dedup.Run(ctx, recs, fetcher)
}
