// Package dedup filters out records the remote bibliographic database
// already holds, so re-running the harvester does not resubmit them.
package dedup

import (
	"context"
	"fmt"

	"github.com/ivoa/docrepo-ads/internal/record"
)

// KeyFetcher returns, for a set of candidate keys, the subset already known
// to the bibliographic database. One snapshot is fetched per run.
type KeyFetcher interface {
	KnownKeys(ctx context.Context, keys []string) (map[string]struct{}, error)
}

// Filter returns the records whose key is not in the known set, preserving
// input order. Pure function over a pre-fetched snapshot.
func Filter(recs []record.Record, known map[string]struct{}) []record.Record {
	out := make([]record.Record, 0, len(recs))
	for _, r := range recs {
		if _, dup := known[r.Key()]; !dup {
			out = append(out, r)
		}
	}
	return out
}

// Run fetches the known-key snapshot for recs and filters against it. A
// fetch failure aborts with no output: emitting unfiltered records after a
// failed lookup would resubmit everything the database already has.
func Run(ctx context.Context, recs []record.Record, fetcher KeyFetcher) ([]record.Record, error) {
	keys := make([]string, 0, len(recs))
	for _, r := range recs {
		keys = append(keys, r.Key())
	}

	known, err := fetcher.KnownKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetching known keys: %w", err)
	}

	return Filter(recs, known), nil
}
