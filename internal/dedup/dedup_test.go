package dedup

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ivoa/docrepo-ads/internal/record"
)

func rec(bibcode, arxivID string) record.Record {
	return record.Record{Bibcode: bibcode, ArXivID: arxivID}
}

func TestFilter(t *testing.T) {
	recs := []record.Record{rec("x1", ""), rec("x2", ""), rec("x3", ""), rec("x4", "")}
	known := map[string]struct{}{"x1": {}, "x3": {}}

	got := Filter(recs, known)

	want := []record.Record{rec("x2", ""), rec("x4", "")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestFilter_ArXivKeyPreferred(t *testing.T) {
	recs := []record.Record{
		rec("spec2014-03-07", "a-p/1"), // known by arXiv id
		rec("spec2014-03-08", "a-p/2"), // unknown
	}
	known := map[string]struct{}{"a-p/1": {}, "spec2014-03-08": {}}

	got := Filter(recs, known)

	// The second record keys on its arXiv id, so its bibcode being known
	// does not remove it.
	if len(got) != 1 || got[0].ArXivID != "a-p/2" {
		t.Errorf("Filter() = %v, want only the a-p/2 record", got)
	}
}

func TestFilter_EmptyKnownSet(t *testing.T) {
	recs := []record.Record{rec("x1", ""), rec("x2", "")}
	got := Filter(recs, map[string]struct{}{})
	if !reflect.DeepEqual(got, recs) {
		t.Errorf("Filter() with empty known set = %v, want all input", got)
	}
}

type fakeFetcher struct {
	known map[string]struct{}
	err   error
	keys  []string
}

func (f *fakeFetcher) KnownKeys(ctx context.Context, keys []string) (map[string]struct{}, error) {
	f.keys = keys
	if f.err != nil {
		return nil, f.err
	}
	return f.known, nil
}

func TestRun(t *testing.T) {
	recs := []record.Record{rec("x1", ""), rec("x2", ""), rec("x3", "a-p/3")}
	fetcher := &fakeFetcher{known: map[string]struct{}{"x1": {}}}

	got, err := Run(context.Background(), recs, fetcher)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantKeys := []string{"x1", "x2", "a-p/3"}
	if !reflect.DeepEqual(fetcher.keys, wantKeys) {
		t.Errorf("Run() queried keys %v, want %v", fetcher.keys, wantKeys)
	}
	if len(got) != 2 || got[0].Bibcode != "x2" || got[1].Bibcode != "x3" {
		t.Errorf("Run() = %v, want x2 and x3 in order", got)
	}
}

func TestRun_FailsClosed(t *testing.T) {
	recs := []record.Record{rec("x1", ""), rec("x2", "")}
	fetchErr := errors.New("ads unreachable")
	fetcher := &fakeFetcher{err: fetchErr}

	got, err := Run(context.Background(), recs, fetcher)
	if err == nil {
		t.Fatal("Run() = nil error, want failure when the fetch fails")
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("Run() error = %v, want wrapped fetch error", err)
	}
	if got != nil {
		t.Errorf("Run() = %v, want no output on fetch failure", got)
	}
}
