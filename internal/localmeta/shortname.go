package localmeta

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrAmbiguousShortName means the URL heuristic could not pick a winner.
var ErrAmbiguousShortName = errors.New("cannot infer short name")

// shortNameExceptions maps historically confusing URL segments to the short
// names the arXiv map actually uses.
var shortNameExceptions = map[string]string{
	"VOT": "VOTable",
}

var documentsPrefix = regexp.MustCompile(`.*documents/`)

// GuessShortName guesses the short name of a document from its docrepo URL.
//
// Due to historically confusing practices this is hard to do. The
// heuristic: throw out the known parts of common URLs, split the rest on
// "/" and "-", and score each segment by its uppercase letter count (plus a
// fifth per lowercase letter). The highest-scoring segment wins; a tie for
// first place is an error.
func GuessShortName(urlInDocrepo string) (string, error) {
	localPath := documentsPrefix.ReplaceAllString(urlInDocrepo, "")
	unjunked := strings.ReplaceAll(localPath, "cover/", "")
	unjunked = strings.ReplaceAll(unjunked, "index.html", "")

	segments := strings.FieldsFunc(unjunked, func(r rune) bool {
		return r == '/' || r == '-'
	})
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousShortName, urlInDocrepo)
	}

	best, runnerUp := -1.0, -1.0
	var winner string
	for _, s := range segments {
		score := scoreSegment(s)
		switch {
		case score > best:
			best, runnerUp = score, best
			winner = s
		case score > runnerUp:
			runnerUp = score
		}
	}
	if len(segments) > 1 && best == runnerUp {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousShortName, urlInDocrepo)
	}

	if mapped, ok := shortNameExceptions[winner]; ok {
		return mapped, nil
	}
	return winner, nil
}

func scoreSegment(s string) float64 {
	var upper, lower int
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}
	return float64(upper) + float64(lower)/5
}
