package landing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var (
	selH3 = cascadia.MustCompile("h3")

	// Finished standards are the class=rec (and historically ucd-en) links
	// in the versionold cells of the Technical Specifications table, plus
	// class=en links in the Endorsed Notes table.
	selRecLinks = []cascadia.Selector{
		cascadia.MustCompile("td.versionold a.rec"),
		cascadia.MustCompile("td.versionold a.ucd-en"),
	}
	selENLinks = []cascadia.Selector{
		cascadia.MustCompile("td.versionold a.en"),
	}
)

// ParseIndex extracts the landing URLs of all Recommendations (including
// Endorsed Notes) from the document repository index page. Different
// versions of a standard are different documents; each URL is returned
// exactly once, in document order.
func ParseIndex(indexURL, body string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing repository index: %w", err)
	}

	recTable, err := tableAfterHeading(root, "Technical Specifications")
	if err != nil {
		return nil, err
	}
	enTable, err := tableAfterHeading(root, "Endorsed Note")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var urls []string
	add := func(table *html.Node, sels []cascadia.Selector) {
		for _, sel := range sels {
			for _, anchor := range sel.MatchAll(table) {
				u := NormalizeURL(indexURL, attr(anchor, "href"))
				if u == "" {
					continue
				}
				if _, dup := seen[u]; dup {
					continue
				}
				seen[u] = struct{}{}
				urls = append(urls, u)
			}
		}
	}
	add(recTable, selRecLinks)
	add(enTable, selENLinks)

	return urls, nil
}

func tableAfterHeading(root *html.Node, heading string) (*html.Node, error) {
	h3 := enclosingElement(root, selH3, heading)
	if h3 == nil {
		return nil, fmt.Errorf("repository index has no %q section", heading)
	}
	table := nextSiblingElement(h3, "table")
	if table == nil {
		return nil, fmt.Errorf("repository index %q section has no table", heading)
	}
	return table, nil
}

// NormalizeURL resolves href against base and normalises the result. The
// uppercase "Documents" path segment, fairly common in the old days, is
// lowercased so the same landing page is never visited twice.
func NormalizeURL(base, href string) string {
	href = strings.ReplaceAll(href, "Documents", "documents")

	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	return purell.NormalizeURL(baseURL.ResolveReference(ref), purell.FlagsUsuallySafeGreedy)
}
