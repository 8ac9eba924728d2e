// Package landing scrapes IVOA document landing pages and the repository
// index into document metadata.
package landing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/ivoa/docrepo-ads/internal/authors"
	"github.com/ivoa/docrepo-ads/internal/document"
)

var (
	selH1 = cascadia.MustCompile("h1")
	selH2 = cascadia.MustCompile("h2")
	selDT = cascadia.MustCompile("dt")
	selA  = cascadia.MustCompile("a")
)

// ArXivLookup resolves a landing URL to an arXiv id, when one is on file.
type ArXivLookup interface {
	ArXivIDForURL(url string) (string, bool)
}

// Parse extracts document metadata from one landing page. The returned
// document still carries its raw author list; normalization and identifier
// assignment happen later in the pipeline.
func Parse(pageURL, body string, arxiv ArXivLookup) (document.Document, error) {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return document.Document{}, fmt.Errorf("parsing landing page %s: %w", pageURL, err)
	}

	doc := document.Document{LandingURL: pageURL}

	if h1 := selH1.MatchFirst(root); h1 != nil {
		doc.Title = cleanField(nodeText(h1))
	}

	// The first h2 is the tagline, e.g. "IVOA Recommendation 11 April 2012".
	if h2 := selH2.MatchFirst(root); h2 != nil {
		doc.Journal = cleanField(nodeText(h2))
		date, err := ParseSubheadDate(doc.Journal)
		if err != nil {
			return doc, fmt.Errorf("landing page %s: %w", pageURL, err)
		}
		doc.Date = date
	}
	doc.Type = document.InferType(doc.Journal)

	authorLiteral, err := definitionText(root, "Author(s):")
	if err != nil {
		return doc, fmt.Errorf("landing page %s: %w", pageURL, err)
	}
	doc.Authors, err = authors.ParseList(cleanField(authorLiteral))
	if err != nil {
		return doc, fmt.Errorf("landing page %s: authors: %w", pageURL, err)
	}

	editorLiteral, err := definitionText(root, "Editor(s):")
	if err != nil {
		return doc, fmt.Errorf("landing page %s: %w", pageURL, err)
	}
	doc.Editors, err = authors.ParseList(cleanField(editorLiteral))
	if err != nil {
		return doc, fmt.Errorf("landing page %s: editors: %w", pageURL, err)
	}

	doc.Abstract = strings.ReplaceAll(abstractText(root), "\r", "")

	if pdf := enclosingElement(root, selA, "PDF"); pdf != nil {
		doc.PDFURL = resolveRef(pageURL, attr(pdf, "href"))
	}

	if arxiv != nil {
		// Absent ids are fine for Notes and checked separately for RECs.
		if id, ok := arxiv.ArXivIDForURL(pageURL); ok {
			doc.ArXivID = id
		}
	}

	return doc, nil
}

// definitionText returns the text of the dd following the dt that contains
// label, e.g. the author list after "Author(s):".
func definitionText(root *html.Node, label string) (string, error) {
	dt := enclosingElement(root, selDT, label)
	if dt == nil {
		return "", fmt.Errorf("no %q field", label)
	}
	dd := nextSiblingElement(dt, "dd")
	if dd == nil {
		return "", fmt.Errorf("no value for %q field", label)
	}
	return nodeText(dd), nil
}

// abstractText guesses the abstract. It isn't marked up well on IVOA
// landing pages, so gobble up material between the Abstract headline and
// the next div.
func abstractText(root *html.Node) string {
	head := enclosingElement(root, selH2, "Abstract")
	if head == nil {
		return ""
	}

	var parts []string
	for n := head.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && n.Data == "div" {
			break
		}
		text, hitDiv := formatAbstract(n)
		parts = append(parts, text)
		if hitDiv {
			// A div inside the abstract means bad document structure;
			// keep what was collected so far.
			break
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// formatAbstract flattens a node to running text. Only very little markup
// is supported (all we have is ADS' abstract syntax). The second return is
// true when a stray div ended collection early.
func formatAbstract(n *html.Node) (string, bool) {
	switch {
	case n.Type == html.TextNode:
		return n.Data, false

	case n.Type != html.ElementNode:
		return "", false

	case n.Data == "div":
		return "", true

	case n.Data == "ul" || n.Data == "ol":
		// No way to properly render ul in running text, so fold it to ol.
		var items []string
		index := 0
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				index++
				text, _ := formatAbstract(c)
				items = append(items, fmt.Sprintf(" (%d) %s ", index, text))
			}
		}
		return strings.Join(items, " "), false

	default:
		var parts []string
		if n.Data == "p" {
			parts = append(parts, "\n\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			text, hitDiv := formatAbstract(c)
			parts = append(parts, text)
			if hitDiv {
				return strings.Join(parts, " "), true
			}
		}
		return strings.Join(parts, " "), false
	}
}

// resolveRef resolves a possibly relative href against the page URL.
func resolveRef(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
