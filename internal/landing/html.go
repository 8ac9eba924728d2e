package landing

import (
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// nodeText returns the concatenated text content of a node's subtree, with
// a blank between adjacent pieces.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// enclosingElement returns the first element matching sel whose text
// content contains want.
func enclosingElement(root *html.Node, sel cascadia.Selector, want string) *html.Node {
	for _, n := range sel.MatchAll(root) {
		if strings.Contains(nodeText(n), want) {
			return n
		}
	}
	return nil
}

// nextSiblingElement returns the first following sibling that is an element
// with the given tag name.
func nextSiblingElement(n *html.Node, tag string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.Data == tag {
			return s
		}
	}
	return nil
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

var wsRe = regexp.MustCompile(`\s+`)
var andRe = regexp.MustCompile(`,? and `)

// cleanField normalises whitespace and separators in a scraped field, ready
// for the ADS tagged format. Don't do this to abstracts.
func cleanField(s string) string {
	s = wsRe.ReplaceAllString(s, " ")
	s = andRe.ReplaceAllString(s, ", ")
	// "Grid *and* Web Services" requires a special hack.
	s = strings.ReplaceAll(s, "Grid, ", "Grid and ")
	return strings.TrimSpace(s)
}
