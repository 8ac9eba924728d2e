// Package authors parses and reorders the author and editor lists found on
// IVOA landing pages.
package authors

import (
	"fmt"
	"strings"
)

// ParseList splits an author literal into individual names.
//
// Two formats occur in the repository: "First1 Last1, First2 Last2" and
// "Last1, F.; Last2, J.". A trailing initial or any semicolon selects the
// second form. As a sanity check a particle without a blank is rejected;
// that is western-centric, but it has caught real scraping errors.
func ParseList(literal string) ([]string, error) {
	var parts []string
	if looksInverted(literal) {
		parts = strings.Split(literal, ";")
	} else {
		parts = strings.Split(literal, ",")
	}

	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.Contains(p, " ") {
			return nil, fmt.Errorf("unlikely author name %q", p)
		}
		names = append(names, p)
	}
	return names, nil
}

// looksInverted reports whether a literal is in "Last, F.; Last, J." form.
func looksInverted(literal string) bool {
	if strings.Contains(literal, ";") {
		return true
	}
	trimmed := strings.TrimSpace(literal)
	// A terminal initial like "Last, J." marks the inverted form.
	if len(trimmed) >= 2 && strings.HasSuffix(trimmed, ".") {
		c := trimmed[len(trimmed)-2]
		return c >= 'A' && c <= 'Z'
	}
	return false
}

// Join renders a name list back to a single literal, using "; " when the
// first name contains a comma (inverted form) and ", " otherwise.
func Join(names []string) string {
	if len(names) == 0 {
		return ""
	}
	if strings.Contains(names[0], ",") {
		return strings.Join(names, "; ")
	}
	return strings.Join(names, ", ")
}

// Normalize applies the editor promotion rule: editors come first, in their
// given order, followed by the remaining authors in their original relative
// order. Matching is exact; an editor absent from the author list is
// prepended anyway. The result is always a fresh slice and the operation is
// idempotent.
func Normalize(authorNames, editorNames []string) []string {
	out := make([]string, 0, len(authorNames)+len(editorNames))
	if len(editorNames) == 0 {
		return append(out, authorNames...)
	}

	editors := make(map[string]struct{}, len(editorNames))
	for _, e := range editorNames {
		editors[e] = struct{}{}
	}

	out = append(out, editorNames...)
	for _, a := range authorNames {
		if _, isEditor := editors[a]; !isEditor {
			out = append(out, a)
		}
	}
	return out
}

// Surnames that consist of more than one token and would defeat the
// last-word heuristic below.
var exceptionalSurnames = []string{
	"Preite Martinez",
}

// Surname returns the surname of a single parsed name. "Last, F." forms are
// exact; for "First Last" forms the last word is taken, with a lookup table
// for known multi-token surnames. This must stay in sync with what ADS
// expects for sorting.
func Surname(name string) string {
	if i := strings.Index(name, ","); i >= 0 {
		return strings.TrimSpace(name[:i])
	}
	for _, exc := range exceptionalSurnames {
		if strings.Contains(name, exc) {
			return exc
		}
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// FirstSurname returns the surname of the first name in a list, or "" for
// an empty list. Used as the secondary sort key for identifier assignment.
func FirstSurname(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return Surname(names[0])
}
