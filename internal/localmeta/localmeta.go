// Package localmeta loads the metadata files the document coordinator
// maintains alongside the harvester: the arXiv-id map and the allowlist of
// notes approved for submission.
package localmeta

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Metadata holds the parsed local metadata files.
type Metadata struct {
	// arXivIDs maps document short names (e.g. "SAMP") to arXiv ids. By
	// Exec decree this only covers Recommendations.
	arXivIDs map[string]string
}

// LoadArXivIDs reads a short-name to arXiv-id map, one
// "<short-name> <arXiv-id>" pair per line.
func LoadArXivIDs(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening arXiv id map: %w", err)
	}
	defer f.Close()

	m := &Metadata{arXivIDs: make(map[string]string)}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s, line %d: entry not in <short-name> <arXiv-id> format", path, lineNo)
		}
		m.arXivIDs[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading arXiv id map: %w", err)
	}
	return m, nil
}

// ArXivIDForURL returns the arXiv id for a docrepo landing URL. The lookup
// goes through the guessed short name; a guessing failure or an absent
// entry both report ok=false, which is fine for Notes and checked
// separately for Recommendations.
func (m *Metadata) ArXivIDForURL(url string) (string, bool) {
	short, err := GuessShortName(url)
	if err != nil {
		return "", false
	}
	id, ok := m.arXivIDs[short]
	return id, ok
}

// LoadPublishedNotes reads the allowlist of note landing URLs, one per
// line; blank lines and "#" comments are skipped. Most notes are not pushed
// to ADS - the Exec lists the ones it wants published.
func LoadPublishedNotes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening published notes list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading published notes list: %w", err)
	}
	return urls, nil
}
