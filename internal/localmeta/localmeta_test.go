package localmeta

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadArXivIDs(t *testing.T) {
	path := writeFile(t, "arXiv_ids.txt", "SAMP 1110.0528\n\nVOTable 1402.4742\n")

	m, err := LoadArXivIDs(path)
	if err != nil {
		t.Fatalf("LoadArXivIDs() error = %v", err)
	}

	id, ok := m.ArXivIDForURL("http://www.ivoa.net/documents/SAMP/20120411/")
	if !ok || id != "1110.0528" {
		t.Errorf("ArXivIDForURL(SAMP) = (%q, %v), want 1110.0528", id, ok)
	}

	// VOT maps to VOTable via the exception table.
	id, ok = m.ArXivIDForURL("http://www.ivoa.net/documents/cover/VOT-20040811.html")
	if !ok || id != "1402.4742" {
		t.Errorf("ArXivIDForURL(VOT) = (%q, %v), want 1402.4742", id, ok)
	}

	if _, ok := m.ArXivIDForURL("http://www.ivoa.net/documents/ConeSearch/20080222/"); ok {
		t.Error("ArXivIDForURL() for unmapped document should report ok=false")
	}
}

func TestLoadArXivIDs_MalformedLine(t *testing.T) {
	path := writeFile(t, "arXiv_ids.txt", "SAMP 1110.0528\nbroken-line-without-id\n")

	_, err := LoadArXivIDs(path)
	if err == nil {
		t.Fatal("LoadArXivIDs() = nil error, want format error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("LoadArXivIDs() error should name line 2, got %v", err)
	}
}

func TestLoadPublishedNotes(t *testing.T) {
	path := writeFile(t, "published_notes.txt", `# approved by Exec
http://www.ivoa.net/documents/Notes/foo/

http://www.ivoa.net/documents/Notes/bar/
`)

	urls, err := LoadPublishedNotes(path)
	if err != nil {
		t.Fatalf("LoadPublishedNotes() error = %v", err)
	}

	want := []string{
		"http://www.ivoa.net/documents/Notes/foo/",
		"http://www.ivoa.net/documents/Notes/bar/",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("LoadPublishedNotes() = %v, want %v", urls, want)
	}
}

func TestLoadPublishedNotes_Missing(t *testing.T) {
	if _, err := LoadPublishedNotes(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("LoadPublishedNotes() on missing file = nil error")
	}
}

func TestGuessShortName(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "http://www.ivoa.net/documents/SAMP/20120411/", want: "SAMP"},
		{url: "www.ivoa.net/documents/cover/SAMP-20090421.html", want: "SAMP"},
		{url: "http://www.ivoa.net/documents/cover/VOT-20040811.html", want: "VOTable"},
		{url: "http://www.ivoa.net/documents/VOSpace/20091007/", want: "VOSpace"},
		// Two equally scored segments are inconclusive.
		{url: "http://www.ivoa.net/documents/ABC/DEF/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := GuessShortName(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("GuessShortName(%q) = %q, want error", tt.url, got)
				}
				if !errors.Is(err, ErrAmbiguousShortName) {
					t.Errorf("GuessShortName(%q) error = %v, want ErrAmbiguousShortName", tt.url, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GuessShortName(%q) error = %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("GuessShortName(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
