package authors

import (
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    []string
		wantErr bool
	}{
		{
			name:    "inverted with semicolons",
			literal: "Last, J.; Greger, Max",
			want:    []string{"Last, J.", "Greger, Max"},
		},
		{
			name:    "direct with commas",
			literal: "Greg Ju, Fred Gnu Test, Wang Chu",
			want:    []string{"Greg Ju", "Fred Gnu Test", "Wang Chu"},
		},
		{
			name:    "single inverted name with trailing initial",
			literal: "Maxwell, J.C.",
			want:    []string{"Maxwell, J.C."},
		},
		{
			name:    "single direct name",
			literal: "Leonhard Euler",
			want:    []string{"Leonhard Euler"},
		},
		{
			name:    "blank particle rejected",
			literal: "Messy, this.",
			wantErr: true,
		},
		{
			name:    "empty particles skipped",
			literal: "Last, J.; ; Greger, Max",
			want:    []string{"Last, J.", "Greger, Max"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.literal)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseList(%q) error = %v, wantErr %v", tt.literal, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tt.literal, got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{[]string{"Last, J.", "Greger, Max"}, "Last, J.; Greger, Max"},
		{[]string{"Greg Ju", "Wang Chu"}, "Greg Ju, Wang Chu"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := Join(tt.names); got != tt.want {
			t.Errorf("Join(%v) = %q, want %q", tt.names, got, tt.want)
		}
	}
}

func TestParseJoinRoundTrip(t *testing.T) {
	literal := "Editor, First; Editor, S.; Guy, S.; Rixon, G."
	names, err := ParseList(literal)
	if err != nil {
		t.Fatalf("ParseList() error = %v", err)
	}
	if got := Join(names); got != literal {
		t.Errorf("Join(ParseList(%q)) = %q", literal, got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		auths   []string
		editors []string
		want    []string
	}{
		{
			name:    "editor moved to front",
			auths:   []string{"A B", "B C", "C D"},
			editors: []string{"B C"},
			want:    []string{"B C", "A B", "C D"},
		},
		{
			name:    "no editors leaves input unchanged",
			auths:   []string{"A B", "B C", "C D"},
			editors: nil,
			want:    []string{"A B", "B C", "C D"},
		},
		{
			name:    "absent editor prepended",
			auths:   []string{"A B", "B C", "C D"},
			editors: []string{"D E"},
			want:    []string{"D E", "A B", "B C", "C D"},
		},
		{
			name:    "two editors keep their given order",
			auths:   []string{"Editor, S.", "Guy, S.", "Rixon, G.", "Editor, First"},
			editors: []string{"Editor, First", "Editor, S."},
			want:    []string{"Editor, First", "Editor, S.", "Guy, S.", "Rixon, G."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.auths, tt.editors)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tt.auths, tt.editors, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	auths := []string{"A B", "B C", "C D"}
	editors := []string{"B C"}
	once := Normalize(auths, editors)
	twice := Normalize(once, editors)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize not idempotent: %v then %v", once, twice)
	}
}

func TestNormalize_DoesNotAliasInput(t *testing.T) {
	auths := []string{"A B", "B C"}
	got := Normalize(auths, nil)
	got[0] = "mutated"
	if auths[0] != "A B" {
		t.Error("Normalize result aliases its input slice")
	}
}

func TestSurname(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Demleitner, M.", "Demleitner"},
		{"Fred Gnu Test", "Test"},
		{"Andrea Preite Martinez", "Preite Martinez"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Surname(tt.name); got != tt.want {
			t.Errorf("Surname(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFirstSurname(t *testing.T) {
	if got := FirstSurname([]string{"Greg Ju", "Wang Chu"}); got != "Ju" {
		t.Errorf("FirstSurname() = %q, want %q", got, "Ju")
	}
	if got := FirstSurname(nil); got != "" {
		t.Errorf("FirstSurname(nil) = %q, want empty", got)
	}
}
