package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Header
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid header",
			input: `# Source: https://example.com/landmarks
# Title: World Landmarks

Eiffel Tower	EIF-TOW
`,
			want: Header{
				Source: "https://example.com/landmarks",
				Title:  "World Landmarks",
			},
			wantBody: "Eiffel Tower\tEIF-TOW\n",
		},
		{
			name: "missing source",
			input: `# Title: World Landmarks

Eiffel Tower`,
			wantErr: true,
		},
		{
			name:     "header only",
			input:    "# Source: local",
			want:     Header{Source: "local"},
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, body, err := ParseHeader(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseHeader() header = %+v, want %+v", got, tt.want)
			}
			if body != tt.wantBody {
				t.Errorf("ParseHeader() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseEntries(t *testing.T) {
	body := "Eiffel Tower\tEIF-TOW\n" +
		"\n" +
		"# brands\n" +
		"Coca-Cola Can\n" +
		"  Liberty Statue \t LIB-STA  \n"

	got, err := ParseEntries(body)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	want := []Entry{
		{Name: "Eiffel Tower", Expected: "EIF-TOW", Line: 1},
		{Name: "Coca-Cola Can", Line: 4},
		{Name: "Liberty Statue", Expected: "LIB-STA", Line: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseEntries() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEntries_EmptyName(t *testing.T) {
	_, err := ParseEntries("Eiffel Tower\n\tEIF-TOW\n")
	if err == nil {
		t.Fatal("expected error for entry with an expected code but no name")
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"landmarks.tsv": "# Source: test\n# Title: Landmarks\n\nEiffel Tower\tEIF-TOW\nBig Ben\n",
		"brands.txt":    "# Source: test\n\nCoca-Cola Can\n",
		"notes.md":      "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	corpora, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus failed: %v", err)
	}
	if len(corpora) != 2 {
		t.Fatalf("expected 2 corpora, got %d", len(corpora))
	}

	// os.ReadDir returns entries sorted by name
	if corpora[0].ID != "brands" || corpora[1].ID != "landmarks" {
		t.Errorf("unexpected corpus IDs: %s, %s", corpora[0].ID, corpora[1].ID)
	}
	if corpora[1].Title != "Landmarks" {
		t.Errorf("expected title Landmarks, got %q", corpora[1].Title)
	}

	all := Flatten(corpora)
	if len(all) != 3 {
		t.Errorf("expected 3 entries, got %d", len(all))
	}
}

func TestLoadCorpus_MissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("Eiffel Tower\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadCorpus(dir); err == nil {
		t.Error("expected error for corpus without Source header")
	}
}
