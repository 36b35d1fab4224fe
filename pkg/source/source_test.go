package source

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/batch"
)

// readAll opens src and returns the text of every batch in order.
func readAll(t *testing.T, src Source, batchSize int) []string {
	t.Helper()

	r, err := src.Open(context.Background(), batchSize)
	if err != nil {
		t.Fatalf("Open(%s) error = %v", src, err)
	}
	defer r.Close()

	var texts []string
	for {
		b, err := r.Next()
		if errors.Is(err, io.EOF) {
			return texts
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if b.Index != len(texts) {
			t.Errorf("batch index = %d, want %d", b.Index, len(texts))
		}
		texts = append(texts, b.Text)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func equalTexts(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTextSource(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		batchSize int
		want      []string
	}{
		{"whole text in one batch", "a b\nc d\ne", 10, []string{"a b\nc d\ne"}},
		{"one line per batch", "a b\nc d\ne", 1, []string{"a b", "c d", "e"}},
		{"partial last batch", "a\nb\nc", 2, []string{"a\nb", "c"}},
		{"empty", "", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readAll(t, Text(tt.text), tt.batchSize)
			if !equalTexts(got, tt.want) {
				t.Errorf("batches = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextSource_Fingerprint(t *testing.T) {
	a, _ := Text("one two").Fingerprint()
	b, _ := Text("one two").Fingerprint()
	c, _ := Text("one three").Fingerprint()
	if a != b {
		t.Error("equal text should have equal fingerprints")
	}
	if a == c {
		t.Error("different text should have different fingerprints")
	}
}

func TestStreamSource_StripsBOM(t *testing.T) {
	got := readAll(t, Stream("stdin", strings.NewReader("\ufeffhello world\nbye")), 5)
	want := []string{"hello world\nbye"}
	if !equalTexts(got, want) {
		t.Errorf("batches = %q, want %q", got, want)
	}
}

func TestFileSource(t *testing.T) {
	path := writeFile(t, t.TempDir(), "words.txt", "one two\r\nthree\nfour five\n")

	got := readAll(t, File(path), 2)
	want := []string{"one two\nthree", "four five"}
	if !equalTexts(got, want) {
		t.Errorf("batches = %q, want %q", got, want)
	}

	size, err := File(path).Size()
	if err != nil || size == 0 {
		t.Errorf("Size() = %d, %v", size, err)
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.txt")).Open(context.Background(), 10)
	if !errors.Is(err, models.ErrSourceUnavailable) {
		t.Errorf("Open() error = %v, want ErrSourceUnavailable", err)
	}
}

func TestFileSource_InvalidBatchSize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "words.txt", "one")
	_, err := File(path).Open(context.Background(), 0)
	if !errors.Is(err, models.ErrConfiguration) {
		t.Errorf("Open() error = %v, want ErrConfiguration", err)
	}
}

func TestFileSource_FingerprintChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "one")
	before, err := File(path).Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "words.txt", "one two")
	after, err := File(path).Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if before == after {
		t.Error("fingerprint should change with file size")
	}
}

func TestGlobSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "bravo\nbravo")
	writeFile(t, dir, "a.txt", "alpha")
	writeFile(t, dir, "nested/c.txt", "charlie")
	writeFile(t, dir, "skip.md", "ignored")

	src := Glob(dir, "**/*.txt")
	files, err := src.Files()
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("Files() = %d files, want 3", len(files))
	}

	// Batches never span files
	got := readAll(t, src, 10)
	want := []string{"alpha", "bravo\nbravo", "charlie"}
	if !equalTexts(got, want) {
		t.Errorf("batches = %q, want %q", got, want)
	}

	size, err := src.Size()
	if err != nil || size != int64(len("bravo\nbravo")+len("alpha")+len("charlie")) {
		t.Errorf("Size() = %d, %v", size, err)
	}
}

func TestGlobSource_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")

	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{"no match", "*.csv", models.ErrSourceUnavailable},
		{"invalid pattern", "[a-", models.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Glob(dir, tt.pattern).Open(context.Background(), 5)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

const samplePage = `<!DOCTYPE html>
<html><head><title>Sample</title><style>.x { color: red }</style></head>
<body>
<p>Hello world</p>
<script>var hidden = "script";</script>
<p>hello again</p>
</body></html>`

func TestHTMLSource(t *testing.T) {
	path := writeFile(t, t.TempDir(), "page.html", samplePage)

	got := readAll(t, HTML(path, false), 100)
	if len(got) != 1 {
		t.Fatalf("got %d batches, want 1", len(got))
	}
	text := got[0]
	for _, want := range []string{"Hello world", "hello again"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q missing %q", text, want)
		}
	}
	for _, unwanted := range []string{"hidden", "color"} {
		if strings.Contains(text, unwanted) {
			t.Errorf("text %q should not contain %q", text, unwanted)
		}
	}
}

func TestHTMLSource_Missing(t *testing.T) {
	_, err := HTML(filepath.Join(t.TempDir(), "nope.html"), false).Open(context.Background(), 10)
	if !errors.Is(err, models.ErrSourceUnavailable) {
		t.Errorf("Open() error = %v, want ErrSourceUnavailable", err)
	}
}

func setupNotesDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.db")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()

	for _, stmt := range []string{
		`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`,
		`INSERT INTO notes (body) VALUES ('red green'), ('blue'), ('red')`,
	} {
		if _, err := sqlDB.Exec(stmt); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestSQLSource(t *testing.T) {
	src := SQL(setupNotesDB(t), "SELECT body FROM notes ORDER BY id")

	got := readAll(t, src, 2)
	want := []string{"red green\nblue", "red"}
	if !equalTexts(got, want) {
		t.Errorf("batches = %q, want %q", got, want)
	}
}

func TestSQLSource_Errors(t *testing.T) {
	path := setupNotesDB(t)

	tests := []struct {
		name    string
		src     SQLSource
		wantErr error
	}{
		{"missing database", SQL(filepath.Join(t.TempDir(), "none.db"), "SELECT 1"), models.ErrSourceUnavailable},
		{"bad query", SQL(path, "SELECT body FROM missing"), models.ErrSourceUnavailable},
		{"two columns", SQL(path, "SELECT id, body FROM notes"), models.ErrSourceUnavailable},
		{"empty query", SQL(path, ""), models.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.src.Open(context.Background(), 10)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSourcesSatisfyInterfaces(t *testing.T) {
	var _ Source = TextSource{}
	var _ Source = StreamSource{}
	var _ Source = FileSource{}
	var _ Source = GlobSource{}
	var _ Source = HTMLSource{}
	var _ Source = SQLSource{}

	var _ Fingerprinter = FileSource{}
	var _ Sizer = GlobSource{}
	var _ batch.Reader = batch.Chain()
}
