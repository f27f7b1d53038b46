package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic_NoTempLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dp-greedy-checklist.md")

	if err := writeFileAtomic(path, []byte("# title\n"), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# title\n" {
		t.Fatalf("got %q", string(data))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, got %d entries", len(entries))
	}
}

func TestWriteFileAtomic_OverwritesPreviousExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dp-greedy-checklist.json")

	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := writeFileAtomic(path, []byte(`[{"id":"a"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[{"id":"a"}]` {
		t.Fatalf("got %q", string(data))
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	if err := writeFileAtomic(path, []byte("x"), 0644); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
