package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/docship/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestInbox_List(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.toml", "b")
	writeFile(t, dir, "a.json", "a")
	writeFile(t, dir, ".hidden", "h")
	writeFile(t, dir, "partial.toml.tmp", "p")
	if err := os.MkdirAll(filepath.Join(dir, SentDirName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := NewInbox(dir).List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("List() returned %d files, want 2: %v", len(files), files)
	}
	if files[0].Name != "a.json" || string(files[0].Content) != "a" {
		t.Errorf("files[0] = %s/%q, want a.json/a", files[0].Name, files[0].Content)
	}
	if files[1].Name != "b.toml" {
		t.Errorf("files[1] = %s, want b.toml", files[1].Name)
	}
}

func TestInbox_List_MissingDir(t *testing.T) {
	_, err := NewInbox(filepath.Join(t.TempDir(), "missing")).List(context.Background())
	if err == nil {
		t.Fatal("List() expected error for a missing directory")
	}
}

func TestInbox_Move(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.toml", "a")
	writeFile(t, dir, "b.toml", "b")
	in := NewInbox(dir)

	err := in.Move(context.Background(), []domain.File{{Name: "a.toml"}})
	if err != nil {
		t.Fatalf("Move() unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, SentDirName, "a.toml")); err != nil {
		t.Errorf("a.toml not archived: %v", err)
	}
	files, err := in.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].Name != "b.toml" {
		t.Errorf("remaining files = %v, want [b.toml]", files)
	}
}

func TestInbox_Move_ReportsMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.toml", "b")

	err := NewInbox(dir).Move(context.Background(), []domain.File{{Name: "gone.toml"}, {Name: "b.toml"}})
	if err == nil {
		t.Fatal("Move() expected error for a missing file")
	}
	if _, statErr := os.Stat(filepath.Join(dir, SentDirName, "b.toml")); statErr != nil {
		t.Errorf("b.toml should still be archived: %v", statErr)
	}
}

func TestIgnored(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"doc.toml", false},
		{".reports", true},
		{"doc.toml.tmp", true},
		{SentDirName, true},
		{"sent.toml", false},
	}
	for _, tt := range tests {
		if got := Ignored(tt.name); got != tt.want {
			t.Errorf("Ignored(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
