package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/docship/internal/domain"
)

// SentDirName is the inbox subdirectory delivered files are moved to.
const SentDirName = "sent"

// Ignored reports whether a directory entry name is never part of a batch:
// hidden files, temp files and the sent archive.
func Ignored(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".tmp") || name == SentDirName
}

// Inbox lists submitted files from a directory and archives delivered ones.
// It implements ports.FileSource and ports.Archive.
type Inbox struct {
	dir string
}

// NewInbox creates an inbox over dir.
func NewInbox(dir string) *Inbox {
	return &Inbox{dir: dir}
}

// Dir returns the inbox directory.
func (in *Inbox) Dir() string {
	return in.dir
}

// List reads every regular file of the inbox, sorted by name.
func (in *Inbox) List(ctx context.Context) ([]domain.File, error) {
	entries, err := os.ReadDir(in.dir)
	if err != nil {
		return nil, err
	}

	files := make([]domain.File, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || Ignored(e.Name()) || !e.Type().IsRegular() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(in.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		files = append(files, domain.File{Name: e.Name(), Content: data})
	}

	return files, nil
}

// Move relocates delivered files into the sent subdirectory.
// All files are attempted; the first error is returned.
func (in *Inbox) Move(ctx context.Context, files []domain.File) error {
	sentDir := filepath.Join(in.dir, SentDirName)
	if err := os.MkdirAll(sentDir, 0o700); err != nil {
		return err
	}

	var firstErr error
	for _, f := range files {
		src := filepath.Join(in.dir, f.Name)
		dst := filepath.Join(sentDir, f.Name)
		if err := os.Rename(src, dst); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("archive %s: %w", f.Name, err)
		}
	}
	return firstErr
}
