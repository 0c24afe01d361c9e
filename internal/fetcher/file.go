package fetcher

import (
	"context"
	"fmt"
	"os"
)

// File serves a saved bulletin page from disk, for offline extraction and
// replaying pages attached to incident reports.
type File struct {
	Path string
}

// NewFile builds a file-backed bulletin source.
func NewFile(path string) *File {
	return &File{Path: path}
}

// FetchBulletin reads and flattens the saved page.
func (f *File) FetchBulletin(ctx context.Context) (string, error) {
	body, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read bulletin file: %w", err)
	}
	return pageText(string(body)), nil
}

var _ BulletinFetcher = (*File)(nil)
