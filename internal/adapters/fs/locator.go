package fs

import (
	"os"
	"path/filepath"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RootLocator = (*Locator)(nil)

// Locator resolves the project root by searching for the manifest marker.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate walks from start toward the filesystem root and returns the first
// directory containing the marker file. It returns domain.ErrRootNotFound
// when no ancestor carries the marker; it never falls back to start.
func (l *Locator) Locate(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve start directory"), "start", start)
	}

	for {
		marker := filepath.Join(dir, domain.MarkerFile)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(zerr.With(domain.ErrRootNotFound, "start", start), "marker", domain.MarkerFile)
		}
		dir = parent
	}
}
