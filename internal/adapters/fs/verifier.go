package fs

import (
	"os"
	"path/filepath"

	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks that stage outputs exist on disk.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs reports whether every output exists under root. A file
// output must exist; a directory output must exist and be non-empty,
// since a dependent stage cannot consume an empty tree.
func (v *Verifier) VerifyOutputs(root string, outputs []string) (bool, error) {
	for _, out := range outputs {
		path := filepath.Join(root, out)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return false, zerr.With(zerr.Wrap(err, "failed to read output directory"), "path", path)
			}
			if len(entries) == 0 {
				return false, nil
			}
		}
	}
	return true, nil
}
