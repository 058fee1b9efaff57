// Package state persists per-stage cache records.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StageStore = (*Store)(nil)

// Store implements ports.StageStore with one JSON file per stage under the
// project's scratch directory. A missing store is an empty store.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new StageStore.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the record for a stage. Returns nil, nil if not found.
func (s *Store) Get(root, stageName string) (*domain.StageInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is constructed from trusted root and hashed filename
	data, err := os.ReadFile(s.filename(root, stageName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read stage record")
	}

	var info domain.StageInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal stage record")
	}
	return &info, nil
}

// Put stores the record, overwriting any previous one.
func (s *Store) Put(root string, info domain.StageInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal stage record")
	}

	filename := s.filename(root, info.StageName)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}

	//nolint:gosec // Path is constructed from trusted root and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write stage record")
	}
	return nil
}

func (s *Store) filename(root, stageName string) string {
	sum := sha256.Sum256([]byte(stageName))
	return filepath.Join(root, domain.DefaultStatePath(), hex.EncodeToString(sum[:])+".json")
}
