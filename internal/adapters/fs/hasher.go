package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes stage cache keys with xxhash.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// StageHash computes a single hash covering the stage definition, the
// explicit environment of its commands, and the content of its input files.
func (h *Hasher) StageHash(stage *domain.Stage, root string) (string, error) {
	digest := xxhash.New()

	hashDefinition(stage, digest)

	files, err := h.resolveInputFiles(stage.Inputs, root)
	if err != nil {
		return "", err
	}
	if err := h.hashFiles(files, digest); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// OutputHash computes the hash of the stage's produced outputs.
func (h *Hasher) OutputHash(outputs []string, root string) (string, error) {
	sorted := make([]string, len(outputs))
	copy(sorted, outputs)
	sort.Strings(sorted)

	var files []string
	for _, out := range sorted {
		path := filepath.Join(root, out)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", zerr.With(domain.ErrOutputMissing, "path", path)
			}
			return "", zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
		if info.IsDir() {
			for f := range h.walker.WalkFiles(path, nil) {
				files = append(files, f)
			}
		} else {
			files = append(files, path)
		}
	}

	digest := xxhash.New()
	if err := h.hashFiles(files, digest); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// ComputeFileHash computes the xxhash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return digest.Sum64(), nil
}

// hashDefinition hashes everything about a stage that is not file content:
// name, dependencies, declared inputs/outputs, and each command's argv,
// working directory, and explicit environment.
func hashDefinition(stage *domain.Stage, digest *xxhash.Digest) {
	section := func(items []string) {
		for _, item := range items {
			_, _ = digest.WriteString(item)
			_, _ = digest.Write([]byte{0})
		}
		_, _ = digest.Write([]byte{0})
	}

	_, _ = digest.WriteString(stage.Name)
	_, _ = digest.Write([]byte{0})
	section(stage.DependsOn)
	section(stage.Inputs)
	section(stage.Outputs)

	for _, cmd := range stage.Commands {
		section(cmd.Argv)
		_, _ = digest.WriteString(cmd.Dir)
		_, _ = digest.Write([]byte{0})
		// Command env is explicit and ordered by the planner; no sort here.
		section(cmd.Env)
	}
}

// resolveInputFiles expands input patterns to a deterministic file list.
// A pattern that matches nothing and names no existing path is an error:
// a silently absent input would poison the cache key.
func (h *Hasher) resolveInputFiles(inputs []string, root string) ([]string, error) {
	var files []string
	for _, input := range inputs {
		path := filepath.Join(root, input)

		if _, err := os.Stat(path); err != nil {
			matches, globErr := filepath.Glob(path)
			if globErr != nil || len(matches) == 0 {
				return nil, zerr.With(zerr.New("input not found"), "path", path)
			}
			sort.Strings(matches)
			for _, match := range matches {
				expanded, err := h.expandPath(match)
				if err != nil {
					return nil, err
				}
				files = append(files, expanded...)
			}
			continue
		}

		expanded, err := h.expandPath(path)
		if err != nil {
			return nil, err
		}
		files = append(files, expanded...)
	}
	return files, nil
}

func (h *Hasher) expandPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat input"), "path", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	for f := range h.walker.WalkFiles(path, nil) {
		files = append(files, f)
	}
	return files, nil
}

// hashFiles hashes file contents concurrently and folds the per-file
// digests into the main digest in list order, keeping the result stable.
func (h *Hasher) hashFiles(files []string, digest *xxhash.Digest) error {
	hashes := make([]uint64, len(files))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		g.Go(func() error {
			sum, err := h.ComputeFileHash(path)
			if err != nil {
				return err
			}
			hashes[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range files {
		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0})
		if err := binary.Write(digest, binary.LittleEndian, hashes[i]); err != nil {
			return zerr.Wrap(err, "failed to write hash to digest")
		}
	}
	return nil
}
