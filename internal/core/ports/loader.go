// Package ports defines the core interfaces for the application.
package ports

import "github.com/notmyrealname/apbuild/internal/core/domain"

// ManifestLoader loads and validates the project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at the given path and returns the validated
	// configuration. It fails on unknown fields, missing required fields,
	// or references to undefined stages.
	Load(path string) (*domain.Manifest, error)
}
