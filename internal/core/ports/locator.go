package ports

// RootLocator resolves the project root directory.
//
// Resolution walks from the start directory toward the filesystem root and
// stops at the first directory containing the manifest marker. There is no
// silent fallback: if no marker is found the locator returns
// domain.ErrRootNotFound, and callers must supply the root explicitly.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type RootLocator interface {
	// Locate returns the absolute path of the nearest ancestor of start
	// (including start itself) that contains the marker file.
	Locate(start string) (string, error)
}
