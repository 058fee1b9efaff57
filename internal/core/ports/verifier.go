package ports

// Verifier checks stage outputs on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyOutputs reports whether every output exists under root.
	// A directory output verifies only when it is non-empty.
	VerifyOutputs(root string, outputs []string) (bool, error)
}
