package ports

import "context"

// CommandRunner defines the interface for running external commands. It is
// used for the optional direnv activation step after synchronization.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// LookPath reports the absolute path of a binary on PATH, or an error
	// when it cannot be found.
	LookPath(name string) (string, error)

	// Run executes name with args in dir, streaming stdout and stderr to the
	// logger. It returns an error when the command exits non-zero.
	Run(ctx context.Context, dir, name string, args ...string) error
}
