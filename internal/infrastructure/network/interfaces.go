package network

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_runner.go -package=mock_network

// CommandRunner runs an external command and returns its standard output.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}
