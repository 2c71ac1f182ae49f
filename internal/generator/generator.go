package generator

import (
	"context"

	"github.com/oshokin/notes-release/internal/domain/release"
)

// Generator builds an installer bundle from the given configuration.
// Implementations must block until every file has been written.
type Generator interface {
	Generate(ctx context.Context, cfg *release.InstallerConfig) error
}

// Func adapts an ordinary function to the Generator interface.
type Func func(ctx context.Context, cfg *release.InstallerConfig) error

// Generate calls f(ctx, cfg).
func (f Func) Generate(ctx context.Context, cfg *release.InstallerConfig) error {
	return f(ctx, cfg)
}
