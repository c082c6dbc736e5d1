package coursenotes

import (
	"log/slog"
	"os"

	"github.com/aretw0/coursenotes/internal/platform"
	"github.com/aretw0/coursenotes/pkg/core"
)

// Version is set at build time via ldflags.
var Version = "dev"

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Outline is a public alias for a parsed outline.
type Outline = core.Outline

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithMustExist opens an existing course directory instead of creating one.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithFileMode sets the permission bits of written notes.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// --- Factory ---

// New creates a Service writing notes into the course directory at path.
// Unless WithMustExist is set the directory must not exist yet.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Load reads and parses the .crs outline at path.
func Load(path string) (*core.Outline, error) {
	return platform.LoadOutline(path)
}

// Parse builds an outline from lines already in memory.
func Parse(lines []string) (*core.Outline, error) {
	return core.Build(lines)
}
