package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/coursenotes/pkg/core"
)

// DefaultFileMode is the permission of written notes.
const DefaultFileMode os.FileMode = 0644

// ErrInvalidName is returned for notes whose file name would escape the course directory.
var ErrInvalidName = errors.New("note file name contains a path separator")

// Repository implements core.Repository on a single course directory.
type Repository struct {
	Path       string
	config     Config
	serializer *MarkdownSerializer

	mu          sync.RWMutex
	initialized bool
	written     int
	lastWrite   *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path string
	// MustExist opens an existing directory instead of creating a new one.
	MustExist bool
	FileMode  os.FileMode
	Logger    *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: NewMarkdownSerializer(),
	}
}

// Initialize creates the course directory, or checks it exists in MustExist mode.
// The parent directory must already exist. Creating over an existing
// directory fails with core.ErrOutputExists.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if err != nil {
			return fmt.Errorf("course directory not found: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("course path is not a directory: %s", r.Path)
		}
	} else {
		if err := os.Mkdir(r.Path, 0755); err != nil {
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("%w: %s", core.ErrOutputExists, r.Path)
			}
			return fmt.Errorf("failed to create course directory: %w", err)
		}
		r.config.Logger.Debug("course directory created", "path", r.Path)
	}

	r.mu.Lock()
	r.initialized = true
	r.mu.Unlock()
	return nil
}

// Save renders the note and writes it without ever replacing an existing file.
func (r *Repository) Save(ctx context.Context, n *core.Note) error {
	name := n.FileName()
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	target := filepath.Join(r.Path, name)
	if err := writeFileExclusive(target, r.serializer.Serialize(n), r.config.FileMode); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", core.ErrNoteExists, target)
		}
		return err
	}

	r.recordWrite()
	r.config.Logger.Debug("note saved", "path", target)
	return nil
}

// List reads every markdown note in the course directory, sorted by file name.
// A note whose frontmatter does not parse is still listed, with its raw
// content and no metadata.
func (r *Repository) List(ctx context.Context) ([]core.Document, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course directory: %w", err)
	}

	var docs []core.Document
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".md" {
			continue
		}

		path := filepath.Join(r.Path, name)
		doc, err := r.read(path)
		if errors.Is(err, errUnparsable) {
			r.config.Logger.Warn("note frontmatter unreadable", "path", path, "error", err)
			raw, readErr := os.ReadFile(path)
			if readErr != nil {
				return nil, fmt.Errorf("%s: %w", name, readErr)
			}
			doc, err = &core.Document{Content: string(raw), Metadata: core.Metadata{}}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		doc.ID = strings.TrimSuffix(name, ".md")
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (r *Repository) read(path string) (*core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.serializer.Parse(f)
}

func (r *Repository) recordWrite() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.written++
	r.lastWrite = &now
}
