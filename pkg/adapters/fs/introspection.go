package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path        string     `json:"path"`
	MustExist   bool       `json:"must_exist"`
	Initialized bool       `json:"initialized"`
	Written     int        `json:"written"`
	LastWrite   *time.Time `json:"last_write,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:        r.Path,
		MustExist:   r.config.MustExist,
		Initialized: r.initialized,
		Written:     r.written,
		LastWrite:   r.lastWrite,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
