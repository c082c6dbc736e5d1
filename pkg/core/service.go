package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Service writes the notes of an outline through a Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu      sync.RWMutex
	written int
}

// NewService creates a new Service. A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// Generate saves every note of the outline in order.
// It stops at the first failure; notes saved before it stay in place.
func (s *Service) Generate(ctx context.Context, o *Outline) error {
	if o == nil || len(o.Notes) == 0 {
		return errors.New("outline has no notes")
	}

	for _, n := range o.Notes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.repo.Save(ctx, n); err != nil {
			return err
		}

		s.mu.Lock()
		s.written++
		s.mu.Unlock()

		s.logger.Debug("note written", "kind", n.Kind, "file", n.FileName(), "children", len(n.Children))
	}

	s.logger.Info("course generated", "course", o.Header.CourseCode, "notes", len(o.Notes))
	return nil
}

// ListNotes returns the notes already stored in the repository.
func (s *Service) ListNotes(ctx context.Context) ([]Document, error) {
	return s.repo.List(ctx)
}

// Written reports how many notes this service has saved.
func (s *Service) Written() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.written
}
