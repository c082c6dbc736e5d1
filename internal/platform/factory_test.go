package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/coursenotes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	saved []*core.Note
}

func (s *stubRepository) Initialize(ctx context.Context) error { return nil }

func (s *stubRepository) Save(ctx context.Context, n *core.Note) error {
	s.saved = append(s.saved, n)
	return nil
}

func (s *stubRepository) List(ctx context.Context) ([]core.Document, error) { return nil, nil }

func TestNew_GeneratesCourse(t *testing.T) {
	path := writeOutline(t, "course.crs", "My University\nCS101 Intro to Computers\nSection 1: Basics\nLesson 1: Hello World\n")
	o, err := LoadOutline(path)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), o.Dir())
	svc, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, svc.Generate(context.Background(), o))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestNew_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "0-0-intro.md")
	require.NoError(t, os.WriteFile(keep, []byte("keep me"), 0644))

	_, err := New(dir)
	assert.ErrorIs(t, err, core.ErrOutputExists)

	got, err := os.ReadFile(keep)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(got))
}

func TestInit_Options(t *testing.T) {
	t.Run("Injected Repository", func(t *testing.T) {
		stub := &stubRepository{}
		repo, err := Init("ignored", WithRepository(stub))
		require.NoError(t, err)
		assert.Same(t, stub, repo)
	})

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := Init(t.TempDir(), WithAdapter("s3"))
		assert.ErrorContains(t, err, "unknown adapter")
	})

	t.Run("Must Exist", func(t *testing.T) {
		_, err := Init(t.TempDir(), WithMustExist(true))
		assert.NoError(t, err)

		_, err = Init(filepath.Join(t.TempDir(), "missing"), WithMustExist(true))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("File Mode", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "course")
		repo, err := Init(dir, WithFileMode(0600))
		require.NoError(t, err)

		n := core.NewNote(core.KindRoot, "U", "C1", "Course", "0", "0")
		require.NoError(t, repo.Save(context.Background(), n))

		info, err := os.Stat(filepath.Join(dir, n.FileName()))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})
}
