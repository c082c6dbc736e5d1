package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/coursenotes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOutline(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"course.crs", true},
		{"dir/sub/course.crs", true},
		{"/abs/My Course.crs", true},
		{"course.txt", false},
		{"course.crs.bak", false},
		{"course.CRS", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			err := ValidateInput(tc.path)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrUsage)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	path := writeOutline(t, "c.crs", "Uni\r\nCS1 Course\r\nSection 1: A\n")
	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Uni", "CS1 Course", "Section 1: A"}, lines)

	_, err = ReadLines(filepath.Join(t.TempDir(), "missing.crs"))
	assert.ErrorIs(t, err, ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOutline(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := writeOutline(t, "c.crs", "Uni\nCS1 Course\nSection 1: A\nLesson 1: B\n")
		o, err := LoadOutline(path)
		require.NoError(t, err)
		assert.Len(t, o.Notes, 3)
		assert.Equal(t, "course", o.Dir())
	})

	t.Run("Wrong Extension", func(t *testing.T) {
		path := writeOutline(t, "c.txt", "Uni\nCS1 Course\n")
		_, err := LoadOutline(path)
		assert.ErrorIs(t, err, ErrUsage)
	})

	t.Run("Lesson Before Section", func(t *testing.T) {
		path := writeOutline(t, "c.crs", "Uni\nCS1 Course\nLesson 1: B\n")
		_, err := LoadOutline(path)
		assert.ErrorIs(t, err, core.ErrLessonBeforeSection)
	})
}
