package core

import (
	"errors"
	"fmt"
	"io/fs"
)

// Common errors.
var (
	ErrLessonBeforeSection = errors.New("lesson appears before any section")
	ErrMalformedHeader     = errors.New("outline header must be an institution line followed by '<code> <course name>'")

	// ErrOutputExists and ErrNoteExists wrap fs.ErrExist so callers can test either.
	ErrOutputExists = fmt.Errorf("output directory already exists: %w", fs.ErrExist)
	ErrNoteExists   = fmt.Errorf("note already exists: %w", fs.ErrExist)
)
