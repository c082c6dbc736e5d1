package platform

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/coursenotes/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
)

// OutlinePattern matches the base name of outline files.
const OutlinePattern = "*.crs"

// Input errors.
var (
	ErrUsage = errors.New("specify .crs file")
	ErrOpen  = errors.New("could not open outline")
)

// ValidateInput checks that path names an outline file.
func ValidateInput(path string) error {
	ok, err := doublestar.Match(OutlinePattern, filepath.Base(path))
	if err != nil || !ok {
		return ErrUsage
	}
	return nil
}

// ReadLines returns the lines of the outline at path.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	return lines, nil
}

// LoadOutline validates, reads and builds the outline at path.
func LoadOutline(path string) (*core.Outline, error) {
	if err := ValidateInput(path); err != nil {
		return nil, err
	}
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return core.Build(lines)
}
