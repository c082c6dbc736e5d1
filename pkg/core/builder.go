package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Header is the first two lines of an outline.
type Header struct {
	Origin     string
	CourseCode string
	CourseName string
}

// Dir is the name of the directory the course notes are written to.
func (h Header) Dir() string {
	return Kebab(h.CourseName)
}

// Outline is the result of a single pass over an outline file.
type Outline struct {
	Header Header
	Root   *Note
	// Notes holds every note in construction order, Root first.
	Notes []*Note
}

// Dir is the name of the directory the course notes are written to.
func (o *Outline) Dir() string {
	return o.Header.Dir()
}

// ParseHeader reads the institution and course lines.
func ParseHeader(originLine, courseLine string) (Header, error) {
	origin := strings.TrimRightFunc(originLine, unicode.IsSpace)

	fields := strings.Fields(courseLine)
	if len(fields) == 0 {
		return Header{}, ErrMalformedHeader
	}
	code := fields[0]
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(courseLine), code))
	if name == "" {
		return Header{}, fmt.Errorf("%w: course %q has no name", ErrMalformedHeader, code)
	}

	h := Header{Origin: origin, CourseCode: code, CourseName: name}
	if !isSingleElement(h.Dir()) {
		return Header{}, fmt.Errorf("%w: course name %q is not usable as a directory name", ErrMalformedHeader, name)
	}
	return h, nil
}

// isSingleElement reports whether name is one local path element.
func isSingleElement(name string) bool {
	return name != "." && filepath.IsLocal(name) &&
		!strings.ContainsRune(name, '/') && !strings.ContainsRune(name, os.PathSeparator)
}

// Build assembles the note tree from the lines of an outline file.
//
// Sections are linked under the root and lessons under the most recent
// section. A lesson with no enclosing section is an error.
// Whitespace-only lines after the header are skipped rather than turned
// into untitled notes.
func Build(lines []string) (*Outline, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: got %d line(s)", ErrMalformedHeader, len(lines))
	}

	header, err := ParseHeader(lines[0], lines[1])
	if err != nil {
		return nil, err
	}

	root := NewNote(KindRoot, header.Origin, header.CourseCode, header.CourseName, Zero, Zero)
	root.AddTag(root.PathString())
	root.AddAlias(root.Title)

	out := &Outline{Header: header, Root: root, Notes: []*Note{root}}

	var current *Note
	for i, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		note, err := buildNote(header, line, root, current)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+3, err)
		}
		if note.Kind == KindSection {
			current = note
		}
		out.Notes = append(out.Notes, note)
	}

	return out, nil
}

// buildNote turns one line into a note and links it into the tree.
// current is the enclosing section, nil before the first section.
func buildNote(h Header, line string, root, current *Note) (*Note, error) {
	section, lesson, title := ParseLine(line)
	note := NewNote(classify(title), h.Origin, h.CourseCode, title, section, lesson)

	switch note.Kind {
	case KindSection:
		root.AddChild(note)
	case KindLesson:
		if current == nil {
			return nil, fmt.Errorf("%w: %q", ErrLessonBeforeSection, title)
		}
		note.SectionID = current.SectionID
		current.AddChild(note)
	}

	note.AddTag(note.PathString())
	note.AddAlias(note.Title)
	return note, nil
}
