package core

import (
	"fmt"
	"strings"
)

// Zero marks an identifier that does not apply (root notes, or the lesson id of a section).
const Zero = "0"

// Kind classifies a note by its place in the outline.
type Kind int

const (
	KindRoot Kind = iota
	KindSection
	KindLesson
	// KindEntry is an outline line that is neither a section nor a lesson.
	KindEntry
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindSection:
		return "section"
	case KindLesson:
		return "lesson"
	case KindEntry:
		return "entry"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText lets encoders print the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Note is one generated entity of a course: the course itself, a section or a lesson.
// Tags, aliases and children only ever grow.
type Note struct {
	Kind      Kind
	Origin    string
	Course    string
	Title     string
	SectionID string
	LessonID  string
	Tags      []string
	Aliases   []string
	Children  []*Note
}

// NewNote creates a note, defaulting empty identifiers to Zero.
func NewNote(kind Kind, origin, course, title, section, lesson string) *Note {
	if section == "" {
		section = Zero
	}
	if lesson == "" {
		lesson = Zero
	}
	return &Note{
		Kind:      kind,
		Origin:    origin,
		Course:    course,
		Title:     title,
		SectionID: section,
		LessonID:  lesson,
	}
}

// AddTag appends a tag verbatim.
func (n *Note) AddTag(tag string) {
	n.Tags = append(n.Tags, tag)
}

// AddAlias appends an alias, wrapped in double quotes.
func (n *Note) AddAlias(alias string) {
	n.Aliases = append(n.Aliases, `"`+alias+`"`)
}

// AddChild links child under n.
func (n *Note) AddChild(child *Note) {
	n.Children = append(n.Children, child)
}

// PathString returns the tag path of the note.
// Notes outside a section collapse to origin/course/<section id>.
func (n *Note) PathString() string {
	if n.SectionID != Zero {
		return joinKebab("/", n.Origin, n.Course, n.SectionID, n.LessonID)
	}
	return joinKebab("/", n.Origin, n.Course, n.SectionID)
}

// DisplayTitle returns the text after the last colon of the title.
func (n *Note) DisplayTitle() string {
	title := n.Title
	if i := strings.LastIndex(title, ":"); i >= 0 {
		title = title[i+1:]
	}
	return strings.TrimSpace(title)
}

// KebabName is the note's file name without extension.
func (n *Note) KebabName() string {
	return joinKebab("-", n.SectionID, n.LessonID, n.DisplayTitle())
}

// FileName is KebabName with the markdown extension.
func (n *Note) FileName() string {
	return n.KebabName() + ".md"
}

// Kebab lower-cases s and replaces spaces with hyphens.
func Kebab(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

func joinKebab(sep string, parts ...string) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = Kebab(p)
	}
	return strings.Join(out, sep)
}
