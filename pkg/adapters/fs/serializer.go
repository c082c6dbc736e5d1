package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
	"github.com/aretw0/coursenotes/pkg/core"
)

// errUnparsable marks a note whose frontmatter is not valid YAML. Titles with
// double quotes produce such notes, since aliases are written unescaped.
var errUnparsable = errors.New("failed to parse frontmatter")

// MarkdownSerializer renders notes to markdown with a frontmatter block and
// reads generated notes back.
type MarkdownSerializer struct{}

// NewMarkdownSerializer creates a new Markdown serializer.
func NewMarkdownSerializer() *MarkdownSerializer {
	return &MarkdownSerializer{}
}

// Serialize renders n as:
//
//	---
//	tags:
//	  - <tag>
//	aliases:
//	  - <alias>
//	lessons:                     (sections: for non-section notes)
//	  - "[[<child file>|<child title>]]"
//	---
//	# <display title>
//
// The children block is only written when n has children. Aliases are
// already quoted when added to the note and are written as is.
func (s *MarkdownSerializer) Serialize(n *core.Note) []byte {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	buf.WriteString("tags:\n")
	for _, tag := range n.Tags {
		fmt.Fprintf(&buf, "  - %s\n", tag)
	}
	buf.WriteString("aliases:\n")
	for _, alias := range n.Aliases {
		fmt.Fprintf(&buf, "  - %s\n", alias)
	}
	if len(n.Children) > 0 {
		buf.WriteString(childrenKey(n) + ":\n")
		for _, child := range n.Children {
			fmt.Fprintf(&buf, "  - \"[[%s|%s]]\"\n", child.KebabName(), child.Title)
		}
	}
	buf.WriteString("---\n")

	fmt.Fprintf(&buf, "# %s\n", n.DisplayTitle())
	return buf.Bytes()
}

func childrenKey(n *core.Note) string {
	if n.Kind == core.KindSection {
		return "lessons"
	}
	return "sections"
}

// Parse reads a generated note. Files without frontmatter yield empty metadata.
func (s *MarkdownSerializer) Parse(r io.Reader) (*core.Document, error) {
	meta := make(map[string]any)
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnparsable, err)
	}

	return &core.Document{
		Content:  string(bytes.TrimLeft(body, "\r\n")),
		Metadata: core.Metadata(meta),
	}, nil
}
