package core

// Metadata represents the frontmatter key-value pairs of a generated note.
type Metadata map[string]any

// Document is a note as read back from storage.
type Document struct {
	ID       string
	Content  string
	Metadata Metadata
}

// StringList returns the metadata value under key as a list of strings.
// YAML decoders hand back []any, so both shapes are accepted.
func (m Metadata) StringList(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// HasTag reports whether the document carries tag.
func (d Document) HasTag(tag string) bool {
	for _, t := range d.Metadata.StringList("tags") {
		if t == tag {
			return true
		}
	}
	return false
}
