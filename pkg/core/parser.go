package core

import "strings"

// ParseLine splits a raw outline line into its section id, lesson id and title.
//
// The ids come from the text before the first colon: when it contains
// "Section" (or "Lesson") the id is its second whitespace-separated token.
// The title is the whole line, trimmed, prefix included.
// Malformed lines never fail; they fall back to Zero ids.
func ParseLine(line string) (section, lesson, title string) {
	section, lesson = Zero, Zero
	title = strings.TrimSpace(line)

	prefix, _, found := strings.Cut(line, ":")
	if !found {
		return section, lesson, title
	}

	fields := strings.Fields(prefix)
	if len(fields) < 2 {
		return section, lesson, title
	}
	if strings.Contains(prefix, "Section") {
		section = fields[1]
	}
	if strings.Contains(prefix, "Lesson") {
		lesson = fields[1]
	}
	return section, lesson, title
}

// classify decides the kind of a parsed outline line from its title.
func classify(title string) Kind {
	switch {
	case strings.Contains(title, "Section"):
		return KindSection
	case strings.Contains(title, "Lesson"):
		return KindLesson
	default:
		return KindEntry
	}
}
