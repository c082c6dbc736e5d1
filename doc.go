// Package coursenotes is the Composition Root for the coursenotes tool.
//
// It connects the outline domain (parsing a .crs course outline into a tree
// of notes) with the filesystem adapter that renders each note as a markdown
// file with frontmatter, ready to drop into a knowledge base.
//
// An outline looks like:
//
//	My University
//	CS101 Intro to Computers
//	Section 1: Basics
//	Lesson 1: Hello World
//
// and produces one note for the course, one per section and one per lesson,
// cross-linked through their frontmatter.
//
// Usage:
//
//	outline, err := coursenotes.Load("cs101.crs")
//
//	svc, err := coursenotes.New(outline.Dir(),
//		coursenotes.WithLogger(logger),
//	)
//
//	err = svc.Generate(ctx, outline)
package coursenotes
