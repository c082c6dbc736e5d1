package core_test

import (
	"testing"

	"github.com/aretw0/coursenotes/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestNote_PathString(t *testing.T) {
	t.Run("Zero Section Collapses", func(t *testing.T) {
		n := core.NewNote(core.KindRoot, "My University", "CS101", "Intro to Computers", "", "7")
		assert.Equal(t, "my-university/cs101/0", n.PathString())
	})

	t.Run("Section Includes All Segments", func(t *testing.T) {
		n := core.NewNote(core.KindSection, "My University", "CS101", "Section 2: Data", "2", "0")
		assert.Equal(t, "my-university/cs101/2/0", n.PathString())
	})

	t.Run("Lesson Includes All Segments", func(t *testing.T) {
		n := core.NewNote(core.KindLesson, "My University", "CS101", "Lesson 4: Bits", "2", "4")
		assert.Equal(t, "my-university/cs101/2/4", n.PathString())
	})
}

func TestNote_Names(t *testing.T) {
	n := core.NewNote(core.KindLesson, "U", "C", "Lesson 1: Hello World", "1", "1")
	assert.Equal(t, "Hello World", n.DisplayTitle())
	assert.Equal(t, "1-1-hello-world", n.KebabName())
	assert.Equal(t, "1-1-hello-world.md", n.FileName())

	root := core.NewNote(core.KindRoot, "U", "C", "Intro to Computers", "0", "0")
	assert.Equal(t, "Intro to Computers", root.DisplayTitle())
	assert.Equal(t, "0-0-intro-to-computers", root.KebabName())

	multi := core.NewNote(core.KindLesson, "U", "C", "Lesson 2: Time: A Primer", "1", "2")
	assert.Equal(t, "A Primer", multi.DisplayTitle())
}

func TestNote_AppendOnly(t *testing.T) {
	n := core.NewNote(core.KindSection, "U", "C", "Section 1: Basics", "1", "0")
	n.AddTag("u/c/1/0")
	n.AddAlias("Section 1: Basics")
	child := core.NewNote(core.KindLesson, "U", "C", "Lesson 1: A", "1", "1")
	n.AddChild(child)

	assert.Equal(t, []string{"u/c/1/0"}, n.Tags)
	assert.Equal(t, []string{`"Section 1: Basics"`}, n.Aliases)
	assert.Equal(t, []*core.Note{child}, n.Children)
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "intro-to-computers", core.Kebab("Intro to Computers"))
	assert.Equal(t, "a--b", core.Kebab("A  B"))
	assert.Equal(t, "", core.Kebab(""))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "root", core.KindRoot.String())
	assert.Equal(t, "section", core.KindSection.String())
	assert.Equal(t, "lesson", core.KindLesson.String())
	assert.Equal(t, "entry", core.KindEntry.String())
	assert.Equal(t, "kind(9)", core.Kind(9).String())
}
