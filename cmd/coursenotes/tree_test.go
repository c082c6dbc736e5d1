package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/coursenotes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample(t *testing.T) *core.Outline {
	t.Helper()
	o, err := core.Build(strings.Split(strings.TrimSuffix(sampleOutline, "\n"), "\n"))
	require.NoError(t, err)
	return o
}

func TestRenderTree_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTree(&buf, sample(t), "text"))

	assert.Equal(t, `Intro to Computers (My University)
  Section 1: Basics  [1-0-basics.md]
    Lesson 1: Hello World  [1-1-hello-world.md]
    Lesson 2: Variables  [1-2-variables.md]
  Section 2: Control Flow  [2-0-control-flow.md]
    Lesson 1: Branches  [2-1-branches.md]
`, buf.String())
}

func TestRenderTree_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTree(&buf, sample(t), "json"))

	var views []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &views))
	require.Len(t, views, 6)
	assert.Equal(t, "root", views[0]["kind"])
	assert.Equal(t, []any{"1-0-basics.md", "2-0-control-flow.md"}, views[0]["children"])
	assert.Equal(t, "lesson", views[2]["kind"])
	assert.NotContains(t, views[2], "children")
}

func TestRenderTree_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTree(&buf, sample(t), "yaml"))

	var views []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &views))
	require.Len(t, views, 6)
	assert.Equal(t, "section", views[1]["kind"])
	assert.Equal(t, "Basics", views[1]["title"])
	assert.Equal(t, []any{"my-university/cs101/1/0"}, views[1]["tags"])
}

func TestRenderTree_UnknownFormat(t *testing.T) {
	assert.Error(t, renderTree(&bytes.Buffer{}, sample(t), "html"))
}
