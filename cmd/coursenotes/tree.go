package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/coursenotes"
	"github.com/aretw0/coursenotes/pkg/core"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var treeFormat string

var treeCmd = &cobra.Command{
	Use:   "tree <file.crs>",
	Short: "Print the parsed outline without writing any file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireConfig()
		outline, err := coursenotes.Load(args[0])
		if err != nil {
			fatal("Failed to parse outline", err)
		}
		if err := renderTree(cmd.OutOrStdout(), outline, treeFormat); err != nil {
			fatal("Failed to print outline", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringVarP(&treeFormat, "format", "f", "text", "Output format: text, json or yaml")
}

// noteView is the printable form of a note.
type noteView struct {
	Kind     core.Kind `json:"kind" yaml:"kind"`
	Title    string    `json:"title" yaml:"title"`
	File     string    `json:"file" yaml:"file"`
	Tags     []string  `json:"tags" yaml:"tags"`
	Aliases  []string  `json:"aliases" yaml:"aliases"`
	Children []string  `json:"children,omitempty" yaml:"children,omitempty"`
}

func viewOf(n *core.Note) noteView {
	v := noteView{
		Kind:    n.Kind,
		Title:   n.DisplayTitle(),
		File:    n.FileName(),
		Tags:    n.Tags,
		Aliases: n.Aliases,
	}
	for _, c := range n.Children {
		v.Children = append(v.Children, c.FileName())
	}
	return v
}

func renderTree(w io.Writer, o *core.Outline, format string) error {
	views := make([]noteView, 0, len(o.Notes))
	for _, n := range o.Notes {
		views = append(views, viewOf(n))
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(views)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(views); err != nil {
			return err
		}
		return encoder.Close()
	case "text", "":
		fmt.Fprintf(w, "%s (%s)\n", o.Header.CourseName, o.Header.Origin)
		for _, n := range o.Notes[1:] {
			fmt.Fprintf(w, "%s%s  [%s]\n", strings.Repeat("  ", depth(n)), n.Title, n.FileName())
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func depth(n *core.Note) int {
	switch n.Kind {
	case core.KindRoot:
		return 0
	case core.KindLesson:
		return 2
	default:
		return 1
	}
}
