package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/coursenotes"
	"github.com/aretw0/coursenotes/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	listJSON  bool
	filterTag string
	matchGlob string
)

var listCmd = &cobra.Command{
	Use:   "list [course-dir]",
	Short: "List the notes of a generated course directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireConfig()
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		service, err := coursenotes.New(dir,
			coursenotes.WithMustExist(true),
			coursenotes.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to open course directory", err)
		}

		notes, err := service.ListNotes(context.Background())
		if err != nil {
			fatal("Failed to list notes", err)
		}

		filtered, err := filterNotes(notes, filterTag, matchGlob)
		if err != nil {
			fatal("Invalid --match pattern", err)
		}

		out := cmd.OutOrStdout()
		if listJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range filtered {
			title := ""
			if aliases := note.Metadata.StringList("aliases"); len(aliases) > 0 {
				title = fmt.Sprintf("- %s", aliases[0])
			}
			fmt.Fprintf(out, "%s %s\n", note.ID, title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterTag, "tag", "", "Filter notes by tag")
	listCmd.Flags().StringVar(&matchGlob, "match", "", "Filter notes whose ID matches a glob (e.g. '1-*')")
}

// filterNotes keeps the notes carrying tag and whose ID matches pattern.
// Empty filters match everything.
func filterNotes(notes []core.Document, tag, pattern string) ([]core.Document, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	filtered := []core.Document{}
	for _, note := range notes {
		if tag != "" && !note.HasTag(tag) {
			continue
		}
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, note.ID); !ok {
				continue
			}
		}
		filtered = append(filtered, note)
	}
	return filtered, nil
}
