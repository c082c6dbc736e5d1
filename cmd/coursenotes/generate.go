package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/coursenotes"
	"github.com/aretw0/coursenotes/internal/platform"
	"github.com/spf13/cobra"
)

const usageMessage = "Specify .crs file"

func runGenerate(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	if len(args) != 1 || platform.ValidateInput(args[0]) != nil {
		fmt.Fprintln(out, usageMessage)
		return
	}
	requireConfig()

	dir, err := generate(cmd.Context(), args, cfg.Output, slog.Default())
	switch {
	case errors.Is(err, platform.ErrUsage):
		fmt.Fprintln(out, usageMessage)
		return
	case errors.Is(err, platform.ErrOpen):
		fmt.Fprintf(out, "Could not open %s\n", args[0])
		return
	case err != nil:
		fatal("Failed to generate notes", err)
	}

	fmt.Fprintln(out, dir)
}

// generate writes the notes of the single outline in args under root and
// returns the course directory.
func generate(ctx context.Context, args []string, root string, logger *slog.Logger) (string, error) {
	if len(args) != 1 {
		return "", platform.ErrUsage
	}

	outline, err := coursenotes.Load(args[0])
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("failed to create output root: %w", err)
	}

	dir := filepath.Join(root, outline.Dir())
	logger.Debug("outline parsed", "course", outline.Header.CourseCode, "notes", len(outline.Notes), "dir", dir)

	svc, err := coursenotes.New(dir, coursenotes.WithLogger(logger))
	if err != nil {
		return "", err
	}

	if err := svc.Generate(ctx, outline); err != nil {
		return dir, err
	}

	logger.Debug("service state", "state", svc.State())
	return dir, nil
}
