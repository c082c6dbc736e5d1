package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/coursenotes/internal/platform"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputDir  string

	cfg = platform.DefaultConfig()
	// configErr is reported by commands once their arguments are known to be
	// usable, so a broken config file never hides the usage message.
	configErr error
)

// rootCmd generates the notes of one outline when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "coursenotes <file.crs>",
	Short: "Generate knowledge-base notes from a course outline",
	Long: `coursenotes reads a .crs course outline (institution, course, sections,
lessons) and writes one markdown note per entry into a new directory named
after the course. Each note carries tags, aliases and links to its children
in its frontmatter.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := platform.LoadConfig(configPath)
		cfg, configErr = loaded, err
		if outputDir != "" {
			cfg.Output = outputDir
		}

		level := slog.LevelInfo
		if verbose || cfg.Verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(cmd, args)
	},
}

func requireConfig() {
	if configErr != nil {
		fatal("Failed to load config", configErr)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./"+platform.DefaultConfigFile+" if present)")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Directory the course folder is created in (default \".\")")
}
