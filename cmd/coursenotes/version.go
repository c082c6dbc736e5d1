package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/coursenotes"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of coursenotes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "coursenotes version %s\n", strings.TrimSpace(coursenotes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
