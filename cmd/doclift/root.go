package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for doclift.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doclift",
		Short: "Extract heading outlines from PDF documents",
		Long: `Doclift detects document structure in PDFs that carry no embedded
bookmarks. It profiles font usage across the page layout, separates
heading styles from body text, and emits a leveled outline (H1..Hn)
with page numbers as JSON or Markdown.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
