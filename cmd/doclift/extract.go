package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doclift/doclift/internal/config"
	"github.com/doclift/doclift/internal/pipeline"
	"github.com/doclift/doclift/internal/report"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract outlines for every PDF in a directory",
		Long: `Extract scans a directory for PDF files, derives a heading outline
for each one, and writes one artifact per document into the output
directory.

Examples:

  # Extract outlines for all PDFs in ./docs
  doclift extract --input ./docs --output ./outlines

  # Markdown artifacts with custom heading rules
  doclift extract -i ./docs -o ./outlines --format markdown --rules rules.yaml

Rules file (YAML) example:

  strip_pattern: '^\s*\d+(\.\d+)*\.?\s+'
  min_heading_words: 1
  max_heading_words: 12
  max_heading_levels: 4`,
		RunE: runExtractCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Directory containing PDF files (required)")
	cmd.Flags().StringP("output", "o", "", "Directory for outline artifacts (required)")
	cmd.Flags().StringP("rules", "r", "", "Heading rules file (YAML)")
	cmd.Flags().IntP("concurrency", "n", 0, "Documents processed in parallel (default: CPU count)")
	cmd.Flags().StringP("format", "f", "json", "Artifact format: json, markdown, or both")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, args []string) error {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if input == "" || output == "" {
		return errors.New("both --input and --output directories are required")
	}

	rulesFile, err := cmd.Flags().GetString("rules")
	if err != nil {
		return err
	}
	rules := config.DefaultRules()
	if rulesFile != "" {
		rules, err = config.LoadRules(rulesFile)
		if err != nil {
			return fmt.Errorf("failed to load rules file %s: %w", rulesFile, err)
		}
	}

	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}

	// Set up structured logging
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	batch := &pipeline.Batch{
		Rules:       rules,
		Concurrency: concurrency,
		Format:      format,
		Log:         logger,
	}
	summary, err := batch.Run(ctx, input, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d of %d outlines in %s\n",
		summary.Processed, summary.Found, summary.Elapsed.Round(time.Millisecond))
	if summary.Failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d documents failed; see log output for details\n", summary.Failed)
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}
