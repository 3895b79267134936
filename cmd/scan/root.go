package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	scansion "github.com/kylepjohnson/ScansionPublic"
)

func newRootCommand() *cobra.Command {
	var (
		configPath string
		workers    int
		forceTable bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Scan Latin prose into per-sentence syllable weights",
		Long: "scan reads Latin text from a file (or stdin), splits it into\n" +
			"sentences and prints one metrical scansion string per sentence,\n" +
			"'-' for long syllables and 'u' for short ones.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, configPath, workers, forceTable, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent sentence workers (overrides config)")
	cmd.Flags().BoolVar(&forceTable, "table", false, "always render the result table")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string, configPath string, workers int, forceTable, verbose bool) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	var text []byte
	if len(args) == 1 && args[0] != "-" {
		if text, err = os.ReadFile(args[0]); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	} else {
		if text, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	scanner := scansion.NewWithConfig(cfg.Scanner)
	sentences := scansion.SplitSentences(string(text))
	logger.Debug("tokenized input",
		slog.Int("sentences", len(sentences)),
		slog.Int("workers", cfg.Workers))

	start := time.Now()
	scans, err := scanner.ScanTextConcurrent(cmd.Context(), sentences, cfg.Workers)
	if err != nil {
		return err
	}
	logger.Debug("scanned", slog.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	if forceTable || stdoutIsTerminal() {
		fmt.Fprintln(out, renderResults(sentences, scans))
		return nil
	}
	for _, sc := range scans {
		fmt.Fprintln(out, sc)
	}
	return nil
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
