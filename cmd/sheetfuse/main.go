package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sheetfuse/adapters/excel"
	"sheetfuse/adapters/fs"
	"sheetfuse/app"
	"sheetfuse/domain/core"
	"sheetfuse/internal/config"
	"sheetfuse/internal/logging"
	"sheetfuse/ports"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile       string
		dir           string
		out           string
		policy        string
		includeHidden bool
		strict        bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "sheetfuse",
		Short: "Consolidate spreadsheet files into one merged workbook",
		Long: `sheetfuse scans a directory of spreadsheet files, extracts the table at the
top-left of every sheet, reconciles column labels across all of them, and
writes one merged workbook with per-row provenance.

Policies:
  union   keep every column ever seen
  common  keep only columns present in at least two sheets

Example: sheetfuse --dir ./reports --out merged.xlsx --policy common`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; the system environment still applies
			_ = godotenv.Load()

			cfg := config.Default()
			if cfgFile != "" {
				if err := cfg.LoadFile(cfgFile); err != nil {
					return err
				}
			}
			cfg.FromEnv()

			flags := cmd.Flags()
			if flags.Changed("dir") {
				cfg.SourceDir = dir
			}
			if flags.Changed("out") {
				cfg.OutputPath = out
			}
			if flags.Changed("policy") {
				cfg.Policy = policy
			}
			if flags.Changed("include-hidden") {
				cfg.IncludeHidden = includeHidden
			}
			if flags.Changed("strict") {
				cfg.StrictDecode = strict
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}

			return run(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "YAML config file")
	cmd.Flags().StringVar(&dir, "dir", "", "directory containing the source spreadsheets")
	cmd.Flags().StringVar(&out, "out", "merged.xlsx", "path of the merged output workbook")
	cmd.Flags().StringVar(&policy, "policy", "union", "column policy: union or common")
	cmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "keep rows and columns the sources mark hidden")
	cmd.Flags().BoolVar(&strict, "strict", false, "abort on the first file that fails to decode")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "console logging")

	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	policy, err := cfg.ParsedPolicy()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer logger.Sync()

	files, err := fs.ListWorkbooks(cfg.SourceDir, cfg.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no spreadsheet files found in %s", cfg.SourceDir)
	}

	progress := ports.ProgressFunc(func(msg string) {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	})

	consolidator := app.NewConsolidator(excel.NewDecoder(), progress, logger, app.Options{
		Policy:        policy,
		IncludeHidden: cfg.IncludeHidden,
		StrictDecode:  cfg.StrictDecode,
	})

	result, err := consolidator.Run(cmd.Context(), files)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		if w.Sheet == "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", w.File, w.Reason)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s / %s: %s\n", w.File, w.Sheet, w.Reason)
		}
	}

	if result.Empty() {
		return fmt.Errorf("%w (files: %d, warnings: %d)",
			core.ErrEmptyResult, len(files), len(result.Warnings))
	}

	if err := excel.NewWriter().Write(cfg.OutputPath, result.Table); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "merged %d rows from %d files into %s (run %s)\n",
		result.Table.Len(), len(files), cfg.OutputPath, result.RunID)
	return nil
}
