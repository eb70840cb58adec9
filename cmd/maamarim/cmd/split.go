package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newSplitCmd() *cobra.Command {
	var (
		jsonOutput   bool
		docsPerChunk int
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split the collection into chunk and document files",
		Long: `Split the collection into fixed-size chunk files, one file per
document, and a master index mapping topics, concepts, dates, opening
phrases, glossary terms and document ids to chunk numbers.

Chunks follow input order; the last one may be smaller. Output
directories are created when missing.`,
		Example: `  # Default: 10 documents per chunk
  maamarim split

  # Larger chunks
  maamarim split --docs-per-chunk 15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("docs-per-chunk") {
				cfg.Split.DocsPerChunk = docsPerChunk
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			s, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}

			result, err := runSplit(ctx, cmd, cfg, s)
			if err != nil {
				return err
			}

			reports := newReportRenderer(cmd, cfg)
			if jsonOutput {
				return reports.RenderJSON(result.Report)
			}
			return reports.RenderSplit(result.Report)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print split statistics as JSON")
	cmd.Flags().IntVarP(&docsPerChunk, "docs-per-chunk", "n", 10, "Documents per chunk file")

	return cmd
}
