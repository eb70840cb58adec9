package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the search index and quick reference",
		Long: `Build maamarim_search_index.json and maamarim_quick_reference.txt.

The search index holds a summary of every document and six facet
indexes: topics, concepts, dates, references, opening phrases and
glossary terms. Both files are rendered completely before either is
written.`,
		Example: `  # Index the collection in the current directory
  maamarim index

  # Read another collection and write elsewhere
  maamarim index --input corpus/all.json --output-dir exports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}

			result, err := runIndex(ctx, cmd, cfg, s)
			if err != nil {
				return err
			}

			reports := newReportRenderer(cmd, cfg)
			if jsonOutput {
				return reports.RenderJSON(result.Report)
			}
			return reports.RenderIndex(result.Report)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print index statistics as JSON")

	return cmd
}
