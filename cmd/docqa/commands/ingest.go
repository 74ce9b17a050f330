// ABOUTME: CLI command to ingest PDF files into the vector index
// ABOUTME: Shows per-file progress and the aggregated chunk counts
package commands

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// NewIngestCmd creates the ingest command.
func NewIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file.pdf> [file.pdf...]",
		Short: "Ingest PDF files into the knowledge base",
		Long: `Ingest loads each PDF, splits it into overlapping chunks, embeds
them, and stores them in the local vector index. Files are processed
in the order given; an unsupported file aborts the run at that point
without undoing files already ingested.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
	}
}

func runIngest(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	bar := progressbar.NewOptions(len(args),
		progressbar.OptionSetDescription("indexing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
	p.ingestor.Progress = func(done, total int, path string) {
		_ = bar.Add(1)
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "indexed %s (%d/%d)\n", path, done, total)
		}
	}

	result, err := p.ingestor.Ingest(cmd.Context(), args)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d document(s), %d chunk(s)\n",
		result.Message, result.DocumentsIndexed, result.TotalChunks)

	if verbose {
		if n, err := p.index.Count(); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "index now holds %d entries\n", n)
		}
	}
	return nil
}
