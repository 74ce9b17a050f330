// ABOUTME: Root command wiring for the docqa CLI
// ABOUTME: Registers subcommands and global flags
package commands

import (
	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docqa",
		Short: "Question answering over your PDF documents",
		Long: `docqa ingests PDF documents into a local vector index and answers
questions about them using retrieval-augmented generation.

Ingest documents first, then ask questions:

  docqa ingest manual.pdf datasheet.pdf
  docqa ask "What is the maximum operating temperature?"`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(
		NewIngestCmd(),
		NewAskCmd(),
		NewClearCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
