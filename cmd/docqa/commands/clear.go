// ABOUTME: CLI command to clear the vector index
// ABOUTME: Removes every stored chunk; the operation is idempotent
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"docqa/internal/core"
)

// NewClearCmd creates the clear command.
func NewClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all indexed documents",
		RunE:  runClear,
	}
}

func runClear(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	before, err := p.index.Count()
	if err != nil {
		return err
	}

	result := core.ClearIndex(p.index)
	if result.Status != 200 {
		return fmt.Errorf("%s", result.Message)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d chunks removed)\n", result.Message, before)
	return nil
}
