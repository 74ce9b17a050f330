// ABOUTME: CLI command to ask a question against the indexed documents
// ABOUTME: Prints the answer followed by its reference excerpts
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about the ingested documents",
		Long: `Ask retrieves the most relevant passages from the index and asks
the language model for an answer grounded strictly in them. When the
index holds nothing relevant the answer says so instead of guessing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("no question provided")
	}

	p, err := newPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	answer, err := p.answerer.Answer(cmd.Context(), question, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, answer.Answer)

	if len(answer.References) > 0 {
		fmt.Fprintln(out, "\nReferences:")
		for i, ref := range answer.References {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, ref)
		}
	}
	return nil
}
