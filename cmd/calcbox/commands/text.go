package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text MODE [TEXT...]",
		Short: "Change text case, or count words with MODE count",
		Long: `Modes: upper, lower, title, sentence, reverse, slug, camel, snake, count.
With no TEXT the input is read from stdin.`,
		Example: "  calcbox text title the quick brown fox\n  cat notes.txt | calcbox text count",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := strings.ToLower(args[0])
			input := strings.Join(args[1:], " ")
			if len(args) == 1 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = strings.TrimRight(string(b), "\n")
			}
			if mode == "count" {
				return runTool(cmd, "word-counter", map[string]string{"text": input})
			}
			return runTool(cmd, "text-case", map[string]string{"text": input, "mode": mode})
		},
	}
}
