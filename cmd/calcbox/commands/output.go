package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calcbox/internal/domain"
)

// runTool runs slug locally, or on --server when one is given, and prints
// the outcome. A calculation error is returned so the process exits non-zero.
func runTool(cmd *cobra.Command, slug string, args map[string]string) error {
	out, err := appCtx.RunTool(cmd.Context(), slug, args, serverURL != "")
	if err != nil {
		return err
	}
	return printOutcome(cmd, out)
}

func printOutcome(cmd *cobra.Command, out domain.Outcome) error {
	w := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else if out.OK() {
		fmt.Fprintln(w, out.Display)
	}
	if out.Error != nil {
		return fmt.Errorf("%s: %s", out.Error.Kind, out.Error.Message)
	}
	return nil
}

// keyValues parses "k=v" words into tool arguments.
func keyValues(words []string) (map[string]string, error) {
	args := make(map[string]string, len(words))
	for _, w := range words {
		k, v, ok := strings.Cut(w, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", w)
		}
		args[k] = v
	}
	return args, nil
}
