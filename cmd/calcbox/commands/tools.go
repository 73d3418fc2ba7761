package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"calcbox/internal/domain"
)

func toolsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "tools [SEARCH]",
		Short: "List the tool catalog, filtered by search text and category",
		Long: `Lists catalog tools whose name or description contains SEARCH.

--category selects a category and remembers it for the next call; without it
the last selected category is used. With --server the remote catalog is
listed and nothing is remembered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, cat, err := appCtx.ListTools(cmd.Context(), firstArg(args), domain.Category(category), serverURL != "")
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(tools)
			}

			fmt.Fprintf(w, "Category: %s (%d tools)\n\n", cat, len(tools))
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSLUG\tNAME\tCATEGORY\tSTATUS")
			for _, t := range tools {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Slug, t.Name, t.Category, t.Status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category to show (All, Converters, \"Date & Time\", Math, Finance, Health, Text)")
	return cmd
}

func runCmd() *cobra.Command {
	var showParams bool
	cmd := &cobra.Command{
		Use:   "run TOOL [key=value...]",
		Short: "Run any catalog tool by slug",
		Example: `  calcbox run bmi weight=70 height=175
  calcbox run loan-emi principal=100000 rate=8.5 months=60 --json
  calcbox run statistics --params`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showParams {
				params, err := appCtx.Calculator.ToolParams(args[0])
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "PARAM\tREQUIRED\tDEFAULT\tDESCRIPTION")
				for _, p := range params {
					fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n", p.Name, p.Required, p.Default, p.Description)
				}
				return tw.Flush()
			}

			toolArgs, err := keyValues(args[1:])
			if err != nil {
				return err
			}
			return runTool(cmd, args[0], toolArgs)
		},
	}
	cmd.Flags().BoolVar(&showParams, "params", false, "list the tool's parameters instead of running it")
	return cmd
}
