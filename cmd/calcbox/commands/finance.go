package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

func emiCmd() *cobra.Command {
	var schedule bool
	cmd := &cobra.Command{
		Use:     "emi PRINCIPAL RATE MONTHS",
		Short:   "Monthly loan instalment, total interest and total payment",
		Example: "  calcbox emi 100000 8.5 60\n  calcbox emi 5000 0 12 --schedule --json",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "loan-emi", map[string]string{
				"principal": args[0],
				"rate":      args[1],
				"months":    args[2],
				"schedule":  strconv.FormatBool(schedule),
			})
		},
	}
	cmd.Flags().BoolVar(&schedule, "schedule", false, "include the amortization schedule (use with --json)")
	return cmd
}
