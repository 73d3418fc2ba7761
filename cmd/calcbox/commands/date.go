package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"calcbox/internal/calc/dates"
)

func dateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Date arithmetic: differences, ages, offsets, leap years, week numbers, workdays",
	}
	cmd.AddCommand(dateDiffCmd(), dateAgeCmd(), dateAddCmd(), dateLeapCmd(), dateWeekCmd(), dateWorkdaysCmd())
	return cmd
}

func dateDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff START END",
		Short: "Years, months and days between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "date-difference", map[string]string{"start": args[0], "end": args[1]})
		},
	}
}

func dateAgeCmd() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "age BIRTHDATE",
		Short: "Exact age and days until the next birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "age-calculator", map[string]string{"birthdate": args[0], "as_of": asOf})
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "date to measure to (default today)")
	return cmd
}

func dateAddCmd() *cobra.Command {
	var years, months, days int
	cmd := &cobra.Command{
		Use:     "add DATE",
		Short:   "Add or subtract years, months and days",
		Example: "  calcbox date add 2024-01-31 --months 1\n  calcbox date add 2024-03-05 --days=-10",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "date-add", map[string]string{
				"date":   args[0],
				"years":  strconv.Itoa(years),
				"months": strconv.Itoa(months),
				"days":   strconv.Itoa(days),
			})
		},
	}
	cmd.Flags().IntVar(&years, "years", 0, "years to add (negative subtracts)")
	cmd.Flags().IntVar(&months, "months", 0, "months to add (negative subtracts)")
	cmd.Flags().IntVar(&days, "days", 0, "days to add (negative subtracts)")
	return cmd
}

func dateLeapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leap [YEAR]",
		Short: "Whether a year is a leap year, with the neighbouring leap years",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "leap-year", map[string]string{"year": firstArg(args)})
		},
	}
}

func dateWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week [DATE]",
		Short: "Week of the year for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "week-number", map[string]string{"date": firstArg(args)})
		},
	}
}

func dateWorkdaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workdays START END",
		Short: "Count Monday-Friday days in an inclusive range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "workday-calculator", map[string]string{"start": args[0], "end": args[1]})
		},
	}
}

func countdownCmd() *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:     "countdown TARGET",
		Short:   "Time left until a date, optionally ticking live",
		Example: "  calcbox countdown 2025-01-01\n  calcbox countdown \"2025-01-01 09:00\" --watch",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watch {
				return runTool(cmd, "countdown-timer", map[string]string{"target": args[0]})
			}

			target, err := dates.Parse(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			err = dates.Watch(cmd.Context(), target, interval, nil, func(r dates.Remaining) {
				if r.Done {
					fmt.Fprint(w, "\rthe countdown has finished\033[K")
					return
				}
				fmt.Fprintf(w, "\r%dd %02dh %02dm %02ds\033[K", r.Days, r.Hours, r.Minutes, r.Seconds)
			})
			fmt.Fprintln(w)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep updating until the target passes or Ctrl+C")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "update interval with --watch")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
