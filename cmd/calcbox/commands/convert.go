package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"calcbox/internal/calc/units"
)

// unitSlug maps a unit family to its converter tool.
func unitSlug(family string) string {
	if family == "data" {
		return "data-size-converter"
	}
	return family + "-converter"
}

func convertCmd() *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert between units of length, weight, time, speed, area, volume or data size",
		Example: `  calcbox convert 5 km mi
  calcbox convert 1.5 GB MB --family data`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				table units.Table
				err   error
			)
			if family != "" {
				table, err = units.Lookup(family)
			} else {
				table, err = units.FamilyOf(args[1], args[2])
			}
			if err != nil {
				return err
			}
			return runTool(cmd, unitSlug(table.Family), map[string]string{
				"value": args[0],
				"from":  args[1],
				"to":    args[2],
			})
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "unit family ("+strings.Join(units.Families(), ", ")+"); inferred when empty")
	return cmd
}

func tempCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "temp VALUE FROM TO",
		Short:   "Convert temperatures between C, F, K and R",
		Example: "  calcbox temp 100 C F\n  calcbox temp -- -40 F C",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "temperature-converter", map[string]string{
				"value": args[0],
				"from":  args[1],
				"to":    args[2],
			})
		},
	}
}

func baseCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "base VALUE",
		Short:   "Convert a non-negative integer between bases 2, 8, 10 and 16",
		Example: "  calcbox base 255\n  calcbox base ff --from 16 --to 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "base-converter", map[string]string{
				"value": args[0],
				"from":  from,
				"to":    to,
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "10", "base of VALUE")
	cmd.Flags().StringVar(&to, "to", "", "target base (default: all bases)")
	return cmd
}

func sciCmd() *cobra.Command {
	var standard bool
	cmd := &cobra.Command{
		Use:     "sci VALUE",
		Short:   "Convert to or from scientific notation",
		Example: "  calcbox sci 123456\n  calcbox sci 1.5e3 --standard",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "to"
			if standard {
				direction = "from"
			}
			return runTool(cmd, "scientific-notation", map[string]string{
				"value":     args[0],
				"direction": direction,
			})
		},
	}
	cmd.Flags().BoolVar(&standard, "standard", false, "convert scientific notation back to standard form")
	return cmd
}

func romanCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "roman VALUE",
		Short:   "Convert between integers (1-3999) and Roman numerals",
		Example: "  calcbox roman 1994\n  calcbox roman MMXXIV",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "roman-numerals", map[string]string{"value": args[0]})
		},
	}
}

func wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words NUMBER",
		Short: "Spell a whole number in English words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "number-to-words", map[string]string{"value": args[0]})
		},
	}
}
