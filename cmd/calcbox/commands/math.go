package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func gcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gcd N N...",
		Aliases: []string{"lcm"},
		Short:   "Greatest common divisor and least common multiple",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "gcd-lcm", map[string]string{"numbers": strings.Join(args, ",")})
		},
	}
}

func primeCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:     "prime N",
		Short:   "Test N for primality, or list the primes up to N",
		Example: "  calcbox prime 97\n  calcbox prime 100 --list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runTool(cmd, "prime-generator", map[string]string{"limit": args[0]})
			}
			return runTool(cmd, "prime-checker", map[string]string{"n": args[0]})
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list primes up to N")
	return cmd
}

func factorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N",
		Short: "Exact factorial of 0-1000",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "factorial", map[string]string{"n": args[0]})
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats X...",
		Short: "Count, sum, mean, median, mode, range and standard deviation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "statistics", map[string]string{"numbers": strings.Join(args, ",")})
		},
	}
}

func quadraticCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quadratic A B C",
		Short:   "Solve ax² + bx + c = 0, including complex roots",
		Example: "  calcbox quadratic -- 1 -3 2",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "quadratic-solver", map[string]string{"a": args[0], "b": args[1], "c": args[2]})
		},
	}
}

func triangleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triangle A B C",
		Short: "Area and perimeter of a triangle from its sides (Heron's formula)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "triangle-area", map[string]string{"a": args[0], "b": args[1], "c": args[2]})
		},
	}
}
