package commands

import "github.com/spf13/cobra"

func bmiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bmi WEIGHT_KG HEIGHT_CM",
		Short: "Body mass index and its category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "bmi", map[string]string{"weight": args[0], "height": args[1]})
		},
	}
}

func bmrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bmr SEX WEIGHT_KG HEIGHT_CM AGE",
		Short: "Basal metabolic rate (Mifflin-St Jeor) and daily calories by activity",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "bmr", map[string]string{
				"sex":    args[0],
				"weight": args[1],
				"height": args[2],
				"age":    args[3],
			})
		},
	}
}

func bodyfatCmd() *cobra.Command {
	var hip string
	cmd := &cobra.Command{
		Use:   "bodyfat SEX HEIGHT_CM NECK_CM WAIST_CM",
		Short: "Body fat percentage (US Navy method)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "body-fat", map[string]string{
				"sex":    args[0],
				"height": args[1],
				"neck":   args[2],
				"waist":  args[3],
				"hip":    hip,
			})
		},
	}
	cmd.Flags().StringVar(&hip, "hip", "", "hip circumference in cm (required for female)")
	return cmd
}

func idealweightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "idealweight SEX HEIGHT_CM",
		Short: "Ideal body weight by the Devine, Robinson, Miller and Hamwi formulas",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, "ideal-weight", map[string]string{"sex": args[0], "height": args[1]})
		},
	}
}
