package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nutriplan",
		Short:         "nutriplan computes calorie targets, macros and diet plans",
		Long:          "nutriplan turns weight, height, age, gender, activity level and goal into BMI, BMR, daily calories, a macro split and a diet plan. Run it as a web service or from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newCalcCmd(),
		newPlansCmd(),
		newFoodsCmd(),
		newVersionCmd(),
	)
	return root
}
