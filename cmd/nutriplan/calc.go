package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nutriplan/internal/app"
	"nutriplan/internal/catalog"
)

func newCalcCmd() *cobra.Command {
	var (
		weight, height float64
		age            int
		in             app.CalculateInput
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a recommendation from biometrics",
		Example: `  nutriplan calc --weight 70 --height 175 --age 25 --gender male --activity sedentary --goal weightLoss
  nutriplan calc --weight 60 --height 165 --age 30 --gender female --activity moderatelyActive --goal maintenance --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unset flags stay nil so validation reports them as missing.
			if cmd.Flags().Changed("weight") {
				in.Weight = &weight
			}
			if cmd.Flags().Changed("height") {
				in.Height = &height
			}
			if cmd.Flags().Changed("age") {
				in.Age = &age
			}

			rec, err := app.NewRecommendationService(catalog.New(), nil).Calculate(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(rec, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal recommendation json: %w", err)
				}
				fmt.Fprintln(out, string(b))
				return nil
			}
			fmt.Fprintf(out, "BMI: %.1f (%s)\n", rec.BMI, rec.BMICategory)
			fmt.Fprintf(out, "BMR: %d kcal\n", rec.BMR)
			fmt.Fprintf(out, "Daily calories: %d kcal\n", rec.DailyCalories)
			fmt.Fprintf(out, "Macros: protein %dg, carbs %dg, fat %dg\n", rec.Macros.Protein, rec.Macros.Carbs, rec.Macros.Fat)
			fmt.Fprintf(out, "Plan: %s\n", rec.DietPlan.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&weight, "weight", 0, "Body weight in kg")
	f.Float64Var(&height, "height", 0, "Height in cm")
	f.IntVar(&age, "age", 0, "Age in years")
	f.StringVar(&in.Gender, "gender", "", "male or female")
	f.StringVar(&in.ActivityLevel, "activity", "", "sedentary, lightlyActive, moderatelyActive, veryActive or extremelyActive")
	f.StringVar(&in.Goal, "goal", "maintenance", "weightLoss, muscleGain or maintenance")
	f.BoolVar(&asJSON, "json", false, "Print the recommendation as JSON")
	return cmd
}
