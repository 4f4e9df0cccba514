package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nutriplan/internal/app"
	"nutriplan/internal/catalog"
	"nutriplan/internal/domain"
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func newPlansCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "plans [goal]",
		Short: "Show the diet plans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewCatalogService(catalog.New())
			out := cmd.OutOrStdout()

			var plans []domain.DietPlan
			if len(args) == 1 {
				plans = []domain.DietPlan{svc.Plan(domain.Goal(args[0]))}
			} else {
				all := svc.Plans()
				for _, g := range domain.Goals {
					plans = append(plans, all[g])
				}
			}
			if asJSON {
				return printJSON(out, plans)
			}
			for i, p := range plans {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printPlan(out, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print plans as JSON")
	return cmd
}

func printPlan(w io.Writer, p domain.DietPlan) {
	fmt.Fprintf(w, "%s (%d kcal)\n%s\n", p.Name, p.DailyCalories, p.Description)
	sections := []struct {
		label string
		meals []domain.Meal
	}{
		{"Breakfast", p.Meals.Breakfast},
		{"Lunch", p.Meals.Lunch},
		{"Dinner", p.Meals.Dinner},
		{"Snacks", p.Meals.Snacks},
	}
	for _, s := range sections {
		fmt.Fprintf(w, "  %s:\n", s.label)
		for _, m := range s.meals {
			fmt.Fprintf(w, "    %s - %d kcal, P %dg C %dg F %dg\n", m.Name, m.Calories, m.Protein, m.Carbs, m.Fat)
		}
	}
}

func newFoodsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "foods [category]",
		Short: "Show the reference food table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewCatalogService(catalog.New())
			out := cmd.OutOrStdout()

			categories := domain.FoodCategories
			if len(args) == 1 {
				categories = []domain.FoodCategory{domain.FoodCategory(args[0])}
			}

			table := make(map[domain.FoodCategory][]domain.FoodItem, len(categories))
			for _, c := range categories {
				items, err := svc.FoodsByCategory(string(c))
				if err != nil {
					return err
				}
				table[c] = items
			}
			if asJSON {
				return printJSON(out, table)
			}
			for _, c := range categories {
				fmt.Fprintf(out, "%s:\n", c)
				for _, f := range table[c] {
					fmt.Fprintf(out, "  %s - %.0f kcal, P %.1fg C %.1fg F %.1fg\n", f.Name, f.Calories, f.Protein, f.Carbs, f.Fat)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print foods as JSON")
	return cmd
}
