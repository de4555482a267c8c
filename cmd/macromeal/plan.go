package macromeal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/spf13/cobra"
)

var (
	planID   string
	planText bool
	planJSON bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the meal plan and shopping list for a calculation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if planText && planJSON {
			return fmt.Errorf("--text and --json are mutually exclusive")
		}
		return withDB(func(sqldb *sql.DB) error {
			calc, err := loadCalculation(sqldb, planID)
			if err != nil {
				return err
			}
			plan, err := service.AllocateMeals(calc.Targets, calc.TemplateIndex)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case planText:
				fmt.Fprint(out, service.RenderPlanText(*calc, plan))
			case planJSON:
				b, err := json.MarshalIndent(struct {
					Calculation *model.Calculation `json:"calculation"`
					Plan        model.MealPlan     `json:"plan"`
				}{calc, plan}, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal plan json: %w", err)
				}
				fmt.Fprintln(out, string(b))
			default:
				fmt.Fprintf(out, "Calculation: %s (template %d, %d kcal)\n", calc.ID, plan.TemplateIndex, calc.Targets.TargetCalories)
				fmt.Fprintln(out, "MEAL\tITEM")
				for _, meal := range plan.Meals {
					for _, item := range meal.Items {
						fmt.Fprintf(out, "%s %s\t%s\n", meal.Icon, meal.Name, service.FormatLineItem(item))
					}
				}
				fmt.Fprintln(out, "SHOPPING")
				for _, e := range plan.ShoppingList {
					fmt.Fprintf(out, "- %s\n", service.FormatShoppingEntry(e))
				}
			}
			return nil
		})
	},
}

func loadCalculation(sqldb *sql.DB, id string) (*model.Calculation, error) {
	if id != "" {
		return service.GetCalculation(sqldb, id)
	}
	calc, err := service.LatestCalculation(sqldb)
	if err != nil {
		return nil, err
	}
	if calc == nil {
		return nil, fmt.Errorf("no calculation stored (run `macromeal calc` first)")
	}
	return calc, nil
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVar(&planID, "id", "", "Calculation id (default latest)")
	planCmd.Flags().BoolVar(&planText, "text", false, "Print the plain-text export")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Output as JSON")
}
