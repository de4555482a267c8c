package macromeal

import (
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	calcActivity float64
	calcGoal     string
	calcProtein  float64
	calcTemplate string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute calorie and macro targets for the current profile",
	Long: "calc computes BMR, TDEE and macro targets for the latest profile, picks a meal " +
		"plan template and stores the result. Unset selections come from `macromeal config`.",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.RunCalculationInput{
			ActivityFactor: calcActivity,
			Goal:           model.Goal(calcGoal),
			ProteinPerKg:   calcProtein,
		}
		if cmd.Flags().Changed("template") {
			idx, err := parseTemplateArg(calcTemplate)
			if err != nil {
				return err
			}
			in.TemplateIndex = &idx
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return withDB(func(sqldb *sql.DB) error {
			calc, err := service.RunCalculation(sqldb, in, rng)
			if err != nil {
				return err
			}
			logger.Debug("calculation stored",
				zap.String("id", calc.ID),
				zap.Int("target_calories", calc.Targets.TargetCalories),
				zap.Int("template_index", calc.TemplateIndex),
			)
			printCalculation(cmd.OutOrStdout(), calc)
			return nil
		})
	},
}

func printCalculation(w io.Writer, calc *model.Calculation) {
	t := calc.Targets
	fmt.Fprintf(w, "Calculation: %s\n", calc.ID)
	fmt.Fprintf(w, "Goal: %s | Activity: %g | Protein: %g g/kg\n",
		service.GoalLabel(calc.Input.Goal), calc.Input.ActivityFactor, calc.Input.ProteinPerKg)
	fmt.Fprintf(w, "BMR: %d kcal | TDEE: %d kcal | Target: %d kcal\n", t.BMR, t.TDEE, t.TargetCalories)
	fmt.Fprintf(w, "Protein: %dg (%d%%) | Fat: %dg (%d%%) | Carbs: %dg (%d%%)\n",
		t.ProteinG, service.MacroShare(t.ProteinG, 4, t.TargetCalories),
		t.FatG, service.MacroShare(t.FatG, 9, t.TargetCalories),
		t.CarbG, service.MacroShare(t.CarbG, 4, t.TargetCalories))
	fmt.Fprintf(w, "Template: %d\n", calc.TemplateIndex)
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().Float64Var(&calcActivity, "activity", 0, "Activity factor: 1.2|1.375|1.55|1.725 (default from config)")
	calcCmd.Flags().StringVar(&calcGoal, "goal", "", "Goal: fat_loss|maintenance|lean_bulk (default from config)")
	calcCmd.Flags().Float64Var(&calcProtein, "protein", 0, "Protein target in g/kg: 1.6|2.0 (default from config)")
	calcCmd.Flags().StringVar(&calcTemplate, "template", "", "Plan template index (default random)")
}
