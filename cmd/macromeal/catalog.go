package macromeal

import (
	"fmt"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List meal plan templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "INDEX\tBREAKFAST\tLUNCH\tDINNER")
		for i, tpl := range service.Templates() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s + %s\t%s + %s\t%s + %s\n", i,
				tpl.BreakfastProtein, tpl.BreakfastCarb,
				tpl.LunchProtein, tpl.LunchCarb,
				tpl.DinnerProtein, tpl.DinnerCarb)
		}
		return nil
	},
}

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List the food catalog with portion bounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "KEY\tLABEL\tMACRO\tDENSITY\tMIN\tMAX")
		for _, f := range service.Foods() {
			lo, hi := f.Range()
			var density string
			switch v := f.(type) {
			case service.UnitFood:
				density = fmt.Sprintf("%gg/%s", v.ProteinPerUnit, v.Unit)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d %s\t%d %s\n", v.Key, v.Label, f.Role(), density, lo, v.Unit, hi, v.Unit)
			case service.DensityFood:
				density = fmt.Sprintf("%gg/100g", v.Per100g)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%dg\t%dg\n", v.Key, v.Label, f.Role(), density, lo, hi)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd, foodsCmd)
}
