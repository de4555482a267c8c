package macromeal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored calculations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.CalculationHistory(sqldb, historyLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tCREATED\tGOAL\tKCAL\tP\tF\tC\tTEMPLATE")
			for _, c := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
					c.ID, c.CreatedAt.Local().Format(time.RFC3339), c.Input.Goal,
					c.Targets.TargetCalories, c.Targets.ProteinG, c.Targets.FatG, c.Targets.CarbG, c.TemplateIndex)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Result limit")
}
