package macromeal

import (
	"database/sql"
	"fmt"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the food catalog and stored calculations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			for _, issue := range report.CatalogIssues {
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog: %s\n", issue)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid calculations: %d\n", report.InvalidCalculations)
			fmt.Fprintf(cmd.OutOrStdout(), "Stale targets: %d\n", report.StaleTargets)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed rows: %d\n", report.RemovedRows)
				fmt.Fprintf(cmd.OutOrStdout(), "Recomputed rows: %d\n", report.RecomputedRows)
				report, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Remove invalid rows and recompute stale targets")
}
