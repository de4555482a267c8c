package macromeal

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage calculator defaults",
}

var (
	cfgActivity float64
	cfgGoal     string
	cfgProtein  float64
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set default activity, goal or protein target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("activity") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultActivity, formatFloat(cfgActivity)); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("goal") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultGoal, cfgGoal); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("protein") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultProtein, formatFloat(cfgProtein)); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current calculator defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)
	configSetCmd.Flags().Float64Var(&cfgActivity, "activity", 0, "Default activity factor: 1.2|1.375|1.55|1.725")
	configSetCmd.Flags().StringVar(&cfgGoal, "goal", "", "Default goal: fat_loss|maintenance|lean_bulk")
	configSetCmd.Flags().Float64Var(&cfgProtein, "protein", 0, "Default protein target in g/kg: 1.6|2.0")
}
