package macromeal

import (
	"fmt"
	"os"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dbPath     string
	configPath string
	logLevel   string

	settings app.Settings
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "macromeal",
	Short: "macromeal computes calorie and macro targets and builds a daily meal plan",
	Long: "macromeal computes BMR, TDEE and macro targets from your body profile, " +
		"then turns them into four meals and a shopping list from a fixed food catalog.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := app.LoadSettings(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			s.Log.Level = logLevel
		}
		settings = s
		logger = app.NewLogger(s.Log)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to settings file (default macromeal.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error")
}
