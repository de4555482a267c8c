package macromeal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your body profile (weight, height, age, gender)",
}

var (
	profileWeight     float64
	profileWeightUnit string
	profileHeight     float64
	profileHeightUnit string
	profileAge        float64
	profileGender     string
	profileShowUnit   string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a new body profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileInput{
			Weight:     profileWeight,
			WeightUnit: profileWeightUnit,
			Height:     profileHeight,
			HeightUnit: profileHeightUnit,
			Age:        profileAge,
			Gender:     profileGender,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.SetProfile(sqldb, in)
			if err != nil {
				return err
			}
			logger.Debug("profile stored", zap.Int64("id", id))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %d\n", id)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current body profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.CurrentProfile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile configured")
				return nil
			}
			weight, err := service.FromKg(p.Profile.WeightKg, profileShowUnit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f %s\n", weight, profileShowUnit)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", p.Profile.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %g\n", p.Profile.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", p.Profile.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", p.CreatedAt.Local().Format(time.RFC3339))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight")
	profileSetCmd.Flags().StringVar(&profileWeightUnit, "weight-unit", "kg", "Weight unit: kg or lb")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height")
	profileSetCmd.Flags().StringVar(&profileHeightUnit, "height-unit", "cm", "Height unit: cm or in")
	profileSetCmd.Flags().Float64Var(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male or female")
	for _, name := range []string{"weight", "height", "age", "gender"} {
		_ = profileSetCmd.MarkFlagRequired(name)
	}

	profileShowCmd.Flags().StringVar(&profileShowUnit, "unit", "kg", "Weight output unit: kg or lb")
}
