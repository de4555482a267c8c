package macromeal

import (
	"context"
	"database/sql"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator and planner as a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := settings.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return withDB(func(sqldb *sql.DB) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			return server.New(sqldb, logger, rng).Run(ctx, addr)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address (default from settings)")
}
