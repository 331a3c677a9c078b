package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"absenteeism-system/config"
	"absenteeism-system/internal/database"
	"absenteeism-system/internal/routes"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var seed bool

	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Serve the absenteeism predictor, absence registration and dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, seed)
		},
	}
	config.RegisterFlags(cmd.Flags())
	cmd.Flags().BoolVar(&seed, "seed", false, "seed the master data tables before serving")

	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("Server stopped")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, seed bool) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := config.SetupLogger(cfg); err != nil {
		return err
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	if seed {
		if err := database.SeedAll(db); err != nil {
			return err
		}
	}

	app := routes.NewApp(cfg, db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logrus.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.WithError(err).Error("Graceful shutdown failed")
		}
	}()

	logrus.WithFields(logrus.Fields{
		"addr":             cfg.Addr(),
		"prediction_url":   cfg.PredictionURL,
		"absence_endpoint": cfg.AbsenceEndpoint,
	}).Info("Server ready")
	return app.Listen(cfg.Addr())
}
