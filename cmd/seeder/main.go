package main

import (
	"fmt"
	"os"

	"absenteeism-system/config"
	"absenteeism-system/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:          "seeder",
		Short:        "Write the reason and education reference tables into the database",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if err := config.SetupLogger(cfg); err != nil {
				return err
			}

			logrus.Info("Seeding master data")
			db, err := config.ConnectDB(cfg)
			if err != nil {
				return err
			}
			if err := database.SeedAll(db); err != nil {
				return err
			}
			logrus.Info("Seeding finished")
			return nil
		},
	}
	config.RegisterFlags(cmd.Flags())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
