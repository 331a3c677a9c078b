package main

import (
	"fmt"
	"os"

	"absenteeism-system/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "absenteeism",
		Short: "Predict absence hours and register absences from the terminal",
		Long: `absenteeism drives the same forms as the web pages: predict sends eleven
employee features to the prediction service, register stores a labeled
absence through the ingestion route and reasons prints the reference table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(predictCmd())
	root.AddCommand(registerCmd())
	root.AddCommand(reasonsCmd())
	return root
}

// loadConfig reads configuration for a subcommand, including the persistent
// flags inherited from the root.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	if err := config.SetupLogger(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}
