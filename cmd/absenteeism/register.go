package main

import (
	"errors"
	"fmt"

	"absenteeism-system/internal/client"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	var employeeID, reasonID, date, hours string

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Register an absence for model retraining",
		Example: `  absenteeism register --employee-id 11 --reason-id 23 --date 2025-03-14 --hours 4`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			form := client.NewAbsenceForm(client.NewAbsenceClient(cfg.AbsenceEndpoint, cfg.RequestTimeout))
			outcome := form.Submit(client.FormValues{
				client.FieldEmployeeID:           employeeID,
				client.FieldReasonID:             reasonID,
				client.FieldAbsenceDate:          date,
				client.FieldAbsenteeismTimeHours: hours,
			})
			if outcome.IsFailed() {
				return errors.New(outcome.Message())
			}

			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(outcome.Message()))
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee-id", "", "employee ID")
	cmd.Flags().StringVar(&reasonID, "reason-id", "", "reason ID (see 'absenteeism reasons')")
	cmd.Flags().StringVar(&date, "date", "", "absence date, YYYY-MM-DD")
	cmd.Flags().StringVar(&hours, "hours", "", "total hours absent")
	return cmd
}
