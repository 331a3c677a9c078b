package main

import (
	"errors"
	"fmt"
	"strings"

	"absenteeism-system/internal/client"

	"github.com/spf13/cobra"
)

// flagName turns a payload field such as Daily_Work_Load_Average into
// daily-work-load-average.
func flagName(field string) string {
	return strings.ToLower(strings.ReplaceAll(field, "_", "-"))
}

func predictCmd() *cobra.Command {
	raw := make(map[string]*string, len(client.PredictionFields))

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Estimate absence hours for one employee",
		Example: `  absenteeism predict --reason-group 3 --month-value 7 --day-of-the-week 2 \
    --transportation-expense 179 --distance-to-work 51 --age 38 \
    --daily-work-load-average 239.55 --body-mass-index 31 --education 1 \
    --children 0 --pet 0`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			values := make(client.FormValues, len(raw))
			for field, v := range raw {
				values[field] = *v
			}

			predictor := client.NewPredictionClient(cfg.PredictionURL, cfg.RequestTimeout)
			form := client.NewPredictionForm(predictor)
			outcome := form.Submit(values)
			if outcome.IsFailed() {
				return errors.New(outcome.Message())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", HeaderStyle.Render("Predicted Hours:"), ValueStyle.Render(outcome.Message()))
			fmt.Fprintln(out, MutedStyle.Render("Source: "+predictor.URL()))
			return nil
		},
	}

	for _, field := range client.PredictionFields {
		raw[field] = cmd.Flags().String(flagName(field), "", field)
	}
	return cmd
}
