package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"absenteeism-system/internal/model"

	"github.com/spf13/cobra"
)

func reasonsCmd() *cobra.Command {
	var group int

	cmd := &cobra.Command{
		Use:   "reasons",
		Short: "List the absence reason reference table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				HeaderStyle.Render("ID"),
				HeaderStyle.Render("Group"),
				HeaderStyle.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 5),
				strings.Repeat("-", 40))

			for _, r := range model.Reasons() {
				if group >= 0 && r.Group != group {
					continue
				}
				fmt.Fprintf(w, "%d\t%d\t%s\n", r.ID, r.Group, r.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&group, "group", -1, "only show reasons in this group (0-4)")
	return cmd
}
