package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"nextkey_landing_go/db"
	"nextkey_landing_go/models"
	"nextkey_landing_go/services"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func createStatsCmd(v *viper.Viper) *cobra.Command {
	var since time.Duration

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize submission outcomes per site, form and result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := db.Open(v.GetString(keyDBPath), "production")
			if err != nil {
				return formattedError("%v", err)
			}
			if sqlDB, err := conn.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := conn.AutoMigrate(&models.SubmissionEvent{}); err != nil {
				return formattedError("failed to prepare submission log: %v", err)
			}

			rows, err := services.NewSubmissionLog(conn, nil).Summary(time.Now().Add(-since))
			if err != nil {
				return formattedError("failed to read submission log: %v", err)
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "No submissions in the last %s\n", since)
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, bold("SITE\tFORM\tOUTCOME\tCOUNT"))
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.Site, r.LeadSource, r.Outcome, r.Count)
			}
			return w.Flush()
		},
	}

	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "how far back to look")
	return cmd
}
