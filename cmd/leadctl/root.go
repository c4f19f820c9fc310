package main

import (
	"fmt"
	"time"

	"nextkey_landing_go/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// Settings keys, bound to flags and to the server's env names
const (
	keyAPIURL  = "lead-api-url"
	keyTimeout = "lead-api-timeout"
	keyDBPath  = "db-path"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "leadctl",
		Short: "leadctl talks to the lead intake API the landing sites post to",
		Long: `leadctl submits leads by hand with the same validation, phone masking
and error messages as the landing forms, and summarizes the submission outcome log.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String(keyAPIURL, config.DefaultLeadAPIURL, "base URL of the lead intake API")
	cmd.PersistentFlags().Duration(keyTimeout, 15*time.Second, "timeout of one API call")
	cmd.PersistentFlags().String(keyDBPath, "db/landing.db", "path of the submission outcome log")

	cobra.CheckErr(v.BindPFlags(cmd.PersistentFlags()))
	cobra.CheckErr(v.BindEnv(keyAPIURL, "LEAD_API_URL"))
	cobra.CheckErr(v.BindEnv(keyTimeout, "LEAD_API_TIMEOUT"))
	cobra.CheckErr(v.BindEnv(keyDBPath, "DB_PATH"))

	cmd.AddCommand(
		createSubmitCmd(v),
		createMaskCmd(),
		createStatsCmd(v),
	)
	return cmd
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(red(format), a...)
}
