package main

import (
	"github.com/spf13/cobra"

	"swapnet-ops/internal/dashboard"
	"swapnet-ops/internal/logging"
)

var dashboardOut string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render Grafana dashboards for the GreptimeDB tables",
	Long:  "dashboard renders the embedded Grafana dashboard templates. The datasource uid is read from " + dashboard.DatasourceEnv + ".",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		paths, err := dashboard.Render(dashboardOut, dashboard.Options{
			NetworkID:    cfg.NetworkID,
			StatusTable:  cfg.Greptime.StatusTable,
			JournalTable: cfg.Greptime.JournalTable,
		})
		if err != nil {
			return err
		}
		log := logging.FromContext(cmd.Context())
		for _, p := range paths {
			log.Info("dashboard written", "path", p)
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardOut, "out", "build", "Output directory")
}
