package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/console"
	"swapnet-ops/internal/logging"
	"swapnet-ops/internal/sim"
	"swapnet-ops/internal/store"
)

var (
	consoleRefresh time.Duration
	consoleJournal string
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the terminal operator console",
	Long:  "console shows station status, failures and maintenance actions and lets an operator triage them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !console.IsTerminal(os.Stdin, os.Stdout) {
			return console.ErrNotTerminal
		}
		ctx := cmd.Context()
		log := logging.FromContext(ctx)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		var opts []store.Option
		if consoleJournal != "" {
			fw, err := sim.NewFileWriter(consoleJournal, "")
			if err != nil {
				return err
			}
			defer fw.Close()
			opts = append(opts, store.WithJournal(fw), store.WithLogger(log))
		}
		s := newStore(cfg, opts...)
		return console.Run(ctx, access.ForOperator(s), consoleRefresh, os.Stdin, os.Stdout)
	},
}

func init() {
	consoleCmd.Flags().DurationVar(&consoleRefresh, "refresh", console.DefaultRefresh, "Screen refresh interval")
	consoleCmd.Flags().StringVar(&consoleJournal, "journal", "", "Path to export operator actions (JSONL)")
}
