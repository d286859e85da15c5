package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/logging"
	"swapnet-ops/internal/sim"
)

var (
	replayInput     string
	replaySpeed     float64
	replayPrintOnly bool
	replayStatusLog string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Rebuild network state from a journal file",
	Long:  "replay applies a recorded action journal to the seeded network, writes one status row per station and prints the resulting summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		ctx := cmd.Context()
		log := logging.FromContext(ctx)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, sw, cleanup, err := newWriters(cfg, replayPrintOnly, "", replayStatusLog, log)
		if err != nil {
			return err
		}
		defer cleanup()

		s := newStore(cfg)
		n, err := journal.ReplayFile(replayInput, s.Apply, replaySpeed)
		if err != nil {
			return fmt.Errorf("replay %s after %d events: %w", replayInput, n, err)
		}
		log.Info("journal replayed", "events", n, "input", replayInput)

		rec := sim.NewRecorder(cfg.NetworkID, s, sw, time.Second)
		rec.Tick(ctx)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s.Summary())
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to journal file (JSONL)")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 0, "Playback speed multiplier (0 replays without delay)")
	replayCmd.Flags().BoolVar(&replayPrintOnly, "print-only", false, "Print status rows to STDOUT instead of writing to DB")
	replayCmd.Flags().StringVar(&replayStatusLog, "status-log", "", "Path to export the replayed status rows (JSONL)")
	replayCmd.MarkFlagRequired("input")
}
