package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"swapnet-ops/internal/scenario"
	"swapnet-ops/internal/sim"
)

var (
	simKind  string
	simDelay time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one network simulation and print the result",
	Long:  "simulate runs a counterfactual or failure-injection scenario against the configured network and prints the completed simulation state as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		delay := cfg.SimDelay
		if cmd.Flags().Changed("delay") {
			delay = simDelay
		}

		s := newStore(cfg)
		runner := sim.NewRunner(s, catalog, delay)
		runner.SetAfterFunc(waitThen(ctx))
		if err := runner.Run(ctx, simKind); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s.Simulation())
	},
}

// waitThen runs the completion inline after the delay so Run returns with
// the simulation completed. A cancelled ctx skips the completion.
func waitThen(ctx context.Context) func(time.Duration, func()) {
	return func(d time.Duration, f func()) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			f()
		case <-ctx.Done():
		}
	}
}

func init() {
	simulateCmd.Flags().StringVar(&simKind, "kind", scenario.KindCounterfactual, "Simulation kind: counterfactual or failure_injection")
	simulateCmd.Flags().DurationVar(&simDelay, "delay", sim.DefaultDelay, "Running time before the simulation completes")
}
