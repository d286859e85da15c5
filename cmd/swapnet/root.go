package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swapnet-ops/internal/config"
	"swapnet-ops/internal/logging"
	"swapnet-ops/internal/scenario"
	"swapnet-ops/internal/store"
)

var (
	configPath   string
	scenarioPath string
	logFormat    string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:           "swapnet",
	Short:         "Battery-swap network operations toolkit",
	Long:          "swapnet serves the admin, operator and user dashboards of a battery-swap network and replays its action journal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(logging.Options{Format: logFormat, Level: logLevel, Out: os.Stderr})
		if err != nil {
			return err
		}
		cmd.SetContext(logging.NewContext(cmd.Context(), log))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to network configuration YAML (default: built-in seed)")
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenarios", "", "Path to simulation scenario YAML (overrides scenario_file)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(dashboardCmd)
}

// loadConfig reads --config and applies environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if scenarioPath != "" {
		cfg.ScenarioFile = scenarioPath
	}
	return cfg, nil
}

// loadCatalog returns the built-in scenarios, overridden by cfg.ScenarioFile.
func loadCatalog(cfg *config.Config) (scenario.Catalog, error) {
	if cfg.ScenarioFile == "" {
		return scenario.BuiltIn(), nil
	}
	return scenario.Load(cfg.ScenarioFile)
}

func newStore(cfg *config.Config, opts ...store.Option) *store.Store {
	return store.New(cfg.Seed, opts...)
}
