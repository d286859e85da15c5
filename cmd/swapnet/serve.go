package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/api"
	"swapnet-ops/internal/logging"
	"swapnet-ops/internal/metrics"
	"swapnet-ops/internal/sim"
	"swapnet-ops/internal/store"
)

var (
	servePrintOnly  bool
	serveListen     string
	serveJournal    string
	serveStatusLog  string
	serveNoRecorder bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the role dashboards over HTTP",
	Long:  "serve exposes the admin, operator and user APIs, records station status on an interval and journals every store action.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log := logging.FromContext(ctx)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveListen != "" {
			cfg.Listen = serveListen
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		jw, sw, cleanup, err := newWriters(cfg, servePrintOnly, serveJournal, serveStatusLog, log)
		if err != nil {
			return err
		}
		defer cleanup()

		s := newStore(cfg, store.WithJournal(jw), store.WithLogger(log))
		runner := sim.NewRunner(s, catalog, cfg.SimDelay)

		m := metrics.New()
		m.RegisterNetwork(s)

		gin.SetMode(gin.ReleaseMode)
		srv := api.NewServer(
			access.ForAdmin(s, runner),
			access.ForOperator(s),
			access.ForUser(s, cfg.Locations),
			m, log,
		)
		httpSrv := &http.Server{
			Addr:              cfg.Listen,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		if !serveNoRecorder {
			rec := sim.NewRecorder(cfg.NetworkID, s, sw, cfg.StatusInterval)
			go rec.Run(ctx)
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("HTTP API listening", "addr", cfg.Listen, "network_id", cfg.NetworkID)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info("swap network stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&servePrintOnly, "print-only", false, "Print journal and status rows to STDOUT instead of writing to DB")
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "HTTP listen address (overrides config and LISTEN_ADDR)")
	serveCmd.Flags().StringVar(&serveJournal, "journal", "", "Path to export the action journal (JSONL)")
	serveCmd.Flags().StringVar(&serveStatusLog, "status-log", "", "Path to export station status rows (JSONL)")
	serveCmd.Flags().BoolVar(&serveNoRecorder, "no-recorder", false, "Disable periodic station status recording")
}
