package main

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"swapnet-ops/internal/config"
	"swapnet-ops/internal/journal"
	"swapnet-ops/internal/sim"
)

// defaultGreptimePort is the GreptimeDB gRPC port.
const defaultGreptimePort = 4001

// newWriters sets up the journal and status sinks based on flags and config.
// It returns the writers and a cleanup function to close any resources.
func newWriters(cfg *config.Config, printOnly bool, journalPath, statusPath string, log *slog.Logger) (journal.Writer, sim.StatusWriter, func(), error) {
	cleanup := func() {}

	jw, sw, err := baseWriters(cfg, printOnly, log)
	if err != nil {
		return nil, nil, nil, err
	}
	if journalPath == "" && statusPath == "" {
		return jw, sw, cleanup, nil
	}

	fw, err := sim.NewFileWriter(journalPath, statusPath)
	if err != nil {
		return nil, nil, nil, err
	}
	jws := []journal.Writer{jw}
	if journalPath != "" {
		jws = append(jws, fw)
	}
	sws := []sim.StatusWriter{sw}
	if statusPath != "" {
		sws = append(sws, fw)
	}
	mw := sim.NewMultiWriter(jws, sws)
	cleanup = func() { fw.Close() }
	return mw, mw, cleanup, nil
}

// baseWriters chooses GreptimeDB when an endpoint is configured and STDOUT otherwise.
func baseWriters(cfg *config.Config, printOnly bool, log *slog.Logger) (journal.Writer, sim.StatusWriter, error) {
	if printOnly || cfg.Greptime.Endpoint == "" {
		w := sim.NewJSONStdoutWriter()
		return w, w, nil
	}
	host, port, err := splitEndpoint(cfg.Greptime.Endpoint)
	if err != nil {
		return nil, nil, err
	}
	w, err := sim.NewGreptimeDBWriter(host, port, cfg.Greptime.Database, cfg.Greptime.StatusTable, cfg.Greptime.JournalTable, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info("writing to GreptimeDB", "host", host, "port", port, "database", cfg.Greptime.Database)
	return w, w, nil
}

// splitEndpoint parses host[:port].
func splitEndpoint(endpoint string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		// no port given
		if _, _, err2 := net.SplitHostPort(endpoint + ":0"); err2 == nil {
			return endpoint, defaultGreptimePort, nil
		}
		return "", 0, fmt.Errorf("invalid GreptimeDB endpoint %q: %w", endpoint, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid GreptimeDB port %q", portStr)
	}
	return host, port, nil
}
