// Package dashboard renders Grafana dashboards for the GreptimeDB sink tables.
package dashboard

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"swapnet-ops/internal/sim"
)

//go:embed templates/*.json.tmpl
var templates embed.FS

// DatasourceEnv names the variable holding the Grafana datasource uid.
const DatasourceEnv = "GREPTIMEDB_DATASOURCE_UID"

// Options fills the dashboard templates.
type Options struct {
	NetworkID    string
	StatusTable  string
	JournalTable string
}

func (o Options) withDefaults() Options {
	if o.StatusTable == "" {
		o.StatusTable = sim.DefaultStatusTable
	}
	if o.JournalTable == "" {
		o.JournalTable = sim.DefaultJournalTable
	}
	return o
}

// Render writes every embedded dashboard to outDir and returns the written paths.
func Render(outDir string, opts Options) ([]string, error) {
	funcMap := template.FuncMap{
		"env": func(key string) (string, error) {
			v := os.Getenv(key)
			if v == "" {
				return "", fmt.Errorf("environment variable %s not set", key)
			}
			return v, nil
		},
	}

	t, err := template.New("dashboards").Funcs(funcMap).ParseFS(templates, "templates/*.json.tmpl")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	var written []string
	for _, tpl := range t.Templates() {
		if !strings.HasSuffix(tpl.Name(), ".tmpl") {
			continue
		}
		outPath := filepath.Join(outDir, strings.TrimSuffix(tpl.Name(), ".tmpl"))
		f, err := os.Create(outPath)
		if err != nil {
			return written, err
		}
		if err := tpl.Execute(f, opts); err != nil {
			f.Close()
			return written, fmt.Errorf("render %s: %w", tpl.Name(), err)
		}
		if err := f.Close(); err != nil {
			return written, err
		}
		written = append(written, outPath)
	}
	return written, nil
}
