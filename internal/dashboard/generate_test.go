package dashboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderMissingEnv(t *testing.T) {
	t.Setenv(DatasourceEnv, "")
	if _, err := Render(t.TempDir(), Options{}); err == nil {
		t.Fatalf("expected error for missing env vars")
	}
}

func TestRenderSuccess(t *testing.T) {
	t.Setenv(DatasourceEnv, "uid1")

	dir := t.TempDir()
	paths, err := Render(dir, Options{NetworkID: "metro-swap", StatusTable: "status_v2"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(paths) != 1 || paths[0] != filepath.Join(dir, "swapnet-status.json") {
		t.Fatalf("unexpected output paths %v", paths)
	}

	b, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("read dashboard: %v", err)
	}
	if !json.Valid(b) {
		t.Fatalf("rendered dashboard is not valid JSON")
	}
	s := string(b)
	if !strings.Contains(s, "uid1") {
		t.Fatalf("datasource uid not rendered")
	}
	if !strings.Contains(s, "FROM status_v2") || !strings.Contains(s, "FROM store_journal") {
		t.Fatalf("table names not rendered")
	}
	if !strings.Contains(s, "(metro-swap)") {
		t.Fatalf("network id not in title")
	}
}
