package sim

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"swapnet-ops/internal/journal"
)

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()
	ts := time.Unix(0, 0).UTC()
	ev := journal.Event{Seq: 1, Action: journal.ActionRemoveStation, Actor: journal.ActorAdmin, TargetID: "ST-001", Matched: true, Timestamp: ts}
	row := StatusRow{NetworkID: "net", StationID: "ST-001", Status: "online", ActiveChargers: 3, Uptime: 97.5, Timestamp: ts}

	journalPath := filepath.Join(dir, "journal.jsonl")
	statusPath := filepath.Join(dir, "status.jsonl")
	fw, err := NewFileWriter(journalPath, statusPath)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	if err := fw.WriteEvent(ev); err != nil {
		t.Fatalf("write event: %v", err)
	}
	if err := fw.WriteStatuses([]StatusRow{row, row}); err != nil {
		t.Fatalf("write statuses: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := readLines(t, journalPath)
	if len(lines) != 1 {
		t.Fatalf("expected 1 journal line, got %d", len(lines))
	}
	var gotEv journal.Event
	if err := json.Unmarshal([]byte(lines[0]), &gotEv); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if gotEv.Action != ev.Action || gotEv.TargetID != "ST-001" || !gotEv.Matched {
		t.Fatalf("unexpected event: %#v", gotEv)
	}

	lines = readLines(t, statusPath)
	if len(lines) != 2 {
		t.Fatalf("expected 2 status lines, got %d", len(lines))
	}
	var gotRow StatusRow
	if err := json.Unmarshal([]byte(lines[1]), &gotRow); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if gotRow.StationID != row.StationID || gotRow.Uptime != row.Uptime || gotRow.ActiveChargers != 3 {
		t.Fatalf("unexpected status: %#v", gotRow)
	}
}

func TestFileWriterSkipsDisabledLogs(t *testing.T) {
	statusPath := filepath.Join(t.TempDir(), "status.jsonl")
	fw, err := NewFileWriter("", statusPath)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	defer fw.Close()
	if err := fw.WriteEvent(journal.Event{Action: journal.ActionReset}); err != nil {
		t.Fatalf("disabled journal should not error: %v", err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}
