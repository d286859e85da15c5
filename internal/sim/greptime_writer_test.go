package sim

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"

	"swapnet-ops/internal/journal"
)

type mockGreptimeClient struct {
	table *table.Table
	calls int
}

func (m *mockGreptimeClient) Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	m.calls++
	if len(tables) > 0 {
		m.table = tables[0]
	}
	return &gpb.GreptimeResponse{}, nil
}

func newTestGreptimeWriter(m *mockGreptimeClient) *GreptimeDBWriter {
	return &GreptimeDBWriter{
		client:       m,
		statusTable:  DefaultStatusTable,
		journalTable: DefaultJournalTable,
		timeout:      time.Second,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGreptimeWriterStatuses(t *testing.T) {
	ts := time.Unix(0, 0).UTC()
	rows := []StatusRow{
		{NetworkID: "net", StationID: "ST-001", StationName: "Downtown", Status: "online", ActiveChargers: 4, TotalChargers: 6, Uptime: 98.2, Timestamp: ts},
		{NetworkID: "net", StationID: "ST-002", StationName: "Airport", Status: "degraded", ActiveChargers: 2, TotalChargers: 8, Uptime: 96.1, Timestamp: ts},
	}

	m := &mockGreptimeClient{}
	w := newTestGreptimeWriter(m)
	if err := w.WriteStatuses(rows); err != nil {
		t.Fatalf("WriteStatuses: %v", err)
	}
	if m.calls != 1 || m.table == nil {
		t.Fatalf("expected one batched write, got %d", m.calls)
	}

	got := m.table.GetRows()
	if len(got.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(got.Rows))
	}
	schema := got.Schema
	if schema[0].ColumnName != "network_id" || schema[0].SemanticType != gpb.SemanticType_TAG {
		t.Fatalf("unexpected first column %+v", schema[0])
	}
	last := schema[len(schema)-1]
	if last.ColumnName != "ts" || last.SemanticType != gpb.SemanticType_TIMESTAMP {
		t.Fatalf("unexpected time index %+v", last)
	}
	if v := got.Rows[1].Values[1].GetStringValue(); v != "ST-002" {
		t.Fatalf("station_id = %s, want ST-002", v)
	}
	if v := got.Rows[0].Values[4].GetI64Value(); v != 4 {
		t.Fatalf("active_chargers = %d, want 4", v)
	}
}

func TestGreptimeWriterEvents(t *testing.T) {
	payload, _ := json.Marshal(map[string]string{"status": "completed"})
	ev := journal.Event{
		Seq:       7,
		Action:    journal.ActionUpdateMaintenanceStatus,
		Actor:     journal.ActorOperator,
		TargetID:  "MA-001",
		Matched:   true,
		Payload:   payload,
		Timestamp: time.Unix(0, 0).UTC(),
	}

	m := &mockGreptimeClient{}
	w := newTestGreptimeWriter(m)
	if err := w.WriteEvent(ev); err != nil {
		t.Fatalf("WriteEvent: %v", err)
	}
	row := m.table.GetRows().Rows[0]
	if got := row.Values[0].GetStringValue(); got != "operator" {
		t.Fatalf("actor = %s, want operator", got)
	}
	if got := row.Values[2].GetI64Value(); got != 7 {
		t.Fatalf("seq = %d, want 7", got)
	}
	if got := row.Values[5].GetStringValue(); got != string(payload) {
		t.Fatalf("payload = %s, want %s", got, payload)
	}
}

func TestGreptimeWriterEmptyBatch(t *testing.T) {
	m := &mockGreptimeClient{}
	w := newTestGreptimeWriter(m)
	if err := w.WriteStatuses(nil); err != nil {
		t.Fatalf("WriteStatuses: %v", err)
	}
	if m.calls != 0 {
		t.Fatalf("empty batch should not hit the client")
	}
}
