package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"swapnet-ops/internal/journal"
)

// Default table names.
const (
	DefaultStatusTable  = "station_status"
	DefaultJournalTable = "store_journal"
)

// greptimeClient is the subset of the ingester client the writer needs.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter writes station status rows and journal events to GreptimeDB.
type GreptimeDBWriter struct {
	client       greptimeClient
	statusTable  string
	journalTable string
	timeout      time.Duration
	log          *slog.Logger
}

// NewGreptimeDBWriter connects to host:port and writes into database.
// Empty table names fall back to the defaults.
func NewGreptimeDBWriter(host string, port int, database, statusTable, journalTable string, log *slog.Logger) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(host).WithPort(port).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("greptime client: %w", err)
	}
	if statusTable == "" {
		statusTable = DefaultStatusTable
	}
	if journalTable == "" {
		journalTable = DefaultJournalTable
	}
	if log == nil {
		log = slog.Default()
	}
	return &GreptimeDBWriter{
		client:       client,
		statusTable:  statusTable,
		journalTable: journalTable,
		timeout:      5 * time.Second,
		log:          log,
	}, nil
}

// WriteStatus inserts a single status row.
func (w *GreptimeDBWriter) WriteStatus(row StatusRow) error {
	return w.WriteStatuses([]StatusRow{row})
}

// WriteStatuses inserts multiple status rows in one request.
func (w *GreptimeDBWriter) WriteStatuses(rows []StatusRow) error {
	if len(rows) == 0 {
		return nil
	}
	tbl, err := table.New(w.statusTable)
	if err != nil {
		return err
	}
	if err := addColumns(tbl,
		tag("network_id"), tag("station_id"),
		field("station_name", types.STRING),
		field("status", types.STRING),
		field("active_chargers", types.INT64),
		field("total_chargers", types.INT64),
		field("queue", types.INT64),
		field("battery_inventory", types.INT64),
		field("alerts", types.INT64),
		field("uptime", types.FLOAT64),
		field("efficiency", types.FLOAT64),
		field("throughput", types.INT64),
	); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}
	for _, r := range rows {
		if err := tbl.AddRow(
			r.NetworkID, r.StationID, r.StationName, r.Status,
			int64(r.ActiveChargers), int64(r.TotalChargers), int64(r.Queue),
			int64(r.BatteryInventory), int64(r.Alerts),
			r.Uptime, r.Efficiency, int64(r.Throughput),
			r.Timestamp,
		); err != nil {
			return err
		}
	}
	return w.write(tbl, w.statusTable, len(rows))
}

// WriteEvent inserts a single journal event.
func (w *GreptimeDBWriter) WriteEvent(ev journal.Event) error {
	return w.WriteEvents([]journal.Event{ev})
}

// WriteEvents inserts multiple journal events in one request.
func (w *GreptimeDBWriter) WriteEvents(evs []journal.Event) error {
	if len(evs) == 0 {
		return nil
	}
	tbl, err := table.New(w.journalTable)
	if err != nil {
		return err
	}
	if err := addColumns(tbl,
		tag("actor"), tag("action"),
		field("seq", types.INT64),
		field("target_id", types.STRING),
		field("matched", types.BOOLEAN),
		field("payload", types.STRING),
	); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}
	for _, ev := range evs {
		if err := tbl.AddRow(
			string(ev.Actor), ev.Action, int64(ev.Seq), ev.TargetID, ev.Matched,
			string(ev.Payload), ev.Timestamp,
		); err != nil {
			return err
		}
	}
	return w.write(tbl, w.journalTable, len(evs))
}

func (w *GreptimeDBWriter) write(tbl *table.Table, name string, n int) error {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	if _, err := w.client.Write(ctx, tbl); err != nil {
		w.log.Error("greptime write failed", "table", name, "err", err)
		return err
	}
	w.log.Debug("greptime write", "table", name, "rows", n)
	return nil
}

type column struct {
	name string
	typ  types.ColumnType
	tag  bool
}

func tag(name string) column { return column{name: name, typ: types.STRING, tag: true} }

func field(name string, typ types.ColumnType) column { return column{name: name, typ: typ} }

func addColumns(tbl *table.Table, cols ...column) error {
	for _, c := range cols {
		var err error
		if c.tag {
			err = tbl.AddTagColumn(c.name, c.typ)
		} else {
			err = tbl.AddFieldColumn(c.name, c.typ)
		}
		if err != nil {
			return fmt.Errorf("column %s: %w", c.name, err)
		}
	}
	return nil
}
