package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"swapnet-ops/internal/journal"
)

// JSONStdoutWriter prints journal events and status rows as JSON lines.
type JSONStdoutWriter struct {
	out io.Writer
}

// NewJSONStdoutWriter creates a JSONStdoutWriter writing to os.Stdout.
func NewJSONStdoutWriter() *JSONStdoutWriter {
	return &JSONStdoutWriter{out: os.Stdout}
}

func (w *JSONStdoutWriter) print(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}

// WriteEvent outputs a journal event.
func (w *JSONStdoutWriter) WriteEvent(ev journal.Event) error {
	return w.print(ev)
}

// WriteEvents outputs multiple journal events.
func (w *JSONStdoutWriter) WriteEvents(evs []journal.Event) error {
	for _, ev := range evs {
		if err := w.print(ev); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatus outputs a status row.
func (w *JSONStdoutWriter) WriteStatus(row StatusRow) error {
	return w.print(row)
}

// WriteStatuses outputs multiple status rows.
func (w *JSONStdoutWriter) WriteStatuses(rows []StatusRow) error {
	for _, r := range rows {
		if err := w.print(r); err != nil {
			return err
		}
	}
	return nil
}
