package sim

import "swapnet-ops/internal/journal"

// MultiWriter fans out journal events and status rows to multiple writers.
type MultiWriter struct {
	eventWriters  []journal.Writer
	statusWriters []StatusWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ews []journal.Writer, sws []StatusWriter) *MultiWriter {
	return &MultiWriter{eventWriters: ews, statusWriters: sws}
}

// WriteEvent sends a journal event to all event writers.
func (mw *MultiWriter) WriteEvent(ev journal.Event) error {
	for _, w := range mw.eventWriters {
		if err := w.WriteEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatus sends a status row to all status writers.
func (mw *MultiWriter) WriteStatus(row StatusRow) error {
	for _, w := range mw.statusWriters {
		if err := w.WriteStatus(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatuses sends multiple status rows to all status writers, using batch if supported.
func (mw *MultiWriter) WriteStatuses(rows []StatusRow) error {
	for _, w := range mw.statusWriters {
		if bw, ok := w.(batchStatusWriter); ok {
			if err := bw.WriteStatuses(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.WriteStatus(r); err != nil {
				return err
			}
		}
	}
	return nil
}
