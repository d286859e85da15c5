package sim

import (
	"encoding/json"
	"os"
	"sync"

	"swapnet-ops/internal/journal"
)

// FileWriter appends journal events and status rows to JSONL files.
type FileWriter struct {
	mu         sync.Mutex
	eventFile  *os.File
	statusFile *os.File
	eventEnc   *json.Encoder
	statusEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. Either path may be empty to skip that log.
func NewFileWriter(journalPath, statusPath string) (*FileWriter, error) {
	fw := &FileWriter{}
	if journalPath != "" {
		f, err := os.Create(journalPath)
		if err != nil {
			return nil, err
		}
		fw.eventFile = f
		fw.eventEnc = json.NewEncoder(f)
	}
	if statusPath != "" {
		f, err := os.Create(statusPath)
		if err != nil {
			fw.Close()
			return nil, err
		}
		fw.statusFile = f
		fw.statusEnc = json.NewEncoder(f)
	}
	return fw, nil
}

// WriteEvent logs a journal event, if enabled.
func (f *FileWriter) WriteEvent(ev journal.Event) error {
	if f.eventEnc == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.eventEnc.Encode(ev)
}

// WriteStatus logs a status row, if enabled.
func (f *FileWriter) WriteStatus(row StatusRow) error {
	if f.statusEnc == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusEnc.Encode(row)
}

// WriteStatuses logs multiple status rows.
func (f *FileWriter) WriteStatuses(rows []StatusRow) error {
	for _, r := range rows {
		if err := f.WriteStatus(r); err != nil {
			return err
		}
	}
	return nil
}

// Close closes any underlying files.
func (f *FileWriter) Close() error {
	var err error
	for _, file := range []*os.File{f.eventFile, f.statusFile} {
		if file == nil {
			continue
		}
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
