package journal

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// Replay decodes JSONL events from r and passes them to apply in order.
// A speed >0 reproduces the recorded spacing divided by speed; speed <= 0
// replays without delay.
func Replay(r io.Reader, apply func(Event) error, speed float64) (int, error) {
	dec := json.NewDecoder(r)
	var prev time.Time
	n := 0
	for {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		if !prev.IsZero() && speed > 0 {
			diff := ev.Timestamp.Sub(prev)
			if speed != 1 {
				diff = time.Duration(float64(diff) / speed)
			}
			if diff > 0 {
				time.Sleep(diff)
			}
		}
		if err := apply(ev); err != nil {
			return n, err
		}
		n++
		prev = ev.Timestamp
	}
}

// ReplayFile opens a journal file and replays its events.
func ReplayFile(path string, apply func(Event) error, speed float64) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Replay(f, apply, speed)
}
