package schedule

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
)

//go:embed seed.json
var seedJSON []byte

// Seed returns the built-in sample schedule.
func Seed() *Index {
	index, err := Decode(bytes.NewReader(seedJSON))
	if err != nil {
		panic(fmt.Sprintf("schedule: embedded seed: %v", err))
	}
	return index
}

// Decode reads a schedule document: an object keyed by YYYY-MM-DD whose
// values are ordered task lists.
func Decode(r io.Reader) (*Index, error) {
	var raw map[string][]TaskRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	entries := make(map[Day][]TaskRecord, len(raw))
	for key, tasks := range raw {
		day, err := ParseDay(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSchedule, err)
		}
		for i := range tasks {
			if tasks[i].Status == "" {
				tasks[i].Status = StatusUnknown
			}
		}
		entries[day] = tasks
	}
	return NewIndex(entries), nil
}
