package segment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSON representation of a segment set
type record struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Editable  bool    `json:"editable"`
	Color     string  `json:"color,omitempty"`
	LabelText string  `json:"labelText,omitempty"`
}

// Load reads a segment set from a JSON file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read segments file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse segments file: %w", err)
	}

	store := NewStore()
	for i, r := range records {
		seg, err := New(Options{
			ID:        r.ID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Editable:  r.Editable,
			Color:     r.Color,
			LabelText: r.LabelText,
		})
		if err != nil {
			return nil, fmt.Errorf("invalid segment at index %d: %w", i, err)
		}
		if err := store.Add(seg); err != nil {
			return nil, fmt.Errorf("invalid segment at index %d: %w", i, err)
		}
	}

	return store, nil
}

// Save writes the segment set to a JSON file, ordered by start time.
func (st *Store) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	segments := st.All()
	records := make([]record, 0, len(segments))
	for _, s := range segments {
		records = append(records, record{
			ID:        s.ID(),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
			Editable:  s.Editable(),
			Color:     s.Color(),
			LabelText: s.LabelText(),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode segments: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
