package note

import (
	"encoding/json"
	"fmt"
)

// Decode parses a stored blob and fills the fields older records may lack.
func Decode(blob string) ([]Note, error) {
	var notes []Note
	if err := json.Unmarshal([]byte(blob), &notes); err != nil {
		return []Note{}, fmt.Errorf("%w: %s", ErrCorruptBlob, err)
	}

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, normalize(n))
	}
	return out, nil
}

// Encode serializes the full collection in order.
func Encode(notes []Note) (string, error) {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, normalize(n))
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to encode notes: %w", err)
	}
	return string(data), nil
}

func normalize(n Note) Note {
	if n.Images == nil {
		n.Images = []string{}
	}
	if n.BackgroundImage != nil && *n.BackgroundImage == "" {
		n.BackgroundImage = nil
	}
	return n
}
