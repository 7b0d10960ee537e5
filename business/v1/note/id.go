package note

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// newRandom is swapped in tests to exercise the fallback.
var newRandom = uuid.NewRandom

// NewID returns a random uuid, or the current unix time in milliseconds
// when the random source fails.
func NewID() string {
	id, err := newRandom()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return id.String()
}

// New returns an empty note with a fresh id. It is not stored.
func New() Note {
	return Note{
		Id:     NewID(),
		Images: []string{},
	}
}
