package photosort

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the timestamps written to the run journal.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator produces run IDs.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
