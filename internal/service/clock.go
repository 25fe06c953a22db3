package service

import (
	"time"

	"github.com/phrazzld/questline/internal/domain/dates"
)

// Clock supplies the current instant and ISO day. The engines never read
// wall-clock time themselves; injecting the clock here keeps every state
// transition deterministic under test.
type Clock interface {
	Now() time.Time
	Today() string
}

type realClock struct{}

// NewClock returns a Clock backed by the local wall clock.
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Today() string {
	return dates.Format(time.Now())
}
