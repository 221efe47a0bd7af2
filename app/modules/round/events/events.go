// Package roundevents defines the topics and payloads published by the
// round module. Payload structs are versioned so consumers can evolve
// independently of the producer.
package roundevents

import (
	"time"

	"github.com/fore-golf/fore-api/internal/types"
)

const (
	// RoundPersistedV1 is published after a round document has been
	// written. Aggregate updaters (user history/handicap, course
	// history) subscribe to it.
	RoundPersistedV1 = "rounds.persisted.v1"
)

// RoundPersistedPayloadV1 carries everything the aggregate updaters need
// without re-reading the round document.
type RoundPersistedPayloadV1 struct {
	RoundID    types.RoundID  `json:"round_id"`
	UserID     types.UserID   `json:"user_id"`
	CourseID   types.CourseID `json:"course_id"`
	DatePosted time.Time      `json:"date_posted"`
}
