package session

import (
	"time"

	"github.com/oklog/ulid"
)

// Session captures the parameters that describe one run of a
// console front end.
type Session interface {
	// SessionID is the unique ID that represents this session.
	// It is attached to every log event of the run.
	SessionID() ulid.ULID
	// Structure names the data structure the session manipulates.
	Structure() string
	// Started returns the time the session was created.
	Started() time.Time
}
