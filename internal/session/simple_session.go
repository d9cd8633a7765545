package session

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

var _ Session = (*SimpleSession)(nil)

// SimpleSession implements a session.
type SimpleSession struct {
	sessionID ulid.ULID
	structure string
	started   time.Time
}

// SessionID returns the sessionID of the SimpleSession.
func (s *SimpleSession) SessionID() ulid.ULID {
	return s.sessionID
}

// Structure returns the name of the structure of the SimpleSession.
func (s *SimpleSession) Structure() string {
	return s.structure
}

// Started returns the creation time of the SimpleSession.
func (s *SimpleSession) Started() time.Time {
	return s.started
}

// Logger returns log with the session fields attached.
func (s *SimpleSession) Logger(log zerolog.Logger) zerolog.Logger {
	return log.With().
		Str("session", s.sessionID.String()).
		Str("structure", s.structure).
		Logger()
}

// NewSession returns a new session for the named structure, stamped
// with the current time.
func NewSession(structure string) *SimpleSession {
	return newSessionAt(structure, time.Now())
}

func newSessionAt(structure string, now time.Time) *SimpleSession {
	return &SimpleSession{
		sessionID: ulid.MustNew(ulid.Timestamp(now), rand.Reader),
		structure: structure,
		started:   now,
	}
}
