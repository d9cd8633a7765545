package session

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newSessionAt("bst", now)

	assert.Equal(t, "bst", s.Structure())
	assert.Equal(t, now, s.Started())
	assert.Equal(t, ulid.Timestamp(now), s.SessionID().Time())

	other := newSessionAt("bst", now)
	assert.NotEqual(t, s.SessionID(), other.SessionID())
}

func TestSessionLogger(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession("linkedlist")

	log := s.Logger(zerolog.New(&buf))
	log.Info().Msg("hello")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, s.SessionID().String(), event["session"])
	assert.Equal(t, "linkedlist", event["structure"])
	assert.Equal(t, "hello", event["message"])
}
