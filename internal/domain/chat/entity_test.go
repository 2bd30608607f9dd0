package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairKey_Unordered(t *testing.T) {
	assert.Equal(t, PairKey("S-001", "T-001"), PairKey("T-001", "S-001"))
	assert.NotEqual(t, PairKey("S-001", "T-001"), PairKey("S-001", "T-002"))
}

func TestNewSession_Validation(t *testing.T) {
	_, err := NewSession("", "a", "b")
	assert.Error(t, err)

	_, err = NewSession("id", "a", "a")
	assert.Error(t, err)

	s, err := NewSession("id", "a", "b")
	require.NoError(t, err)
	assert.True(t, s.HasParticipant("a"))
	assert.True(t, s.HasParticipant("b"))
	assert.False(t, s.HasParticipant("c"))
}

func TestSession_AppendEnforcesParticipant(t *testing.T) {
	s, err := NewSession("id", "S-001", "T-001")
	require.NoError(t, err)

	err = s.Append(Message{ID: "m1", SenderID: "intruder", Text: "hi", Timestamp: time.Now()})
	assert.ErrorIs(t, err, ErrSenderNotParticipant)
	assert.Empty(t, s.Messages)

	now := time.Now().UTC()
	err = s.Append(Message{ID: "m2", SenderID: "S-001", Text: "hello", Timestamp: now})
	require.NoError(t, err)
	require.Len(t, s.Messages, 1)
	assert.Equal(t, "hello", s.LastMessagePreview)
	assert.Equal(t, now, s.UpdatedAt)
}

func TestSession_AppendOrderIsInsertionOrder(t *testing.T) {
	s, err := NewSession("id", "a", "b")
	require.NoError(t, err)

	// Timestamps deliberately out of order: append sequence wins.
	later := time.Now().UTC()
	earlier := later.Add(-time.Hour)
	require.NoError(t, s.Append(Message{ID: "m1", SenderID: "a", Text: "first", Timestamp: later}))
	require.NoError(t, s.Append(Message{ID: "m2", SenderID: "b", Text: "second", Timestamp: earlier}))

	assert.Equal(t, "m1", s.Messages[0].ID)
	assert.Equal(t, "m2", s.Messages[1].ID)
	assert.Equal(t, "second", s.LastMessagePreview)
}

func TestSession_OtherParticipant(t *testing.T) {
	s, err := NewSession("id", "a", "b")
	require.NoError(t, err)

	other, ok := s.OtherParticipant("a")
	assert.True(t, ok)
	assert.Equal(t, "b", other)

	_, ok = s.OtherParticipant("c")
	assert.False(t, ok)
}

func TestVisibleTo(t *testing.T) {
	s1, _ := NewSession("s1", "S-001", "T-001")
	s2, _ := NewSession("s2", "S-002", "T-001")
	s3, _ := NewSession("s3", "S-002", "T-003")
	sessions := []*Session{s1, s2, s3}

	// Admin monitoring mode sees everything.
	assert.Len(t, VisibleTo(sessions, "whoever", true), 3)

	visible := VisibleTo(sessions, "T-001", false)
	require.Len(t, visible, 2)
	assert.Equal(t, "s1", visible[0].ID)
	assert.Equal(t, "s2", visible[1].ID)

	assert.Empty(t, VisibleTo(sessions, "S-404", false))
}
