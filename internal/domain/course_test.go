package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseSessionIsFull(t *testing.T) {
	tests := []struct {
		name   string
		booked int
		max    int
		full   bool
	}{
		{"empty session", 0, 10, false},
		{"one seat left", 9, 10, false},
		{"exactly at capacity", 10, 10, true},
		{"over capacity", 11, 10, true},
		{"single seat taken", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CourseSession{BookedCount: tt.booked, MaxParticipants: tt.max}
			assert.Equal(t, tt.full, s.IsFull())
			assert.Equal(t, tt.max-tt.booked, s.Remaining())
		})
	}
}

func TestCourseCanDelete(t *testing.T) {
	empty := CourseWithSessions{Course: Course{ID: 1, Title: "Yoga"}}
	assert.True(t, empty.CanDelete())

	withSessions := CourseWithSessions{
		Course:   Course{ID: 2, Title: "Pilates"},
		Sessions: []CourseSession{{ID: 5, CourseID: 2}},
	}
	assert.False(t, withSessions.CanDelete())
}

func TestCanDeleteSession(t *testing.T) {
	assert.True(t, CanDeleteSession(0))
	assert.False(t, CanDeleteSession(1))
	assert.False(t, CanDeleteSession(12))
}

func TestNextUpcoming(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty slice", func(t *testing.T) {
		assert.Nil(t, NextUpcoming(nil, now))
	})

	t.Run("all in the past", func(t *testing.T) {
		sessions := []CourseSession{
			{ID: 1, StartTime: now.Add(-48 * time.Hour)},
			{ID: 2, StartTime: now.Add(-time.Minute)},
		}
		assert.Nil(t, NextUpcoming(sessions, now))
	})

	t.Run("earliest future session wins", func(t *testing.T) {
		sessions := []CourseSession{
			{ID: 1, StartTime: now.Add(-time.Hour)},
			{ID: 2, StartTime: now.Add(72 * time.Hour)},
			{ID: 3, StartTime: now.Add(24 * time.Hour)},
		}
		next := NextUpcoming(sessions, now)
		require.NotNil(t, next)
		assert.Equal(t, 3, next.ID)
	})

	t.Run("session starting exactly now counts", func(t *testing.T) {
		sessions := []CourseSession{{ID: 7, StartTime: now}}
		next := NextUpcoming(sessions, now)
		require.NotNil(t, next)
		assert.Equal(t, 7, next.ID)
	})

	t.Run("tie keeps slice order", func(t *testing.T) {
		start := now.Add(time.Hour)
		sessions := []CourseSession{
			{ID: 4, StartTime: start},
			{ID: 9, StartTime: start},
		}
		next := NextUpcoming(sessions, now)
		require.NotNil(t, next)
		assert.Equal(t, 4, next.ID)
	})
}

func TestCombineDateTime(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	t.Run("valid date and time", func(t *testing.T) {
		got, err := CombineDateTime("2025-03-10", "14:30", berlin)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, berlin), got)
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := CombineDateTime("", "14:30", berlin)
		assert.ErrorIs(t, err, ErrMissingDate)
	})

	t.Run("missing time", func(t *testing.T) {
		_, err := CombineDateTime("2025-03-10", "", berlin)
		assert.ErrorIs(t, err, ErrMissingTime)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := CombineDateTime("not-a-date", "14:30", berlin)
		assert.Error(t, err)
	})
}

func TestActorCanEdit(t *testing.T) {
	assert.True(t, Actor{UserID: 1, Role: RoleAdmin}.CanEdit())
	assert.False(t, Actor{UserID: 2, Role: RoleClient}.CanEdit())
	assert.False(t, Actor{}.CanEdit())
}
