package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

func TestSession_AnswerAndNavigate(t *testing.T) {
	bank := DefaultBank()
	s := NewSession(7, bank, 0, t0)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, DefaultTimeLimit, s.TimeLimit)
	assert.Equal(t, "q1", s.CurrentQuestionID())

	require.NoError(t, s.Answer(bank, "q1", "b", t0))
	done, err := s.Next(t0)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, "q2", s.CurrentQuestionID())

	prev, err := s.Prev(t0)
	require.NoError(t, err)
	assert.Equal(t, "b", prev)
	assert.Equal(t, "q1", s.CurrentQuestionID())

	assert.ErrorIs(t, s.Answer(bank, "q9", "a", t0), ErrUnknownQuestion)
	assert.ErrorIs(t, s.Answer(bank, "q1", "z", t0), ErrUnknownOption)
}

func TestSession_NextOnLastQuestion(t *testing.T) {
	bank := DefaultBank()
	s := NewSession(1, bank, time.Minute, t0)
	s.CurrentIndex = len(s.QuestionIDs) - 1

	done, err := s.Next(t0)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestSession_PauseStopsClock(t *testing.T) {
	bank := DefaultBank()
	s := NewSession(1, bank, 10*time.Minute, t0)

	require.NoError(t, s.Pause(t0.Add(4*time.Minute)))
	assert.Equal(t, SessionPaused, s.Status)
	assert.Equal(t, 6*time.Minute, s.TimeLeft(t0.Add(time.Hour)))

	assert.ErrorIs(t, s.Answer(bank, "q1", "a", t0.Add(5*time.Minute)), ErrSessionPaused)
	assert.ErrorIs(t, s.Pause(t0.Add(5*time.Minute)), ErrSessionPaused)

	resumeAt := t0.Add(time.Hour)
	require.NoError(t, s.Resume(resumeAt))
	assert.Equal(t, SessionInProgress, s.Status)
	assert.Equal(t, 5*time.Minute, s.TimeLeft(resumeAt.Add(time.Minute)))
	assert.ErrorIs(t, s.Resume(resumeAt), ErrSessionNotPaused)
}

func TestSession_Expiry(t *testing.T) {
	bank := DefaultBank()
	s := NewSession(1, bank, time.Minute, t0)

	assert.False(t, s.Expired(t0.Add(59*time.Second)))
	assert.True(t, s.Expired(t0.Add(time.Minute)))
	assert.Equal(t, time.Duration(0), s.TimeLeft(t0.Add(time.Hour)))
	assert.ErrorIs(t, s.Answer(bank, "q1", "b", t0.Add(2*time.Minute)), ErrSessionExpired)
}

func TestSession_Submit(t *testing.T) {
	bank := DefaultBank()
	s := NewSession(1, bank, time.Minute, t0)

	require.NoError(t, s.Submit(t0.Add(2*time.Minute), true))
	assert.Equal(t, SessionSubmitted, s.Status)
	assert.True(t, s.AutoSubmitted)
	require.NotNil(t, s.SubmittedAt)
	assert.False(t, s.Expired(t0.Add(time.Hour)))

	assert.ErrorIs(t, s.Submit(t0, false), ErrSessionSubmitted)
	assert.ErrorIs(t, s.Resume(t0), ErrSessionSubmitted)
	assert.ErrorIs(t, s.Answer(bank, "q1", "b", t0), ErrSessionSubmitted)
}
