package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionPaused     SessionStatus = "paused"
	SessionSubmitted  SessionStatus = "submitted"
)

const DefaultTimeLimit = 20 * time.Minute

var (
	ErrSessionPaused    = errors.New("session is paused")
	ErrSessionNotPaused = errors.New("session is not paused")
	ErrSessionSubmitted = errors.New("session already submitted")
	ErrSessionExpired   = errors.New("session time has expired")
	ErrUnknownQuestion  = errors.New("question is not part of this session")
	ErrUnknownOption    = errors.New("option is not valid for this question")
)

// Session is an assessment in progress. It is a plain value so it can be
// serialized into a session store; every clock-dependent method takes now.
type Session struct {
	ID            string            `json:"id"`
	ChildID       uint              `json:"child_id"`
	QuestionIDs   []string          `json:"question_ids"`
	CurrentIndex  int               `json:"current_index"`
	Answers       map[string]string `json:"answers"`
	Status        SessionStatus     `json:"status"`
	StartedAt     time.Time         `json:"started_at"`
	TimeLimit     time.Duration     `json:"time_limit"`
	Remaining     time.Duration     `json:"remaining"`
	RunningSince  *time.Time        `json:"running_since,omitempty"`
	SubmittedAt   *time.Time        `json:"submitted_at,omitempty"`
	AutoSubmitted bool              `json:"auto_submitted"`
	ResultID      *uint             `json:"result_id,omitempty"`
}

// NewSession starts the clock on a fresh session over the bank's questions.
func NewSession(childID uint, bank *Bank, timeLimit time.Duration, now time.Time) *Session {
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	started := now
	return &Session{
		ID:           uuid.NewString(),
		ChildID:      childID,
		QuestionIDs:  bank.IDs(),
		Answers:      make(map[string]string),
		Status:       SessionInProgress,
		StartedAt:    now,
		TimeLimit:    timeLimit,
		Remaining:    timeLimit,
		RunningSince: &started,
	}
}

// TimeLeft is the remaining time at now, never negative.
func (s *Session) TimeLeft(now time.Time) time.Duration {
	left := s.Remaining
	if s.RunningSince != nil {
		left -= now.Sub(*s.RunningSince)
	}
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether an unsubmitted session has run out of time.
func (s *Session) Expired(now time.Time) bool {
	return s.Status != SessionSubmitted && s.TimeLeft(now) <= 0
}

func (s *Session) CurrentQuestionID() string {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.QuestionIDs) {
		return ""
	}
	return s.QuestionIDs[s.CurrentIndex]
}

func (s *Session) AtLast() bool {
	return s.CurrentIndex >= len(s.QuestionIDs)-1
}

// Answer records optionID for questionID, replacing any earlier answer.
func (s *Session) Answer(bank *Bank, questionID, optionID string, now time.Time) error {
	if err := s.checkActive(now); err != nil {
		return err
	}
	if !s.contains(questionID) {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	q, ok := bank.Get(questionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if !q.HasOption(optionID) {
		return fmt.Errorf("%w: %s", ErrUnknownOption, optionID)
	}
	s.Answers[questionID] = optionID
	return nil
}

// Next moves to the following question. It returns true when the session
// was already on the last question, meaning the caller should finish it.
func (s *Session) Next(now time.Time) (bool, error) {
	if err := s.checkActive(now); err != nil {
		return false, err
	}
	if s.AtLast() {
		return true, nil
	}
	s.CurrentIndex++
	return false, nil
}

// Prev moves back one question and returns the answer recorded for it.
func (s *Session) Prev(now time.Time) (string, error) {
	if err := s.checkActive(now); err != nil {
		return "", err
	}
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
	return s.Answers[s.CurrentQuestionID()], nil
}

// Pause stops the clock.
func (s *Session) Pause(now time.Time) error {
	if err := s.checkActive(now); err != nil {
		return err
	}
	s.Remaining = s.TimeLeft(now)
	s.RunningSince = nil
	s.Status = SessionPaused
	return nil
}

// Resume restarts the clock of a paused session.
func (s *Session) Resume(now time.Time) error {
	switch s.Status {
	case SessionSubmitted:
		return ErrSessionSubmitted
	case SessionInProgress:
		return ErrSessionNotPaused
	}
	resumed := now
	s.RunningSince = &resumed
	s.Status = SessionInProgress
	return nil
}

// Submit closes the session. auto marks a time-limit submission.
func (s *Session) Submit(now time.Time, auto bool) error {
	if s.Status == SessionSubmitted {
		return ErrSessionSubmitted
	}
	s.Remaining = s.TimeLeft(now)
	s.RunningSince = nil
	s.Status = SessionSubmitted
	s.SubmittedAt = &now
	s.AutoSubmitted = auto
	return nil
}

func (s *Session) checkActive(now time.Time) error {
	switch s.Status {
	case SessionSubmitted:
		return ErrSessionSubmitted
	case SessionPaused:
		return ErrSessionPaused
	}
	if s.Expired(now) {
		return ErrSessionExpired
	}
	return nil
}

func (s *Session) contains(questionID string) bool {
	for _, id := range s.QuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}
