package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/quiz"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"github.com/SAP-F-2025/kumi-math-service/internal/session"
	"github.com/SAP-F-2025/kumi-math-service/internal/validator"
)

type assessmentService struct {
	repo      repositories.Repository
	store     session.Store
	bank      *quiz.Bank
	results   ResultService
	logger    *ServiceLogger
	validator *validator.Validator
	timeLimit time.Duration
	now       func() time.Time
}

func NewAssessmentService(
	repo repositories.Repository,
	store session.Store,
	bank *quiz.Bank,
	results ResultService,
	logger *slog.Logger,
	validator *validator.Validator,
	timeLimit time.Duration,
) AssessmentService {
	if timeLimit <= 0 {
		timeLimit = quiz.DefaultTimeLimit
	}
	return &assessmentService{
		repo:      repo,
		store:     store,
		bank:      bank,
		results:   results,
		logger:    NewServiceLogger(logger, LogConfig{Service: "kumi-math-service", Component: "assessment"}),
		validator: validator,
		timeLimit: timeLimit,
		now:       time.Now,
	}
}

func (s *assessmentService) Start(ctx context.Context, req *StartSessionRequest) (resp *SessionResponse, err error) {
	done := s.logger.StartOperation(ctx, "start_session", req.ChildID, "")
	defer func() { done(err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err = ensureChild(ctx, s.repo, req.ChildID); err != nil {
		return nil, err
	}

	now := s.now()
	sess := quiz.NewSession(req.ChildID, s.bank, s.timeLimit, now)
	if err = s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s.toResponse(sess, now, nil), nil
}

// Get returns the session, submitting it first when its time ran out.
func (s *assessmentService) Get(ctx context.Context, sessionID string) (*SessionResponse, error) {
	sess, now, result, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if result == nil && sess.ResultID != nil {
		if result, err = s.results.GetByID(ctx, *sess.ResultID); err != nil && !errors.Is(err, ErrResultNotFound) {
			return nil, err
		}
	}
	return s.toResponse(sess, now, result), nil
}

func (s *assessmentService) Answer(ctx context.Context, sessionID string, req *AnswerRequest) (resp *SessionResponse, err error) {
	done := s.logger.StartOperation(ctx, "answer_question", 0, sessionID)
	defer func() { done(err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(sess *quiz.Session, now time.Time) error {
		return sess.Answer(s.bank, req.QuestionID, req.OptionID, now)
	})
}

// Next advances; on the last question it finishes the session.
func (s *assessmentService) Next(ctx context.Context, sessionID string) (*SessionResponse, error) {
	var finish bool
	resp, err := s.mutate(ctx, sessionID, func(sess *quiz.Session, now time.Time) error {
		var err error
		finish, err = sess.Next(now)
		return err
	})
	if err != nil || !finish {
		return resp, err
	}
	return s.Finish(ctx, sessionID)
}

func (s *assessmentService) Prev(ctx context.Context, sessionID string) (*SessionResponse, error) {
	return s.mutate(ctx, sessionID, func(sess *quiz.Session, now time.Time) error {
		_, err := sess.Prev(now)
		return err
	})
}

func (s *assessmentService) Pause(ctx context.Context, sessionID string) (*SessionResponse, error) {
	return s.mutate(ctx, sessionID, func(sess *quiz.Session, now time.Time) error {
		return sess.Pause(now)
	})
}

func (s *assessmentService) Resume(ctx context.Context, sessionID string) (*SessionResponse, error) {
	return s.mutate(ctx, sessionID, func(sess *quiz.Session, now time.Time) error {
		return sess.Resume(now)
	})
}

// Finish grades and submits the session. Finishing a submitted session
// returns it unchanged.
func (s *assessmentService) Finish(ctx context.Context, sessionID string) (resp *SessionResponse, err error) {
	done := s.logger.StartOperation(ctx, "finish_session", 0, sessionID)
	defer func() { done(err) }()

	sess, now, result, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return s.toResponse(sess, now, result), nil
	}
	if sess.Status == quiz.SessionSubmitted {
		return s.Get(ctx, sessionID)
	}

	if result, err = s.submit(ctx, sess, now, false); err != nil {
		return nil, err
	}
	return s.toResponse(sess, now, result), nil
}

// mutate loads the session, applies fn and saves it. An expired session is
// auto-submitted and the call fails with quiz.ErrSessionExpired.
func (s *assessmentService) mutate(ctx context.Context, sessionID string, fn func(*quiz.Session, time.Time) error) (*SessionResponse, error) {
	sess, now, result, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return nil, quiz.ErrSessionExpired
	}

	if err := fn(sess, now); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s.toResponse(sess, now, nil), nil
}

// load fetches a session and applies time's-up. result is non-nil only
// when this call performed the auto-submit.
func (s *assessmentService) load(ctx context.Context, sessionID string) (*quiz.Session, time.Time, *ResultResponse, error) {
	now := s.now()
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, now, nil, ErrSessionNotFound
		}
		return nil, now, nil, fmt.Errorf("failed to load session: %w", err)
	}

	if !sess.Expired(now) {
		return sess, now, nil, nil
	}

	s.logger.Logger().Info("Session time is up, auto-submitting", "session_id", sess.ID, "child_id", sess.ChildID)
	result, err := s.submit(ctx, sess, now, true)
	if err != nil {
		return nil, now, nil, err
	}
	return sess, now, result, nil
}

func (s *assessmentService) submit(ctx context.Context, sess *quiz.Session, now time.Time, auto bool) (*ResultResponse, error) {
	if err := sess.Submit(now, auto); err != nil {
		return nil, err
	}

	result, err := s.results.Submit(ctx, &SubmitResultRequest{
		ChildID:       sess.ChildID,
		SessionID:     sess.ID,
		Outcomes:      s.bank.Grade(sess.Answers),
		AutoSubmitted: auto,
		SubmittedAt:   sess.SubmittedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit session: %w", err)
	}

	resultID := result.ID
	sess.ResultID = &resultID
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return result, nil
}

func (s *assessmentService) toResponse(sess *quiz.Session, now time.Time, result *ResultResponse) *SessionResponse {
	resp := &SessionResponse{
		ID:               sess.ID,
		ChildID:          sess.ChildID,
		Status:           sess.Status,
		CurrentIndex:     sess.CurrentIndex,
		TotalQuestions:   len(sess.QuestionIDs),
		AnsweredCount:    len(sess.Answers),
		RemainingSeconds: int(sess.TimeLeft(now) / time.Second),
		StartedAt:        sess.StartedAt,
		SubmittedAt:      sess.SubmittedAt,
		AutoSubmitted:    sess.AutoSubmitted,
		Result:           result,
	}

	if sess.Status != quiz.SessionSubmitted {
		if q, ok := s.bank.Get(sess.CurrentQuestionID()); ok {
			resp.Question = &SessionQuestion{
				Question:       q,
				Number:         sess.CurrentIndex + 1,
				SelectedOption: sess.Answers[q.ID],
			}
		}
	}
	return resp
}
