package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/cache"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"github.com/SAP-F-2025/kumi-math-service/internal/validator"
	"gorm.io/gorm"
)

// ResultConfig tunes scoring and caching
type ResultConfig struct {
	PracticeThreshold float64
	CacheTTL          time.Duration
}

type resultService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	notifier  EventNotifier
	logger    *ServiceLogger
	validator *validator.Validator
	config    ResultConfig
	now       func() time.Time
}

// NewResultService wires the result service. cache may be nil, in which
// case every read goes to the repository.
func NewResultService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	notifier EventNotifier,
	logger *slog.Logger,
	validator *validator.Validator,
	config ResultConfig,
) ResultService {
	if config.PracticeThreshold <= 0 {
		config.PracticeThreshold = mastery.DefaultPracticeThreshold
	}
	return &resultService{
		repo:      repo,
		cache:     cacheService,
		notifier:  notifier,
		logger:    NewServiceLogger(logger, LogConfig{Service: "kumi-math-service", Component: "result"}),
		validator: validator,
		config:    config,
		now:       time.Now,
	}
}

func (s *resultService) Submit(ctx context.Context, req *SubmitResultRequest) (resp *ResultResponse, err error) {
	done := s.logger.StartOperation(ctx, "submit_result", req.ChildID, req.SessionID)
	defer func() { done(err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err = ensureChild(ctx, s.repo, req.ChildID); err != nil {
		return nil, err
	}

	if req.SessionID != "" {
		existing, lookupErr := s.repo.Result().GetBySessionID(ctx, nil, req.SessionID)
		if lookupErr == nil {
			if existing.ChildID != req.ChildID {
				return nil, ErrSessionOwnership
			}
			return s.toResponse(existing, true), nil
		}
		if !repositories.IsNotFoundError(lookupErr) {
			return nil, fmt.Errorf("failed to check session result: %w", lookupErr)
		}
	}

	eval, err := mastery.Evaluate(req.Outcomes, s.config.PracticeThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate outcomes: %w", err)
	}

	submittedAt := s.now()
	if req.SubmittedAt != nil {
		submittedAt = *req.SubmittedAt
	}

	result := &models.AssessmentResult{
		ChildID:       req.ChildID,
		OverallScore:  eval.OverallScore,
		TotalCount:    eval.TotalQuestions,
		CorrectCount:  eval.TotalCorrect,
		AutoSubmitted: req.AutoSubmitted,
		SubmittedAt:   submittedAt,
	}
	if req.SessionID != "" {
		sessionID := req.SessionID
		result.SessionID = &sessionID
	}
	if err = result.SetOutcomes(req.Outcomes); err != nil {
		return nil, err
	}
	for i, summary := range eval.Summaries {
		result.Concepts = append(result.Concepts, models.NewConceptScore(i, summary))
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		return s.repo.Result().Create(ctx, tx, result)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	resp = s.toResponse(result, true)
	s.cacheResult(ctx, resp)
	s.invalidateChild(ctx, req.ChildID)

	s.notifier.NotifyAssessmentSubmitted(ctx, result)
	s.notifier.NotifyMasteryEvaluated(ctx, result, s.config.PracticeThreshold)

	return resp, nil
}

func (s *resultService) GetByID(ctx context.Context, id uint) (*ResultResponse, error) {
	if s.cache != nil {
		var cached ResultResponse
		if err := s.cache.Get(ctx, cache.ResultKey(id), &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Logger().Warn("Result cache read failed", "result_id", id, "error", err)
		}
	}

	result, err := s.repo.Result().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	resp := s.toResponse(result, true)
	s.cacheResult(ctx, resp)
	return resp, nil
}

func (s *resultService) Latest(ctx context.Context, childID uint) (*ResultResponse, error) {
	if s.cache != nil {
		var cached ResultResponse
		if err := s.cache.Get(ctx, cache.LatestResultKey(childID), &cached); err == nil {
			return &cached, nil
		}
	}

	if err := ensureChild(ctx, s.repo, childID); err != nil {
		return nil, err
	}

	result, err := s.repo.Result().GetLatestByChild(ctx, nil, childID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrNoResults
		}
		return nil, fmt.Errorf("failed to get latest result: %w", err)
	}

	resp := s.toResponse(result, true)
	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.LatestResultKey(childID), resp, s.config.CacheTTL); err != nil {
			s.logger.Logger().Warn("Latest result cache write failed", "child_id", childID, "error", err)
		}
	}
	return resp, nil
}

func (s *resultService) ListByChild(ctx context.Context, childID uint, req *ListResultsRequest) (*ResultListResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := ensureChild(ctx, s.repo, childID); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = 20
	}

	results, total, err := s.repo.Result().ListByChild(ctx, nil, childID, repositories.ResultFilters{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Limit:    limit,
		Offset:   req.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	out := make([]*ResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, s.toResponse(r, false))
	}
	return &ResultListResponse{
		Results: out,
		Total:   total,
		Limit:   limit,
		Offset:  req.Offset,
	}, nil
}

// Evaluate scores outcomes without persisting anything.
func (s *resultService) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluationResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	threshold := s.config.PracticeThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	eval, err := mastery.Evaluate(req.Outcomes, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate outcomes: %w", err)
	}

	return &EvaluationResponse{
		OverallScore:    mastery.RoundScore(eval.OverallScore),
		TotalQuestions:  eval.TotalQuestions,
		TotalCorrect:    eval.TotalCorrect,
		Threshold:       threshold,
		Concepts:        conceptResults(eval.Summaries),
		PracticeTargets: conceptIDs(eval.PracticeTargets),
	}, nil
}

func (s *resultService) toResponse(result *models.AssessmentResult, withOutcomes bool) *ResultResponse {
	summaries := result.Summaries()
	resp := &ResultResponse{
		ID:              result.ID,
		ChildID:         result.ChildID,
		OverallScore:    mastery.RoundScore(result.OverallScore),
		TotalQuestions:  result.TotalCount,
		TotalCorrect:    result.CorrectCount,
		AutoSubmitted:   result.AutoSubmitted,
		SubmittedAt:     result.SubmittedAt,
		Concepts:        conceptResults(summaries),
		PracticeTargets: conceptIDs(mastery.SelectPracticeTargets(summaries, s.config.PracticeThreshold)),
	}
	if result.SessionID != nil {
		resp.SessionID = *result.SessionID
	}
	if withOutcomes {
		outcomes, err := result.DecodeOutcomes()
		if err != nil {
			s.logger.Logger().Warn("Stored outcomes unreadable", "result_id", result.ID, "error", err)
		}
		resp.Outcomes = outcomes
	}
	return resp
}

func (s *resultService) cacheResult(ctx context.Context, resp *ResultResponse) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cache.ResultKey(resp.ID), resp, s.config.CacheTTL); err != nil {
		s.logger.Logger().Warn("Result cache write failed", "result_id", resp.ID, "error", err)
	}
}

func (s *resultService) invalidateChild(ctx context.Context, childID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, cache.ChildResultsPattern(childID)); err != nil {
		s.logger.Logger().Warn("Child cache invalidation failed", "child_id", childID, "error", err)
	}
}

func conceptResults(summaries []mastery.ConceptSummary) []ConceptResult {
	out := make([]ConceptResult, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ConceptResult{
			ConceptID:        s.ConceptID,
			DisplayName:      s.DisplayName,
			Description:      s.Description,
			TotalQuestions:   s.TotalQuestions,
			CorrectQuestions: s.CorrectQuestions,
			ScorePercent:     mastery.RoundScore(s.ScorePercent),
			MasteryLevel:     s.MasteryLevel,
		})
	}
	return out
}

func conceptIDs(summaries []mastery.ConceptSummary) []mastery.ConceptID {
	out := make([]mastery.ConceptID, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.ConceptID)
	}
	return out
}

func displayNames(summaries []mastery.ConceptSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.DisplayName)
	}
	return out
}
