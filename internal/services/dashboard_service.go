package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/kumi-math-service/internal/learningpath"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
)

type dashboardService struct {
	repo       repositories.Repository
	activities []learningpath.Activity
	logger     *slog.Logger
	threshold  float64
}

func NewDashboardService(repo repositories.Repository, activities []learningpath.Activity, logger *slog.Logger, threshold float64) DashboardService {
	if threshold <= 0 {
		threshold = mastery.DefaultPracticeThreshold
	}
	return &dashboardService{
		repo:       repo,
		activities: activities,
		logger:     logger,
		threshold:  threshold,
	}
}

func (s *dashboardService) Overview(ctx context.Context, childID uint) (*DashboardResponse, error) {
	child, err := s.repo.Child().GetByID(ctx, nil, childID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrChildNotFound
		}
		return nil, fmt.Errorf("failed to get child: %w", err)
	}

	resp := &DashboardResponse{
		Child:    child,
		GapAreas: []string{},
	}

	var summaries []mastery.ConceptSummary
	latest, err := s.repo.Result().GetLatestByChild(ctx, nil, childID)
	switch {
	case err == nil:
		summaries = latest.Summaries()
		score := mastery.RoundScore(latest.OverallScore)
		id := latest.ID
		submitted := latest.SubmittedAt
		resp.LatestScore = &score
		resp.LatestResultID = &id
		resp.LastAssessedAt = &submitted
		resp.GapAreas = displayNames(mastery.SelectPracticeTargets(summaries, s.threshold))
	case repositories.IsNotFoundError(err):
	default:
		return nil, fmt.Errorf("failed to get latest result: %w", err)
	}
	resp.RecommendedActivities = learningpath.Recommend(summaries, s.activities, s.threshold)

	stats, err := s.repo.Result().GetChildStats(ctx, nil, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to get result stats: %w", err)
	}
	resp.AssessmentsTaken = stats.AssessmentsTaken
	resp.AverageScore = mastery.RoundScore(stats.AverageScore)
	resp.BestScore = mastery.RoundScore(stats.BestScore)

	if resp.CompletedActivities, err = s.repo.Activity().CountCompleted(ctx, nil, childID); err != nil {
		return nil, fmt.Errorf("failed to count completed activities: %w", err)
	}

	s.logger.Debug("Dashboard built", "child_id", childID, "gap_areas", len(resp.GapAreas))
	return resp, nil
}
