package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/learningpath"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
)

type learningPathService struct {
	repo       repositories.Repository
	activities []learningpath.Activity
	notifier   EventNotifier
	logger     *ServiceLogger
	threshold  float64
	now        func() time.Time
}

func NewLearningPathService(
	repo repositories.Repository,
	activities []learningpath.Activity,
	notifier EventNotifier,
	logger *slog.Logger,
	threshold float64,
) LearningPathService {
	if threshold <= 0 {
		threshold = mastery.DefaultPracticeThreshold
	}
	return &learningPathService{
		repo:       repo,
		activities: activities,
		notifier:   notifier,
		logger:     NewServiceLogger(logger, LogConfig{Service: "kumi-math-service", Component: "learning_path"}),
		threshold:  threshold,
		now:        time.Now,
	}
}

// Plan builds the child's path from their latest result. A child without
// results gets the whole catalog.
func (s *learningPathService) Plan(ctx context.Context, childID uint) (*LearningPathResponse, error) {
	if err := ensureChild(ctx, s.repo, childID); err != nil {
		return nil, err
	}

	var (
		summaries []mastery.ConceptSummary
		resultID  *uint
	)
	latest, err := s.repo.Result().GetLatestByChild(ctx, nil, childID)
	switch {
	case err == nil:
		summaries = latest.Summaries()
		id := latest.ID
		resultID = &id
	case repositories.IsNotFoundError(err):
	default:
		return nil, fmt.Errorf("failed to get latest result: %w", err)
	}

	completions, err := s.repo.Activity().ListCompleted(ctx, nil, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed activities: %w", err)
	}
	completed := make(map[string]bool, len(completions))
	for _, c := range completions {
		completed[c.ActivityID] = true
	}

	recommended := learningpath.Recommend(summaries, s.activities, s.threshold)

	resp := &LearningPathResponse{
		ChildID:    childID,
		ResultID:   resultID,
		FocusAreas: displayNames(mastery.SelectPracticeTargets(summaries, s.threshold)),
		Activities: planned(recommended, completed),
		Progress:   learningpath.Progress(recommended, completed),
	}
	for _, a := range recommended {
		if completed[a.ID] {
			resp.CompletedCount++
		}
	}
	for _, day := range learningpath.GroupByDay(recommended) {
		resp.Days = append(resp.Days, PlannedDay{
			Day:        day.Day,
			Activities: planned(day.Activities, completed),
		})
	}
	return resp, nil
}

// CompleteActivity marks the activity done. Repeating it is a no-op and
// publishes nothing.
func (s *learningPathService) CompleteActivity(ctx context.Context, childID uint, activityID string) (resp *LearningPathResponse, err error) {
	done := s.logger.StartOperation(ctx, "complete_activity", childID, activityID)
	defer func() { done(err) }()

	activity, ok := learningpath.FindActivity(s.activities, activityID)
	if !ok {
		return nil, ErrActivityNotFound
	}
	if err = ensureChild(ctx, s.repo, childID); err != nil {
		return nil, err
	}

	completedAt := s.now()
	created, err := s.repo.Activity().MarkCompleted(ctx, nil, &models.ActivityCompletion{
		ChildID:     childID,
		ActivityID:  activity.ID,
		CompletedAt: completedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark activity completed: %w", err)
	}

	resp, err = s.Plan(ctx, childID)
	if err != nil {
		return nil, err
	}
	if created {
		s.notifier.NotifyActivityCompleted(ctx, childID, activity.ID, activity.ConceptID, resp.Progress, completedAt)
	}
	return resp, nil
}

func planned(activities []learningpath.Activity, completed map[string]bool) []PlannedActivity {
	out := make([]PlannedActivity, 0, len(activities))
	for _, a := range activities {
		out = append(out, PlannedActivity{Activity: a, Completed: completed[a.ID]})
	}
	return out
}
