package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/events"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/models"
)

// EventNotifier turns service outcomes into published domain events.
// Publishing failures are logged and never surface to the caller.
type EventNotifier interface {
	NotifyAssessmentSubmitted(ctx context.Context, result *models.AssessmentResult)
	NotifyMasteryEvaluated(ctx context.Context, result *models.AssessmentResult, threshold float64)
	NotifyActivityCompleted(ctx context.Context, childID uint, activityID string, conceptID mastery.ConceptID, progress int, completedAt time.Time)
}

type eventNotifier struct {
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewEventNotifier(publisher events.EventPublisher, logger *slog.Logger) EventNotifier {
	return &eventNotifier{
		publisher: publisher,
		logger:    logger,
	}
}

func (n *eventNotifier) NotifyAssessmentSubmitted(ctx context.Context, result *models.AssessmentResult) {
	payload := events.AssessmentSubmittedEvent{
		ResultID:       result.ID,
		ChildID:        result.ChildID,
		OverallScore:   mastery.RoundScore(result.OverallScore),
		TotalQuestions: result.TotalCount,
		TotalCorrect:   result.CorrectCount,
		AutoSubmitted:  result.AutoSubmitted,
		SubmittedAt:    result.SubmittedAt,
	}
	if result.SessionID != nil {
		payload.SessionID = *result.SessionID
	}
	n.publish(ctx, events.NewAssessmentSubmittedEvent(payload))
}

func (n *eventNotifier) NotifyMasteryEvaluated(ctx context.Context, result *models.AssessmentResult, threshold float64) {
	summaries := result.Summaries()
	targets := mastery.SelectPracticeTargets(summaries, threshold)
	n.publish(ctx, events.NewMasteryEvaluatedEvent(result.ID, result.ChildID, summaries, targets))
}

func (n *eventNotifier) NotifyActivityCompleted(ctx context.Context, childID uint, activityID string, conceptID mastery.ConceptID, progress int, completedAt time.Time) {
	n.publish(ctx, events.NewActivityCompletedEvent(childID, activityID, conceptID, progress, completedAt))
}

func (n *eventNotifier) publish(ctx context.Context, event *events.Event) {
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.Error("Failed to publish event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
	}
}
