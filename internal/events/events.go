package events

import (
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/google/uuid"
)

// EventType represents the domain events emitted by the service
type EventType string

const (
	EventAssessmentSubmitted EventType = "assessment.submitted"
	EventMasteryEvaluated    EventType = "mastery.evaluated"
	EventActivityCompleted   EventType = "activity.completed"
)

const (
	eventSource  = "kumi-math-service"
	eventVersion = "1.0"
)

// Event is the envelope shared by every published event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Payloads

type AssessmentSubmittedEvent struct {
	ResultID       uint      `json:"result_id"`
	ChildID        uint      `json:"child_id"`
	SessionID      string    `json:"session_id,omitempty"`
	OverallScore   float64   `json:"overall_score"`
	TotalQuestions int       `json:"total_questions"`
	TotalCorrect   int       `json:"total_correct"`
	AutoSubmitted  bool      `json:"auto_submitted"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type ConceptMastery struct {
	ConceptID    mastery.ConceptID    `json:"concept_id"`
	ScorePercent float64              `json:"score_percent"`
	MasteryLevel mastery.MasteryLevel `json:"mastery_level"`
}

type MasteryEvaluatedEvent struct {
	ResultID        uint                `json:"result_id"`
	ChildID         uint                `json:"child_id"`
	Concepts        []ConceptMastery    `json:"concepts"`
	PracticeTargets []mastery.ConceptID `json:"practice_targets"`
}

type ActivityCompletedEvent struct {
	ChildID     uint              `json:"child_id"`
	ActivityID  string            `json:"activity_id"`
	ConceptID   mastery.ConceptID `json:"concept_id"`
	Progress    int               `json:"progress"`
	CompletedAt time.Time         `json:"completed_at"`
}

// Event factory functions

func NewAssessmentSubmittedEvent(payload AssessmentSubmittedEvent) *Event {
	return newEvent(EventAssessmentSubmitted, payload)
}

func NewMasteryEvaluatedEvent(resultID, childID uint, summaries []mastery.ConceptSummary, targets []mastery.ConceptSummary) *Event {
	concepts := make([]ConceptMastery, 0, len(summaries))
	for _, s := range summaries {
		concepts = append(concepts, ConceptMastery{
			ConceptID:    s.ConceptID,
			ScorePercent: mastery.RoundScore(s.ScorePercent),
			MasteryLevel: s.MasteryLevel,
		})
	}
	ids := make([]mastery.ConceptID, 0, len(targets))
	for _, t := range targets {
		ids = append(ids, t.ConceptID)
	}

	return newEvent(EventMasteryEvaluated, MasteryEvaluatedEvent{
		ResultID:        resultID,
		ChildID:         childID,
		Concepts:        concepts,
		PracticeTargets: ids,
	})
}

func NewActivityCompletedEvent(childID uint, activityID string, conceptID mastery.ConceptID, progress int, completedAt time.Time) *Event {
	return newEvent(EventActivityCompleted, ActivityCompletedEvent{
		ChildID:     childID,
		ActivityID:  activityID,
		ConceptID:   conceptID,
		Progress:    progress,
		CompletedAt: completedAt,
	})
}

func newEvent(t EventType, data interface{}) *Event {
	return &Event{
		ID:        GenerateEventID(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

// GenerateEventID returns a new random event ID.
func GenerateEventID() string {
	return uuid.NewString()
}
