package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"gorm.io/datatypes"
)

// AssessmentResult is a scored, submitted assessment
type AssessmentResult struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	ChildID       uint    `json:"child_id" gorm:"not null;index"`
	SessionID     *string `json:"session_id,omitempty" gorm:"size:36;uniqueIndex"`
	OverallScore  float64 `json:"overall_score" gorm:"not null"`
	TotalCount    int     `json:"total_questions" gorm:"not null"`
	CorrectCount  int     `json:"correct_questions" gorm:"not null"`
	AutoSubmitted bool    `json:"auto_submitted" gorm:"default:false"`

	// []mastery.QuestionOutcome
	Outcomes datatypes.JSON `json:"outcomes" gorm:"type:jsonb"`

	SubmittedAt time.Time `json:"submitted_at" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Concepts []ConceptScore `json:"concepts" gorm:"foreignKey:ResultID"`
	Child    *Child         `json:"child,omitempty" gorm:"foreignKey:ChildID"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}

// SetOutcomes encodes outcomes into the jsonb column.
func (r *AssessmentResult) SetOutcomes(outcomes []mastery.QuestionOutcome) error {
	data, err := json.Marshal(outcomes)
	if err != nil {
		return fmt.Errorf("failed to encode outcomes: %w", err)
	}
	r.Outcomes = datatypes.JSON(data)
	return nil
}

// DecodeOutcomes reads the stored outcome batch back.
func (r *AssessmentResult) DecodeOutcomes() ([]mastery.QuestionOutcome, error) {
	var outcomes []mastery.QuestionOutcome
	if len(r.Outcomes) == 0 {
		return outcomes, nil
	}
	if err := json.Unmarshal(r.Outcomes, &outcomes); err != nil {
		return nil, fmt.Errorf("failed to decode outcomes: %w", err)
	}
	return outcomes, nil
}

// Summaries rebuilds the evaluator view from stored concept rows.
func (r *AssessmentResult) Summaries() []mastery.ConceptSummary {
	out := make([]mastery.ConceptSummary, 0, len(r.Concepts))
	for _, c := range r.Concepts {
		out = append(out, c.Summary())
	}
	return out
}

// ConceptScore is one concept row of a result
type ConceptScore struct {
	ID               uint                 `json:"id" gorm:"primaryKey"`
	ResultID         uint                 `json:"result_id" gorm:"not null;index"`
	ConceptID        mastery.ConceptID    `json:"concept_id" gorm:"not null;size:32;index"`
	Position         int                  `json:"position" gorm:"not null"`
	TotalQuestions   int                  `json:"total_questions" gorm:"not null"`
	CorrectQuestions int                  `json:"correct_questions" gorm:"not null"`
	ScorePercent     float64              `json:"score_percent" gorm:"not null"`
	MasteryLevel     mastery.MasteryLevel `json:"mastery_level" gorm:"not null;size:16"`
}

func (ConceptScore) TableName() string {
	return "concept_scores"
}

// NewConceptScore converts an evaluator summary into a row.
func NewConceptScore(position int, s mastery.ConceptSummary) ConceptScore {
	return ConceptScore{
		ConceptID:        s.ConceptID,
		Position:         position,
		TotalQuestions:   s.TotalQuestions,
		CorrectQuestions: s.CorrectQuestions,
		ScorePercent:     s.ScorePercent,
		MasteryLevel:     s.MasteryLevel,
	}
}

func (c ConceptScore) Summary() mastery.ConceptSummary {
	info, err := mastery.Lookup(c.ConceptID)
	if err != nil {
		info = mastery.ConceptInfo{ID: c.ConceptID}
	}
	return mastery.ConceptSummary{
		ConceptID:        c.ConceptID,
		DisplayName:      info.Name,
		Description:      info.Description,
		TotalQuestions:   c.TotalQuestions,
		CorrectQuestions: c.CorrectQuestions,
		ScorePercent:     c.ScorePercent,
		MasteryLevel:     c.MasteryLevel,
	}
}
