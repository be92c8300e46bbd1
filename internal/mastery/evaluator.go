package mastery

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid input: outcome set is empty")

// MasteryLevel is the coarse three-bucket classification of a concept score
type MasteryLevel string

const (
	LevelMastered   MasteryLevel = "mastered"
	LevelDeveloping MasteryLevel = "developing"
	LevelNeedsWork  MasteryLevel = "needs-work"
)

const (
	// Inclusive lower bounds of the mastery buckets, in percent.
	MasteredThreshold   = 80.0
	DevelopingThreshold = 50.0

	DefaultPracticeThreshold = 80.0
)

// QuestionOutcome is one answered question tagged with its concept
type QuestionOutcome struct {
	QuestionID string    `json:"question_id" validate:"required"`
	ConceptID  ConceptID `json:"concept_id" validate:"required,concept_id"`
	Correct    bool      `json:"correct"`
}

// ConceptSummary is the derived score of one concept within an outcome set
type ConceptSummary struct {
	ConceptID        ConceptID    `json:"concept_id"`
	DisplayName      string       `json:"display_name"`
	Description      string       `json:"description"`
	TotalQuestions   int          `json:"total_questions"`
	CorrectQuestions int          `json:"correct_questions"`
	ScorePercent     float64      `json:"score_percent"`
	MasteryLevel     MasteryLevel `json:"mastery_level"`
}

// Evaluation bundles everything derived from one outcome set
type Evaluation struct {
	Summaries       []ConceptSummary `json:"summaries"`
	OverallScore    float64          `json:"overall_score"`
	PracticeTargets []ConceptSummary `json:"practice_targets"`
	TotalQuestions  int              `json:"total_questions"`
	TotalCorrect    int              `json:"total_correct"`
}

// Classify maps a score percentage to its mastery level.
func Classify(score float64) MasteryLevel {
	switch {
	case score >= MasteredThreshold:
		return LevelMastered
	case score >= DevelopingThreshold:
		return LevelDeveloping
	default:
		return LevelNeedsWork
	}
}

// SummarizeByConcept groups outcomes by concept in first-seen order and
// scores each group. It never modifies outcomes.
func SummarizeByConcept(outcomes []QuestionOutcome) ([]ConceptSummary, error) {
	if len(outcomes) == 0 {
		return nil, ErrInvalidInput
	}

	order := make([]ConceptID, 0)
	totals := make(map[ConceptID]int)
	correct := make(map[ConceptID]int)

	for _, o := range outcomes {
		if !o.ConceptID.Valid() {
			return nil, fmt.Errorf("question %s: %w: %q", o.QuestionID, ErrUnknownConcept, string(o.ConceptID))
		}
		if _, seen := totals[o.ConceptID]; !seen {
			order = append(order, o.ConceptID)
		}
		totals[o.ConceptID]++
		if o.Correct {
			correct[o.ConceptID]++
		}
	}

	summaries := make([]ConceptSummary, 0, len(order))
	for _, id := range order {
		info := catalog[id]
		score := percent(correct[id], totals[id])
		summaries = append(summaries, ConceptSummary{
			ConceptID:        id,
			DisplayName:      info.Name,
			Description:      info.Description,
			TotalQuestions:   totals[id],
			CorrectQuestions: correct[id],
			ScorePercent:     score,
			MasteryLevel:     Classify(score),
		})
	}

	return summaries, nil
}

// OverallScore is the share of correct outcomes, in percent.
func OverallScore(outcomes []QuestionOutcome) (float64, error) {
	if len(outcomes) == 0 {
		return 0, ErrInvalidInput
	}
	return percent(countCorrect(outcomes), len(outcomes)), nil
}

// SelectPracticeTargets keeps the summaries scoring below threshold.
func SelectPracticeTargets(summaries []ConceptSummary, threshold float64) []ConceptSummary {
	targets := make([]ConceptSummary, 0)
	for _, s := range summaries {
		if s.ScorePercent < threshold {
			targets = append(targets, s)
		}
	}
	return targets
}

// Evaluate runs the full evaluation over outcomes.
func Evaluate(outcomes []QuestionOutcome, threshold float64) (*Evaluation, error) {
	summaries, err := SummarizeByConcept(outcomes)
	if err != nil {
		return nil, err
	}
	overall, err := OverallScore(outcomes)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		Summaries:       summaries,
		OverallScore:    overall,
		PracticeTargets: SelectPracticeTargets(summaries, threshold),
		TotalQuestions:  len(outcomes),
		TotalCorrect:    countCorrect(outcomes),
	}, nil
}

// RoundScore rounds a score to two decimals for presentation.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

func percent(correct, total int) float64 {
	return 100 * float64(correct) / float64(total)
}

func countCorrect(outcomes []QuestionOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Correct {
			n++
		}
	}
	return n
}
