package quiz

import (
	"fmt"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a multiple-choice assessment item
type Question struct {
	ID            string            `json:"id"`
	ConceptID     mastery.ConceptID `json:"concept_id"`
	Text          string            `json:"text"`
	ImageURL      string            `json:"image_url,omitempty"`
	Options       []Option          `json:"options"`
	CorrectAnswer string            `json:"-"`
	Difficulty    Difficulty        `json:"difficulty"`
}

// HasOption reports whether optionID is one of the question's choices.
func (q Question) HasOption(optionID string) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// Bank is an ordered, read-only set of questions
type Bank struct {
	questions []Question
	index     map[string]int
}

// NewBank indexes questions by ID. Duplicate IDs and unknown concepts are rejected.
func NewBank(questions []Question) (*Bank, error) {
	b := &Bank{
		questions: make([]Question, len(questions)),
		index:     make(map[string]int, len(questions)),
	}
	copy(b.questions, questions)

	for i, q := range b.questions {
		if _, dup := b.index[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if !q.ConceptID.Valid() {
			return nil, fmt.Errorf("question %s: %w", q.ID, mastery.ErrUnknownConcept)
		}
		if !q.HasOption(q.CorrectAnswer) {
			return nil, fmt.Errorf("question %s: correct answer %q is not an option", q.ID, q.CorrectAnswer)
		}
		b.index[q.ID] = i
	}

	return b, nil
}

func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

func (b *Bank) Len() int {
	return len(b.questions)
}

func (b *Bank) Get(id string) (Question, bool) {
	i, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

func (b *Bank) At(i int) (Question, bool) {
	if i < 0 || i >= len(b.questions) {
		return Question{}, false
	}
	return b.questions[i], true
}

// IDs returns question IDs in bank order.
func (b *Bank) IDs() []string {
	ids := make([]string, len(b.questions))
	for i, q := range b.questions {
		ids[i] = q.ID
	}
	return ids
}

// Grade turns recorded answers into outcomes, one per question in bank order.
// Unanswered questions count as incorrect.
func (b *Bank) Grade(answers map[string]string) []mastery.QuestionOutcome {
	outcomes := make([]mastery.QuestionOutcome, 0, len(b.questions))
	for _, q := range b.questions {
		answer, ok := answers[q.ID]
		outcomes = append(outcomes, mastery.QuestionOutcome{
			QuestionID: q.ID,
			ConceptID:  q.ConceptID,
			Correct:    ok && answer == q.CorrectAnswer,
		})
	}
	return outcomes
}

// DefaultQuestions is the first-grade placement assessment.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:        "q1",
			ConceptID: mastery.ConceptNumbers,
			Text:      "Count the apples. How many are there?",
			ImageURL:  "/images/counting-apples.png",
			Options: []Option{
				{ID: "a", Text: "5"},
				{ID: "b", Text: "7"},
				{ID: "c", Text: "9"},
				{ID: "d", Text: "11"},
			},
			CorrectAnswer: "b",
			Difficulty:    DifficultyEasy,
		},
		{
			ID:        "q2",
			ConceptID: mastery.ConceptAddition,
			Text:      "What is 3 + 5?",
			Options: []Option{
				{ID: "a", Text: "7"},
				{ID: "b", Text: "8"},
				{ID: "c", Text: "9"},
				{ID: "d", Text: "10"},
			},
			CorrectAnswer: "b",
			Difficulty:    DifficultyEasy,
		},
		{
			ID:        "q3",
			ConceptID: mastery.ConceptSubtraction,
			Text:      "What is 10 - 4?",
			Options: []Option{
				{ID: "a", Text: "4"},
				{ID: "b", Text: "5"},
				{ID: "c", Text: "6"},
				{ID: "d", Text: "7"},
			},
			CorrectAnswer: "c",
			Difficulty:    DifficultyEasy,
		},
		{
			ID:        "q4",
			ConceptID: mastery.ConceptPlaceValue,
			Text:      "What is the value of the underlined digit in the number 283?",
			Options: []Option{
				{ID: "a", Text: "2"},
				{ID: "b", Text: "20"},
				{ID: "c", Text: "8"},
				{ID: "d", Text: "80"},
			},
			CorrectAnswer: "d",
			Difficulty:    DifficultyMedium,
		},
		{
			ID:        "q5",
			ConceptID: mastery.ConceptGeometry,
			Text:      "Which shape has 4 equal sides?",
			Options: []Option{
				{ID: "a", Text: "Rectangle"},
				{ID: "b", Text: "Square"},
				{ID: "c", Text: "Triangle"},
				{ID: "d", Text: "Circle"},
			},
			CorrectAnswer: "b",
			Difficulty:    DifficultyEasy,
		},
	}
}

// DefaultBank builds a Bank from DefaultQuestions.
func DefaultBank() *Bank {
	b, err := NewBank(DefaultQuestions())
	if err != nil {
		panic(err)
	}
	return b
}
