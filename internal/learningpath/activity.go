package learningpath

import (
	"math"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
)

// Activity is a practice item targeting one concept
type Activity struct {
	ID          string            `json:"id"`
	ConceptID   mastery.ConceptID `json:"concept_id"`
	Title       string            `json:"title"`
	Type        string            `json:"type"`
	Duration    string            `json:"duration"`
	Description string            `json:"description"`
	Difficulty  string            `json:"difficulty"`
	URL         string            `json:"url"`
}

// DefaultActivities is the built-in practice catalog.
func DefaultActivities() []Activity {
	return []Activity{
		{
			ID:          "act1",
			ConceptID:   mastery.ConceptNumbers,
			Title:       "Counting Objects to 20",
			Type:        "Interactive",
			Duration:    "10 min",
			Description: "Practice counting objects up to 20 with fun, interactive exercises.",
			Difficulty:  "easy",
			URL:         "/activities/counting-objects",
		},
		{
			ID:          "act2",
			ConceptID:   mastery.ConceptAddition,
			Title:       "Addition with Pictures",
			Type:        "Interactive",
			Duration:    "15 min",
			Description: "Learn to add numbers within 10 using visual aids and pictures.",
			Difficulty:  "easy",
			URL:         "/activities/addition-pictures",
		},
		{
			ID:          "act3",
			ConceptID:   mastery.ConceptSubtraction,
			Title:       "Subtraction Stories",
			Type:        "Video",
			Duration:    "8 min",
			Description: "Watch engaging stories that demonstrate subtraction concepts.",
			Difficulty:  "easy",
			URL:         "/activities/subtraction-stories",
		},
		{
			ID:          "act4",
			ConceptID:   mastery.ConceptPlaceValue,
			Title:       "Tens and Ones Blocks",
			Type:        "Interactive",
			Duration:    "12 min",
			Description: "Use virtual base-10 blocks to understand place value concepts.",
			Difficulty:  "medium",
			URL:         "/activities/place-value-blocks",
		},
		{
			ID:          "act5",
			ConceptID:   mastery.ConceptGeometry,
			Title:       "Shape Hunt",
			Type:        "Printable",
			Duration:    "20 min",
			Description: "Find and identify shapes in everyday objects with this printable activity.",
			Difficulty:  "easy",
			URL:         "/activities/shape-hunt",
		},
	}
}

// FindActivity looks an activity up by ID.
func FindActivity(activities []Activity, id string) (Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// Recommend keeps the activities whose concept was assessed and scored
// below threshold. Concepts missing from summaries are not recommended.
// With no summaries at all every activity is returned.
func Recommend(summaries []mastery.ConceptSummary, activities []Activity, threshold float64) []Activity {
	if len(summaries) == 0 {
		out := make([]Activity, len(activities))
		copy(out, activities)
		return out
	}

	scores := make(map[mastery.ConceptID]float64, len(summaries))
	for _, s := range summaries {
		scores[s.ConceptID] = s.ScorePercent
	}

	out := make([]Activity, 0)
	for _, a := range activities {
		score, assessed := scores[a.ConceptID]
		if assessed && score < threshold {
			out = append(out, a)
		}
	}
	return out
}

// Progress is the rounded percentage of activities marked complete.
func Progress(activities []Activity, completed map[string]bool) int {
	if len(activities) == 0 {
		return 0
	}
	done := 0
	for _, a := range activities {
		if completed[a.ID] {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(activities)) * 100))
}
