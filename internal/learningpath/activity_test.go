package learningpath

import (
	"testing"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(activities []Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}
	return out
}

func TestRecommend_OnlyWeakAssessedConcepts(t *testing.T) {
	summaries, err := mastery.SummarizeByConcept([]mastery.QuestionOutcome{
		{QuestionID: "q1", ConceptID: mastery.ConceptNumbers, Correct: true},
		{QuestionID: "q2", ConceptID: mastery.ConceptAddition, Correct: false},
		{QuestionID: "q3", ConceptID: mastery.ConceptSubtraction, Correct: true},
		{QuestionID: "q4", ConceptID: mastery.ConceptPlaceValue, Correct: false},
	})
	require.NoError(t, err)

	got := Recommend(summaries, DefaultActivities(), mastery.DefaultPracticeThreshold)
	// geometry was never assessed, so act5 is dropped
	assert.Equal(t, []string{"act2", "act4"}, ids(got))
}

func TestRecommend_NoResults(t *testing.T) {
	got := Recommend(nil, DefaultActivities(), mastery.DefaultPracticeThreshold)
	assert.Len(t, got, 5)
}

func TestRecommend_AllMastered(t *testing.T) {
	summaries := []mastery.ConceptSummary{
		{ConceptID: mastery.ConceptAddition, ScorePercent: 80},
	}
	assert.Empty(t, Recommend(summaries, DefaultActivities(), mastery.DefaultPracticeThreshold))
}

func TestFindActivity(t *testing.T) {
	a, ok := FindActivity(DefaultActivities(), "act3")
	require.True(t, ok)
	assert.Equal(t, "Subtraction Stories", a.Title)

	_, ok = FindActivity(DefaultActivities(), "act42")
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	activities := DefaultActivities()[:3]

	assert.Equal(t, 0, Progress(nil, nil))
	assert.Equal(t, 0, Progress(activities, nil))
	assert.Equal(t, 33, Progress(activities, map[string]bool{"act1": true}))
	assert.Equal(t, 67, Progress(activities, map[string]bool{"act1": true, "act2": true}))
	assert.Equal(t, 100, Progress(activities, map[string]bool{"act1": true, "act2": true, "act3": true}))
	// completions outside the path are ignored
	assert.Equal(t, 0, Progress(activities, map[string]bool{"act5": true}))
}

func TestGroupByDay(t *testing.T) {
	days := GroupByDay(DefaultActivities())
	require.Len(t, days, 3)
	assert.Equal(t, []string{"act1", "act2"}, ids(days[0].Activities))
	assert.Equal(t, []string{"act3", "act4"}, ids(days[1].Activities))
	assert.Equal(t, []string{"act5"}, ids(days[2].Activities))

	short := GroupByDay(DefaultActivities()[:1])
	assert.Equal(t, []string{"act1"}, ids(short[0].Activities))
	assert.Empty(t, short[1].Activities)
	assert.Empty(t, short[2].Activities)
}
