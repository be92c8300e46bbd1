package services

import (
	"context"
	"testing"

	"github.com/SAP-F-2025/kumi-math-service/internal/events"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sampleOutcomes() []mastery.QuestionOutcome {
	return []mastery.QuestionOutcome{
		{QuestionID: "q1", ConceptID: mastery.ConceptAddition, Correct: true},
		{QuestionID: "q2", ConceptID: mastery.ConceptAddition, Correct: true},
		{QuestionID: "q3", ConceptID: mastery.ConceptSubtraction, Correct: false},
		{QuestionID: "q4", ConceptID: mastery.ConceptSubtraction, Correct: true},
		{QuestionID: "q5", ConceptID: mastery.ConceptTime, Correct: false},
		{QuestionID: "q6", ConceptID: mastery.ConceptTime, Correct: true},
	}
}

func TestResultService_Submit(t *testing.T) {
	f := newFixture()
	f.childExists(1, true)
	f.repo.result.On("GetBySessionID", mock.Anything, mock.Anything, "sess-1").Return(nil, gorm.ErrRecordNotFound)

	var saved *models.AssessmentResult
	f.repo.result.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*models.AssessmentResult")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).(*models.AssessmentResult)
			saved.ID = 10
		}).Return(nil)

	svc := f.resultService()
	resp, err := svc.Submit(context.Background(), &SubmitResultRequest{
		ChildID:   1,
		SessionID: "sess-1",
		Outcomes:  sampleOutcomes(),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(10), resp.ID)
	assert.Equal(t, 66.67, resp.OverallScore)
	assert.InDelta(t, 200.0/3.0, saved.OverallScore, 1e-9)
	require.Len(t, resp.Concepts, 3)
	assert.Equal(t, mastery.ConceptAddition, resp.Concepts[0].ConceptID)
	assert.Equal(t, mastery.LevelMastered, resp.Concepts[0].MasteryLevel)
	assert.Equal(t, 50.0, resp.Concepts[1].ScorePercent)
	assert.Equal(t, mastery.LevelDeveloping, resp.Concepts[1].MasteryLevel)
	assert.Equal(t, []mastery.ConceptID{mastery.ConceptSubtraction, mastery.ConceptTime}, resp.PracticeTargets)
	assert.Equal(t, "sess-1", *saved.SessionID)
	assert.Len(t, saved.Concepts, 3)
	assert.Equal(t, 2, saved.Concepts[2].Position)
	assert.Equal(t, f.clock.Now(), saved.SubmittedAt)

	assert.Len(t, f.publisher.EventsOfType(events.EventAssessmentSubmitted), 1)
	evaluated := f.publisher.EventsOfType(events.EventMasteryEvaluated)
	require.Len(t, evaluated, 1)
	payload := evaluated[0].Data.(events.MasteryEvaluatedEvent)
	assert.Equal(t, uint(10), payload.ResultID)
	f.repo.AssertExpectations(t)
}

func TestResultService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []mastery.QuestionOutcome
	}{
		{"empty batch", nil},
		{"unknown concept", []mastery.QuestionOutcome{{QuestionID: "q1", ConceptID: "algebra", Correct: true}}},
		{"missing question id", []mastery.QuestionOutcome{{ConceptID: mastery.ConceptData, Correct: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.resultService().Submit(context.Background(), &SubmitResultRequest{ChildID: 1, Outcomes: tt.outcomes})
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Empty(t, f.publisher.GetPublishedEvents())
		})
	}
}

func TestResultService_Submit_UnknownChild(t *testing.T) {
	f := newFixture()
	f.childExists(5, false)

	_, err := f.resultService().Submit(context.Background(), &SubmitResultRequest{ChildID: 5, Outcomes: sampleOutcomes()})
	assert.ErrorIs(t, err, ErrChildNotFound)
	assert.True(t, IsNotFound(err))
}

func TestResultService_Submit_SessionAlreadyScored(t *testing.T) {
	f := newFixture()
	f.childExists(1, true)
	existing := &models.AssessmentResult{ID: 3, ChildID: 1, OverallScore: 100, TotalCount: 1, CorrectCount: 1}
	f.repo.result.On("GetBySessionID", mock.Anything, mock.Anything, "sess-1").Return(existing, nil)

	resp, err := f.resultService().Submit(context.Background(), &SubmitResultRequest{ChildID: 1, SessionID: "sess-1", Outcomes: sampleOutcomes()})
	require.NoError(t, err)
	assert.Equal(t, uint(3), resp.ID)
	f.repo.result.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.GetPublishedEvents())
}

func TestResultService_Submit_SessionOfOtherChild(t *testing.T) {
	f := newFixture()
	f.childExists(2, true)
	f.repo.result.On("GetBySessionID", mock.Anything, mock.Anything, "sess-1").
		Return(&models.AssessmentResult{ID: 3, ChildID: 1}, nil)

	_, err := f.resultService().Submit(context.Background(), &SubmitResultRequest{ChildID: 2, SessionID: "sess-1", Outcomes: sampleOutcomes()})
	assert.ErrorIs(t, err, ErrSessionOwnership)
	assert.True(t, IsConflict(err))
}

func TestResultService_Evaluate(t *testing.T) {
	f := newFixture()
	svc := f.resultService()

	resp, err := svc.Evaluate(context.Background(), &EvaluateRequest{Outcomes: sampleOutcomes()})
	require.NoError(t, err)
	assert.Equal(t, 66.67, resp.OverallScore)
	assert.Equal(t, 80.0, resp.Threshold)
	assert.Equal(t, 6, resp.TotalQuestions)
	assert.Equal(t, 4, resp.TotalCorrect)

	threshold := 40.0
	resp, err = svc.Evaluate(context.Background(), &EvaluateRequest{Outcomes: sampleOutcomes(), Threshold: &threshold})
	require.NoError(t, err)
	assert.Empty(t, resp.PracticeTargets)
	assert.NotNil(t, resp.PracticeTargets)

	assert.Empty(t, f.publisher.GetPublishedEvents())
}

func TestResultService_GetByID_NotFound(t *testing.T) {
	f := newFixture()
	f.repo.result.On("GetByID", mock.Anything, mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.resultService().GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestResultService_Latest(t *testing.T) {
	f := newFixture()
	f.childExists(1, true)
	f.childExists(2, true)

	stored := &models.AssessmentResult{ID: 4, ChildID: 1, OverallScore: 50, TotalCount: 2, CorrectCount: 1}
	summaries, err := mastery.SummarizeByConcept([]mastery.QuestionOutcome{
		{QuestionID: "q1", ConceptID: mastery.ConceptGeometry, Correct: true},
		{QuestionID: "q2", ConceptID: mastery.ConceptGeometry, Correct: false},
	})
	require.NoError(t, err)
	stored.Concepts = []models.ConceptScore{models.NewConceptScore(0, summaries[0])}

	f.repo.result.On("GetLatestByChild", mock.Anything, mock.Anything, uint(1)).Return(stored, nil)
	f.repo.result.On("GetLatestByChild", mock.Anything, mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := f.resultService()
	resp, err := svc.Latest(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Geometry", resp.Concepts[0].DisplayName)
	assert.Equal(t, []mastery.ConceptID{mastery.ConceptGeometry}, resp.PracticeTargets)

	_, err = svc.Latest(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNoResults)
}
