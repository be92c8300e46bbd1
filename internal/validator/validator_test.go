package validator

import (
	"testing"

	apperrors "github.com/SAP-F-2025/kumi-math-service/internal/errors"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcomeBatch struct {
	Outcomes []mastery.QuestionOutcome `json:"outcomes" validate:"required,min=1,dive"`
}

type completion struct {
	ActivityID string `json:"activity_id" validate:"required,activity_id"`
}

func TestValidator_ConceptID(t *testing.T) {
	v := New()

	ok := outcomeBatch{Outcomes: []mastery.QuestionOutcome{{QuestionID: "q1", ConceptID: mastery.ConceptAddition, Correct: true}}}
	assert.NoError(t, v.Validate(ok))

	bad := outcomeBatch{Outcomes: []mastery.QuestionOutcome{
		{QuestionID: "q1", ConceptID: mastery.ConceptAddition},
		{QuestionID: "q2", ConceptID: "algebra"},
	}}
	err := v.Validate(bad)
	require.Error(t, err)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "outcomes[1].concept_id", verrs[0].Field)
	assert.Equal(t, "concept_id", verrs[0].Rule)
}

func TestValidator_EmptyBatch(t *testing.T) {
	err := New().Validate(outcomeBatch{})

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "outcomes", verrs[0].Field)
	assert.Equal(t, "is required", verrs[0].Message)
}

func TestValidator_ActivityID(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(completion{ActivityID: "act3"}))
	assert.Error(t, v.Validate(completion{ActivityID: "act99"}))
}
