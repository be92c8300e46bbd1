package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"github.com/SAP-F-2025/kumi-math-service/internal/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestChildService_Create(t *testing.T) {
	f := newFixture()
	f.repo.child.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(c *models.Child) bool {
		return c.Name == "Noah" && c.Grade == "1st"
	})).Run(func(args mock.Arguments) {
		args.Get(2).(*models.Child).ID = 3
	}).Return(nil)

	child, err := NewChildService(f.repo, testLogger(), f.validator).Create(context.Background(), &CreateChildRequest{Name: "Noah", Age: 6})
	require.NoError(t, err)
	assert.Equal(t, uint(3), child.ID)
	f.repo.AssertExpectations(t)
}

func TestChildService_Create_Invalid(t *testing.T) {
	f := newFixture()
	svc := NewChildService(f.repo, testLogger(), f.validator)

	_, err := svc.Create(context.Background(), &CreateChildRequest{Name: "", Age: 6})
	assert.True(t, IsValidation(err))

	_, err = svc.Create(context.Background(), &CreateChildRequest{Name: "Ava", Age: 12})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "age", verrs[0].Field)
}

func TestChildService_GetAndList(t *testing.T) {
	f := newFixture()
	f.repo.child.On("GetByID", mock.Anything, mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
	f.repo.child.On("List", mock.Anything, mock.Anything, repositories.ChildFilters{Limit: 20}).
		Return([]*models.Child{{ID: 1, Name: "Mia"}}, int64(1), nil)

	svc := NewChildService(f.repo, testLogger(), f.validator)
	_, err := svc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrChildNotFound)

	list, err := svc.List(context.Background(), &ListChildrenRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, 20, list.Limit)

	_, err = svc.List(context.Background(), &ListChildrenRequest{SortBy: "password"})
	assert.True(t, IsValidation(err))
}

func TestResourceService_List(t *testing.T) {
	svc := NewResourceService(resources.DefaultLibrary())
	ctx := context.Background()

	all, err := svc.List(ctx, resources.Filter{Concept: "ALL"})
	require.NoError(t, err)
	assert.Len(t, all, 9)

	_, err = svc.List(ctx, resources.Filter{Concept: "algebra"})
	assert.True(t, IsValidation(err))

	byConcept, err := svc.List(ctx, resources.Filter{Concept: " Addition "})
	require.NoError(t, err)
	for _, r := range byConcept {
		assert.Equal(t, "addition", string(r.ConceptID))
	}

	assert.NotEmpty(t, svc.Types(ctx))
	assert.Len(t, svc.Concepts(ctx), 9)
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsNotFound(ErrNoResults))
	assert.True(t, IsNotFound(errors.Join(errors.New("ctx"), ErrSessionNotFound)))
	assert.False(t, IsNotFound(ErrConflict))
	assert.True(t, IsBusinessRule(NewBusinessRuleError("max_children", "too many", nil)))
	assert.True(t, IsValidation(NewValidationError("name", "is required", "")))
	assert.False(t, IsValidation(errors.New("boom")))
}
