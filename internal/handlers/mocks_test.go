package handlers

import (
	"context"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/resources"
	"github.com/SAP-F-2025/kumi-math-service/internal/services"
	"github.com/stretchr/testify/mock"
)

type MockChildService struct{ mock.Mock }

func (m *MockChildService) Create(ctx context.Context, req *services.CreateChildRequest) (*models.Child, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Child), args.Error(1)
}

func (m *MockChildService) GetByID(ctx context.Context, id uint) (*models.Child, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Child), args.Error(1)
}

func (m *MockChildService) List(ctx context.Context, req *services.ListChildrenRequest) (*services.ChildListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ChildListResponse), args.Error(1)
}

type MockAssessmentService struct{ mock.Mock }

func (m *MockAssessmentService) session(args mock.Arguments) (*services.SessionResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SessionResponse), args.Error(1)
}

func (m *MockAssessmentService) Start(ctx context.Context, req *services.StartSessionRequest) (*services.SessionResponse, error) {
	return m.session(m.Called(ctx, req))
}

func (m *MockAssessmentService) Get(ctx context.Context, id string) (*services.SessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockAssessmentService) Answer(ctx context.Context, id string, req *services.AnswerRequest) (*services.SessionResponse, error) {
	return m.session(m.Called(ctx, id, req))
}

func (m *MockAssessmentService) Next(ctx context.Context, id string) (*services.SessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockAssessmentService) Prev(ctx context.Context, id string) (*services.SessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockAssessmentService) Pause(ctx context.Context, id string) (*services.SessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockAssessmentService) Resume(ctx context.Context, id string) (*services.SessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockAssessmentService) Finish(ctx context.Context, id string) (*services.SessionResponse, error) {
	return m.session(m.Called(ctx, id))
}

type MockResultService struct{ mock.Mock }

func (m *MockResultService) result(args mock.Arguments) (*services.ResultResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ResultResponse), args.Error(1)
}

func (m *MockResultService) Submit(ctx context.Context, req *services.SubmitResultRequest) (*services.ResultResponse, error) {
	return m.result(m.Called(ctx, req))
}

func (m *MockResultService) GetByID(ctx context.Context, id uint) (*services.ResultResponse, error) {
	return m.result(m.Called(ctx, id))
}

func (m *MockResultService) Latest(ctx context.Context, childID uint) (*services.ResultResponse, error) {
	return m.result(m.Called(ctx, childID))
}

func (m *MockResultService) ListByChild(ctx context.Context, childID uint, req *services.ListResultsRequest) (*services.ResultListResponse, error) {
	args := m.Called(ctx, childID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ResultListResponse), args.Error(1)
}

func (m *MockResultService) Evaluate(ctx context.Context, req *services.EvaluateRequest) (*services.EvaluationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.EvaluationResponse), args.Error(1)
}

type MockLearningPathService struct{ mock.Mock }

func (m *MockLearningPathService) Plan(ctx context.Context, childID uint) (*services.LearningPathResponse, error) {
	args := m.Called(ctx, childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LearningPathResponse), args.Error(1)
}

func (m *MockLearningPathService) CompleteActivity(ctx context.Context, childID uint, activityID string) (*services.LearningPathResponse, error) {
	args := m.Called(ctx, childID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LearningPathResponse), args.Error(1)
}

type MockExportService struct{ mock.Mock }

func (m *MockExportService) ExportResult(ctx context.Context, resultID uint) ([]byte, string, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockResourceService struct{ mock.Mock }

func (m *MockResourceService) List(ctx context.Context, filter resources.Filter) ([]resources.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]resources.Resource), args.Error(1)
}

func (m *MockResourceService) Types(ctx context.Context) []string {
	return m.Called(ctx).Get(0).([]string)
}

func (m *MockResourceService) Concepts(ctx context.Context) []mastery.ConceptInfo {
	return m.Called(ctx).Get(0).([]mastery.ConceptInfo)
}
