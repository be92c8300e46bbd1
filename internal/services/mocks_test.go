package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/events"
	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"github.com/SAP-F-2025/kumi-math-service/internal/validator"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockChildRepository is a mock implementation of ChildRepository
type MockChildRepository struct {
	mock.Mock
}

func (m *MockChildRepository) Create(ctx context.Context, tx *gorm.DB, child *models.Child) error {
	args := m.Called(ctx, tx, child)
	return args.Error(0)
}

func (m *MockChildRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Child, error) {
	args := m.Called(ctx, tx, id)
	child, _ := args.Get(0).(*models.Child)
	return child, args.Error(1)
}

func (m *MockChildRepository) Update(ctx context.Context, tx *gorm.DB, child *models.Child) error {
	args := m.Called(ctx, tx, child)
	return args.Error(0)
}

func (m *MockChildRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockChildRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.ChildFilters) ([]*models.Child, int64, error) {
	args := m.Called(ctx, tx, filters)
	return args.Get(0).([]*models.Child), args.Get(1).(int64), args.Error(2)
}

func (m *MockChildRepository) ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

// MockResultRepository is a mock implementation of ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, tx *gorm.DB, result *models.AssessmentResult) error {
	args := m.Called(ctx, tx, result)
	return args.Error(0)
}

func (m *MockResultRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AssessmentResult, error) {
	args := m.Called(ctx, tx, id)
	result, _ := args.Get(0).(*models.AssessmentResult)
	return result, args.Error(1)
}

func (m *MockResultRepository) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) (*models.AssessmentResult, error) {
	args := m.Called(ctx, tx, sessionID)
	result, _ := args.Get(0).(*models.AssessmentResult)
	return result, args.Error(1)
}

func (m *MockResultRepository) GetLatestByChild(ctx context.Context, tx *gorm.DB, childID uint) (*models.AssessmentResult, error) {
	args := m.Called(ctx, tx, childID)
	result, _ := args.Get(0).(*models.AssessmentResult)
	return result, args.Error(1)
}

func (m *MockResultRepository) ListByChild(ctx context.Context, tx *gorm.DB, childID uint, filters repositories.ResultFilters) ([]*models.AssessmentResult, int64, error) {
	args := m.Called(ctx, tx, childID, filters)
	return args.Get(0).([]*models.AssessmentResult), args.Get(1).(int64), args.Error(2)
}

func (m *MockResultRepository) GetChildStats(ctx context.Context, tx *gorm.DB, childID uint) (*repositories.ChildResultStats, error) {
	args := m.Called(ctx, tx, childID)
	stats, _ := args.Get(0).(*repositories.ChildResultStats)
	return stats, args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) MarkCompleted(ctx context.Context, tx *gorm.DB, completion *models.ActivityCompletion) (bool, error) {
	args := m.Called(ctx, tx, completion)
	return args.Bool(0), args.Error(1)
}

func (m *MockActivityRepository) ListCompleted(ctx context.Context, tx *gorm.DB, childID uint) ([]*models.ActivityCompletion, error) {
	args := m.Called(ctx, tx, childID)
	return args.Get(0).([]*models.ActivityCompletion), args.Error(1)
}

func (m *MockActivityRepository) CountCompleted(ctx context.Context, tx *gorm.DB, childID uint) (int64, error) {
	args := m.Called(ctx, tx, childID)
	return args.Get(0).(int64), args.Error(1)
}

// MockRepository groups the mocks; transactions run fn with a nil handle
type MockRepository struct {
	child    *MockChildRepository
	result   *MockResultRepository
	activity *MockActivityRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		child:    &MockChildRepository{},
		result:   &MockResultRepository{},
		activity: &MockActivityRepository{},
	}
}

func (m *MockRepository) Child() repositories.ChildRepository       { return m.child }
func (m *MockRepository) Result() repositories.ResultRepository     { return m.result }
func (m *MockRepository) Activity() repositories.ActivityRepository { return m.activity }

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (m *MockRepository) Ping(ctx context.Context) error { return nil }
func (m *MockRepository) Close() error                   { return nil }

func (m *MockRepository) AssertExpectations(t mock.TestingT) {
	m.child.AssertExpectations(t)
	m.result.AssertExpectations(t)
	m.activity.AssertExpectations(t)
}

// ===== FIXTURES =====

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	repo      *MockRepository
	publisher *events.MockEventPublisher
	validator *validator.Validator
	clock     *fakeClock
}

func newFixture() *fixture {
	return &fixture{
		repo:      NewMockRepository(),
		publisher: events.NewMockEventPublisher(testLogger()),
		validator: validator.New(),
		clock:     &fakeClock{t: time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)},
	}
}

func (f *fixture) notifier() EventNotifier {
	return NewEventNotifier(f.publisher, testLogger())
}

func (f *fixture) resultService() *resultService {
	svc := NewResultService(f.repo, nil, f.notifier(), testLogger(), f.validator, ResultConfig{}).(*resultService)
	svc.now = f.clock.Now
	return svc
}

// childExists registers ExistsByID for id as many times as needed.
func (f *fixture) childExists(id uint, exists bool) {
	f.repo.child.On("ExistsByID", mock.Anything, mock.Anything, id).Return(exists, nil).Maybe()
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
