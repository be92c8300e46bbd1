package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/cache"
	"github.com/SAP-F-2025/kumi-math-service/internal/events"
	"github.com/SAP-F-2025/kumi-math-service/internal/learningpath"
	"github.com/SAP-F-2025/kumi-math-service/internal/quiz"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"github.com/SAP-F-2025/kumi-math-service/internal/resources"
	"github.com/SAP-F-2025/kumi-math-service/internal/session"
	"github.com/SAP-F-2025/kumi-math-service/internal/validator"
)

// Dependencies are the infrastructure pieces the services are built from
type Dependencies struct {
	Repo      repositories.Repository
	Cache     cache.CacheService
	Sessions  session.Store
	Publisher events.EventPublisher
	Logger    *slog.Logger
	Validator *validator.Validator

	Bank       *quiz.Bank
	Activities []learningpath.Activity
	Library    *resources.Library

	PracticeThreshold   float64
	AssessmentTimeLimit time.Duration
	ResultCacheTTL      time.Duration
}

// Manager groups every service for the HTTP layer
type Manager struct {
	Child        ChildService
	Assessment   AssessmentService
	Result       ResultService
	LearningPath LearningPathService
	Dashboard    DashboardService
	Resource     ResourceService
	Export       ExportService
}

func NewManager(deps Dependencies) *Manager {
	if deps.Bank == nil {
		deps.Bank = quiz.DefaultBank()
	}
	if deps.Activities == nil {
		deps.Activities = learningpath.DefaultActivities()
	}
	if deps.Library == nil {
		deps.Library = resources.DefaultLibrary()
	}

	notifier := NewEventNotifier(deps.Publisher, deps.Logger)
	results := NewResultService(deps.Repo, deps.Cache, notifier, deps.Logger, deps.Validator, ResultConfig{
		PracticeThreshold: deps.PracticeThreshold,
		CacheTTL:          deps.ResultCacheTTL,
	})

	return &Manager{
		Child:        NewChildService(deps.Repo, deps.Logger, deps.Validator),
		Assessment:   NewAssessmentService(deps.Repo, deps.Sessions, deps.Bank, results, deps.Logger, deps.Validator, deps.AssessmentTimeLimit),
		Result:       results,
		LearningPath: NewLearningPathService(deps.Repo, deps.Activities, notifier, deps.Logger, deps.PracticeThreshold),
		Dashboard:    NewDashboardService(deps.Repo, deps.Activities, deps.Logger, deps.PracticeThreshold),
		Resource:     NewResourceService(deps.Library),
		Export:       NewExportService(results, deps.Bank, deps.Logger),
	}
}
