package repositories

import (
	"context"

	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"gorm.io/gorm"
)

// ResultRepository interface for scored assessment results
type ResultRepository interface {
	// Create stores the result together with its concept rows.
	Create(ctx context.Context, tx *gorm.DB, result *models.AssessmentResult) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AssessmentResult, error)
	GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) (*models.AssessmentResult, error)
	GetLatestByChild(ctx context.Context, tx *gorm.DB, childID uint) (*models.AssessmentResult, error)
	ListByChild(ctx context.Context, tx *gorm.DB, childID uint, filters ResultFilters) ([]*models.AssessmentResult, int64, error)
	GetChildStats(ctx context.Context, tx *gorm.DB, childID uint) (*ChildResultStats, error)
}
