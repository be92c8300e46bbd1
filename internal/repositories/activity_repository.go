package repositories

import (
	"context"

	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"gorm.io/gorm"
)

// ActivityRepository interface for learning-path completion tracking
type ActivityRepository interface {
	// MarkCompleted is idempotent; created is false when the activity was
	// already complete.
	MarkCompleted(ctx context.Context, tx *gorm.DB, completion *models.ActivityCompletion) (created bool, err error)
	ListCompleted(ctx context.Context, tx *gorm.DB, childID uint) ([]*models.ActivityCompletion, error)
	CountCompleted(ctx context.Context, tx *gorm.DB, childID uint) (int64, error)
}
