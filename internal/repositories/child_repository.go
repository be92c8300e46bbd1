package repositories

import (
	"context"

	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"gorm.io/gorm"
)

// ChildRepository interface for learner profile operations
type ChildRepository interface {
	Create(ctx context.Context, tx *gorm.DB, child *models.Child) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Child, error)
	Update(ctx context.Context, tx *gorm.DB, child *models.Child) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	List(ctx context.Context, tx *gorm.DB, filters ChildFilters) ([]*models.Child, int64, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}
