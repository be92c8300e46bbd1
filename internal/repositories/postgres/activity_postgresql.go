package postgres

import (
	"context"

	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityPostgreSQL struct {
	db *gorm.DB
}

func NewActivityPostgreSQL(db *gorm.DB) repositories.ActivityRepository {
	return &ActivityPostgreSQL{db: db}
}

func (a *ActivityPostgreSQL) MarkCompleted(ctx context.Context, tx *gorm.DB, completion *models.ActivityCompletion) (bool, error) {
	res := getDB(a.db, tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "child_id"}, {Name: "activity_id"}},
			DoNothing: true,
		}).
		Create(completion)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (a *ActivityPostgreSQL) ListCompleted(ctx context.Context, tx *gorm.DB, childID uint) ([]*models.ActivityCompletion, error) {
	var completions []*models.ActivityCompletion
	if err := getDB(a.db, tx).WithContext(ctx).
		Where("child_id = ?", childID).
		Order("completed_at ASC").
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

func (a *ActivityPostgreSQL) CountCompleted(ctx context.Context, tx *gorm.DB, childID uint) (int64, error) {
	var count int64
	if err := getDB(a.db, tx).WithContext(ctx).Model(&models.ActivityCompletion{}).
		Where("child_id = ?", childID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
