package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"gorm.io/gorm"
)

type ResultPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewResultPostgreSQL(db *gorm.DB) repositories.ResultRepository {
	return &ResultPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

// Create inserts the result; gorm saves the Concepts association in the same statement batch.
func (r *ResultPostgreSQL) Create(ctx context.Context, tx *gorm.DB, result *models.AssessmentResult) error {
	return getDB(r.db, tx).WithContext(ctx).Create(result).Error
}

func (r *ResultPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	if err := r.withConcepts(ctx, tx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultPostgreSQL) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	if err := r.withConcepts(ctx, tx).Where("session_id = ?", sessionID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultPostgreSQL) GetLatestByChild(ctx context.Context, tx *gorm.DB, childID uint) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	if err := r.withConcepts(ctx, tx).
		Where("child_id = ?", childID).
		Order("submitted_at DESC").
		Order("id DESC").
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultPostgreSQL) ListByChild(ctx context.Context, tx *gorm.DB, childID uint, filters repositories.ResultFilters) ([]*models.AssessmentResult, int64, error) {
	query := getDB(r.db, tx).WithContext(ctx).Model(&models.AssessmentResult{}).Where("child_id = ?", childID)
	if filters.DateFrom != nil {
		query = query.Where("submitted_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("submitted_at <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.helpers.ApplyPaginationAndSort(query, "submitted_at", "desc",
		[]string{"submitted_at"}, "submitted_at", filters.Limit, filters.Offset)

	var results []*models.AssessmentResult
	if err := query.Preload("Concepts", orderByPosition).Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *ResultPostgreSQL) GetChildStats(ctx context.Context, tx *gorm.DB, childID uint) (*repositories.ChildResultStats, error) {
	db := getDB(r.db, tx).WithContext(ctx)

	var agg struct {
		Taken int
		Avg   float64
		Best  float64
		Last  *time.Time
	}
	if err := db.Model(&models.AssessmentResult{}).
		Select("COUNT(*) AS taken, COALESCE(AVG(overall_score), 0) AS avg, COALESCE(MAX(overall_score), 0) AS best, MAX(submitted_at) AS last").
		Where("child_id = ?", childID).
		Scan(&agg).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate results: %w", err)
	}

	var levels []struct {
		MasteryLevel mastery.MasteryLevel
		Count        int
	}
	if err := db.Model(&models.ConceptScore{}).
		Select("concept_scores.mastery_level, COUNT(*) AS count").
		Joins("JOIN assessment_results ON assessment_results.id = concept_scores.result_id").
		Where("assessment_results.child_id = ?", childID).
		Group("concept_scores.mastery_level").
		Scan(&levels).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate mastery levels: %w", err)
	}

	stats := &repositories.ChildResultStats{
		ChildID:          childID,
		AssessmentsTaken: agg.Taken,
		AverageScore:     agg.Avg,
		BestScore:        agg.Best,
		LastSubmittedAt:  agg.Last,
		LevelBreakdown:   make(map[mastery.MasteryLevel]int),
	}
	for _, l := range levels {
		stats.LevelBreakdown[l.MasteryLevel] = l.Count
	}
	return stats, nil
}

func (r *ResultPostgreSQL) withConcepts(ctx context.Context, tx *gorm.DB) *gorm.DB {
	return getDB(r.db, tx).WithContext(ctx).Preload("Concepts", orderByPosition)
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
