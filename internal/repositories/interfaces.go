package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"gorm.io/gorm"
)

// Repository groups the persistence ports the services depend on
type Repository interface {
	Child() ChildRepository
	Result() ResultRepository
	Activity() ActivityRepository

	// WithTransaction runs fn inside a single database transaction. The tx
	// handle must be passed to every repository call made inside fn.
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Ping(ctx context.Context) error
	Close() error
}

// ===== SHARED FILTER STRUCTS =====

type ChildFilters struct {
	Grade     string `json:"grade"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
	SortBy    string `json:"sort_by"`    // "created_at", "name", "age"
	SortOrder string `json:"sort_order"` // "asc", "desc"
}

type ResultFilters struct {
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

type ChildResultStats struct {
	ChildID          uint                         `json:"child_id"`
	AssessmentsTaken int                          `json:"assessments_taken"`
	AverageScore     float64                      `json:"average_score"`
	BestScore        float64                      `json:"best_score"`
	LastSubmittedAt  *time.Time                   `json:"last_submitted_at"`
	LevelBreakdown   map[mastery.MasteryLevel]int `json:"level_breakdown"`
}

// IsNotFoundError reports whether err means the record does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
