package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	db       *gorm.DB
	child    repositories.ChildRepository
	result   repositories.ResultRepository
	activity repositories.ActivityRepository
}

// NewRepository wires every PostgreSQL repository over db.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		db:       db,
		child:    NewChildPostgreSQL(db),
		result:   NewResultPostgreSQL(db),
		activity: NewActivityPostgreSQL(db),
	}
}

func (r *repository) Child() repositories.ChildRepository       { return r.child }
func (r *repository) Result() repositories.ResultRepository     { return r.result }
func (r *repository) Activity() repositories.ActivityRepository { return r.activity }

func (r *repository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
