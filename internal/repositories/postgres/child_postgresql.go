package postgres

import (
	"context"

	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"gorm.io/gorm"
)

var childSortColumns = []string{"created_at", "name", "age"}

type ChildPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewChildPostgreSQL(db *gorm.DB) repositories.ChildRepository {
	return &ChildPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

func (c *ChildPostgreSQL) Create(ctx context.Context, tx *gorm.DB, child *models.Child) error {
	return getDB(c.db, tx).WithContext(ctx).Create(child).Error
}

func (c *ChildPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Child, error) {
	var child models.Child
	if err := getDB(c.db, tx).WithContext(ctx).First(&child, id).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

func (c *ChildPostgreSQL) Update(ctx context.Context, tx *gorm.DB, child *models.Child) error {
	return getDB(c.db, tx).WithContext(ctx).Save(child).Error
}

func (c *ChildPostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return getDB(c.db, tx).WithContext(ctx).Delete(&models.Child{}, id).Error
}

func (c *ChildPostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.ChildFilters) ([]*models.Child, int64, error) {
	query := getDB(c.db, tx).WithContext(ctx).Model(&models.Child{})
	if filters.Grade != "" {
		query = query.Where("grade = ?", filters.Grade)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = c.helpers.ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder,
		childSortColumns, "created_at", filters.Limit, filters.Offset)

	var children []*models.Child
	if err := query.Find(&children).Error; err != nil {
		return nil, 0, err
	}
	return children, total, nil
}

func (c *ChildPostgreSQL) ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := getDB(c.db, tx).WithContext(ctx).Model(&models.Child{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
