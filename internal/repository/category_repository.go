package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard/models"
)

// CategoryRepository manages task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, translate("list categories", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate("find category", err)
	}
	return &category, nil
}

// Lookup returns nil without an error when no category has the given id.
func (r *CategoryRepository) Lookup(ctx context.Context, id uint) (*models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&categories).Error; err != nil {
		return nil, translate("lookup category", err)
	}
	if len(categories) == 0 {
		return nil, nil
	}
	return &categories[0], nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return translate("create category", r.db.WithContext(ctx).Create(category).Error)
}

// Save overwrites an existing category and reports ErrNotFound if it is gone.
func (r *CategoryRepository) Save(ctx context.Context, category *models.Category) error {
	res := r.db.WithContext(ctx).Model(category).Select("*").Updates(category)
	if res.Error != nil {
		return translate("update category", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update category", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, category *models.Category) error {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, category.ID)
	if res.Error != nil {
		return translate("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete category", gorm.ErrRecordNotFound)
	}
	return nil
}
