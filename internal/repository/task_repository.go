package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/models"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, translate("list tasks", err)
	}
	return tasks, nil
}

// ListByCategory returns the tasks that reference the given category.
func (r *TaskRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, translate("list category tasks", err)
	}
	return tasks, nil
}

// GetByID loads the task together with its category. Category stays nil when
// the referenced row no longer exists.
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Preload("Category").First(&task, id).Error; err != nil {
		return nil, translate("find task", err)
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
	return translate("create task", err)
}

// Save overwrites an existing task. It never inserts: a task deleted since it
// was loaded yields ErrNotFound.
func (r *TaskRepository) Save(ctx context.Context, task *models.Task) error {
	res := r.db.WithContext(ctx).Model(task).Select("*").Omit(clause.Associations).Updates(task)
	if res.Error != nil {
		return translate("update task", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update task", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, task *models.Task) error {
	res := r.db.WithContext(ctx).Delete(&models.Task{}, task.ID)
	if res.Error != nil {
		return translate("delete task", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete task", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteAll removes every task in one transaction and returns what was removed.
func (r *TaskRepository) DeleteAll(ctx context.Context) ([]models.Task, error) {
	var deleted []models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").Find(&deleted).Error; err != nil {
			return err
		}
		if len(deleted) == 0 {
			return nil
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Task{}).Error
	})
	if err != nil {
		return nil, translate("delete all tasks", err)
	}
	return deleted, nil
}
