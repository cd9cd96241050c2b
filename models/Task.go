package models

// Task is a single to-do item. Category is only used to resolve and
// validate the owning category; it is never serialized.
type Task struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"type:varchar(128);not null;uniqueIndex"`
	Status     bool      `json:"status" gorm:"not null;default:false"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	Category   *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// NewTask builds a task in the given category. A nil category is accepted
// here and rejected later by IsValid.
func NewTask(name string, category *Category, status bool) *Task {
	t := &Task{Name: name, Status: status}
	t.SetCategory(category)
	return t
}

func (t *Task) String() string { return t.Name }

// SetCategory attaches the category and keeps CategoryID in step with it.
func (t *Task) SetCategory(c *Category) {
	t.Category = c
	if c != nil {
		t.CategoryID = c.ID
	}
}

// IsValid reports whether the name and the owning category are set.
func (t *Task) IsValid() bool {
	return t != nil && t.Name != "" && t.Category != nil && t.Category.ID != 0
}
