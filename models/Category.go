package models

// Category groups tasks. Its JSON form is the flat {id, name} object.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(128);not null;uniqueIndex"`
}

func (c *Category) String() string { return c.Name }

// IsValid reports whether every required field is set.
func (c *Category) IsValid() bool {
	return c != nil && c.Name != ""
}
