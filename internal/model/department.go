package model

// Department departments table. Names are unique across all departments.
type Department struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"                                  json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:uq_departments_name" json:"name" validate:"text=100"`
}

// TableName sets the table name.
func (Department) TableName() string { return "departments" }
