package model

// Role roles table. Names are unique within the owning department only.
type Role struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"                                              json:"id"`
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex:uq_roles_department_name,priority:2" json:"name"          validate:"text=100"`
	DepartmentID int64  `gorm:"not null;uniqueIndex:uq_roles_department_name,priority:1"               json:"department_id" validate:"gt=0"`

	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT" json:"department,omitempty" validate:"-"`
}

// TableName sets the table name.
func (Role) TableName() string { return "roles" }
