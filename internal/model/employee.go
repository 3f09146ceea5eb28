package model

import "github.com/shopspring/decimal"

// Employee employees table.
type Employee struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"        json:"id"`
	Name         string          `gorm:"type:varchar(100);not null"      json:"name"          validate:"text=100"`
	Salary       decimal.Decimal `gorm:"type:numeric(10,2);not null"     json:"salary"        validate:"-"`
	DepartmentID int64           `gorm:"not null;index"                  json:"department_id" validate:"gt=0"`
	RoleID       int64           `gorm:"not null;index"                  json:"role_id"       validate:"gt=0"`

	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT" json:"department,omitempty" validate:"-"`
	Role       *Role       `gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"             json:"role,omitempty"       validate:"-"`
}

// TableName sets the table name.
func (Employee) TableName() string { return "employees" }
