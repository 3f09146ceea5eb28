package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope limits a uniqueness check to the children of one parent row.
type Scope struct {
	Column string
	Value  any
}

// UniqueQuery asks whether Value is already taken in Table.Column.
// Stored values are compared trimmed. ExcludeID > 0 removes the row being
// updated from the comparison set.
type UniqueQuery struct {
	Table     string
	Column    string
	Value     string
	Scope     *Scope
	ExcludeID int64
}

// UniquenessChecker is the optimistic pre-check run before every write.
// The unique indexes created by the migrations remain authoritative.
type UniquenessChecker interface {
	Exists(ctx context.Context, q UniqueQuery) (bool, error)
}

// gormUniquenessChecker is the GORM implementation of UniquenessChecker.
type gormUniquenessChecker struct {
	db *gorm.DB
}

// NewUniquenessChecker creates a UniquenessChecker backed by db.
func NewUniquenessChecker(db *gorm.DB) UniquenessChecker {
	return &gormUniquenessChecker{db: db}
}

func (c *gormUniquenessChecker) Exists(ctx context.Context, q UniqueQuery) (bool, error) {
	tx := c.db.WithContext(ctx).
		Table(q.Table).
		Where("TRIM(?) = ?", clause.Column{Name: q.Column}, strings.TrimSpace(q.Value))
	if q.Scope != nil {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: q.Scope.Column}, Value: q.Scope.Value})
	}
	if q.ExcludeID > 0 {
		tx = tx.Where("id <> ?", q.ExcludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
