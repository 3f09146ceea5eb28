package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	pkgerrors "task-tracker/pkg/errors"
)

// ── Entity kinds ──

// reference is one foreign key held by an entity, keyed by the constraint
// name the migrations give it.
type reference struct {
	constraint string
	field      string
	entity     string
	id         int64
}

// entityKind is the per-entity constraint table the write pipeline runs on.
type entityKind[T any] struct {
	label     string // used in id and conflict messages
	textLabel string // used in text-field messages, defaults to label
	table     string

	id     func(*T) int64
	text   func(*T) []*string
	check  func(*T, *pkgerrors.ValidationError)
	unique func(*T) UniqueQuery
	refs   func(*T) []reference
	before func(context.Context, *T) error

	conflictSuffix string
	preload        []string
}

func (k *entityKind[T]) fieldLabel() string {
	if k.textLabel != "" {
		return k.textLabel
	}
	return k.label
}

func (k *entityKind[T]) conflict(q UniqueQuery) error {
	return &pkgerrors.ConflictError{
		Entity:  k.label,
		Field:   q.Column,
		Value:   q.Value,
		Message: fmt.Sprintf("%s %s [%s] already exists%s.", k.label, q.Column, q.Value, k.conflictSuffix),
	}
}

// translateWrite reclassifies a failed insert or update.
func (k *entityKind[T]) translateWrite(op string, e *T, err error) error {
	if isUniqueViolation(err) {
		if k.unique != nil {
			return k.conflict(k.unique(e))
		}
		return &pkgerrors.ConflictError{Entity: k.label, Message: fmt.Sprintf("%s already exists.", k.label)}
	}
	if ok, constraint := foreignKeyViolation(err); ok {
		if k.refs != nil {
			for _, ref := range k.refs(e) {
				if ref.constraint == constraint {
					return &pkgerrors.InvalidReferenceError{Entity: ref.entity, Field: ref.field, IDs: []int64{ref.id}}
				}
			}
		}
		return &pkgerrors.InvalidReferenceError{Entity: "parent"}
	}
	return pkgerrors.Store(op+" "+k.table, err)
}

// translateDelete reclassifies a failed delete. A foreign key violation means
// dependents still point at the row.
func (k *entityKind[T]) translateDelete(id int64, err error) error {
	if ok, _ := foreignKeyViolation(err); ok {
		return &pkgerrors.ConflictError{
			Entity:  k.label,
			Message: fmt.Sprintf("%s %d is still referenced by other records.", k.label, id),
		}
	}
	return pkgerrors.Store("delete "+k.table, err)
}

func (k *entityKind[T]) translateRead(op string, id int64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &pkgerrors.NotFoundError{Entity: k.label, ID: id}
	}
	return pkgerrors.Store(op+" "+k.table, err)
}

// ── Write pipeline ──

// writePipeline runs normalize → validate → uniqueness check → before hook.
// Nothing here mutates the store.
type writePipeline[T any] struct {
	kind   *entityKind[T]
	unique UniquenessChecker
}

// prepare readies e for persisting. excludeID is the id of the row being
// updated, or 0 on create.
func (p *writePipeline[T]) prepare(ctx context.Context, e *T, excludeID int64) error {
	k := p.kind
	normalizeFields(k.text(e))

	verr := &pkgerrors.ValidationError{}
	if err := validateStruct(k.fieldLabel(), e, verr); err != nil {
		return pkgerrors.Store("validate "+k.table, err)
	}
	if k.check != nil {
		k.check(e, verr)
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if k.unique != nil {
		q := k.unique(e)
		q.Table = k.table
		q.ExcludeID = excludeID
		taken, err := p.unique.Exists(ctx, q)
		if err != nil {
			return pkgerrors.Store("check "+k.table, err)
		}
		if taken {
			return k.conflict(q)
		}
	}

	if k.before != nil {
		return k.before(ctx, e)
	}
	return nil
}

// ── Base repository ──

// baseRepo carries the operations shared by every entity repository. Its
// exported methods are promoted into the per-entity repositories.
type baseRepo[T any] struct {
	db *gorm.DB
	writePipeline[T]
}

func newBaseRepo[T any](db *gorm.DB, kind *entityKind[T]) *baseRepo[T] {
	return &baseRepo[T]{
		db:            db,
		writePipeline: writePipeline[T]{kind: kind, unique: NewUniquenessChecker(db)},
	}
}

// Create persists e and fills in its generated id.
func (r *baseRepo[T]) Create(ctx context.Context, e *T) error {
	if err := r.prepare(ctx, e, 0); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error; err != nil {
		return r.kind.translateWrite("create", e, err)
	}
	return nil
}

// Update replaces the mutable fields of an existing row. Callers confirm the
// row exists first; this path does not distinguish "not found".
func (r *baseRepo[T]) Update(ctx context.Context, e *T) error {
	if err := r.prepare(ctx, e, r.kind.id(e)); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error; err != nil {
		return r.kind.translateWrite("update", e, err)
	}
	return nil
}

// Delete removes the row with id. An unknown id is a no-op.
func (r *baseRepo[T]) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(new(T), id).Error; err != nil {
		return r.kind.translateDelete(id, err)
	}
	return nil
}

// GetByID loads one row with its parents. Non-positive ids fail before any
// store access.
func (r *baseRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if id < 1 {
		return nil, pkgerrors.NewIDRangeError(r.kind.label, id)
	}
	var e T
	if err := r.preloaded(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, r.kind.translateRead("get", id, err)
	}
	return &e, nil
}

// List returns every row sorted by name.
func (r *baseRepo[T]) List(ctx context.Context) ([]T, error) {
	return r.list(ctx)
}

func (r *baseRepo[T]) Exists(ctx context.Context, id int64) (bool, error) {
	if id < 1 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, pkgerrors.Store("exists "+r.kind.table, err)
	}
	return count > 0, nil
}

func (r *baseRepo[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, pkgerrors.Store("count "+r.kind.table, err)
	}
	return count, nil
}

func (r *baseRepo[T]) preloaded(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, rel := range r.kind.preload {
		tx = tx.Preload(rel)
	}
	return tx
}

func (r *baseRepo[T]) list(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var out []T
	err := r.preloaded(ctx).
		Scopes(scopes...).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		return nil, pkgerrors.Store("list "+r.kind.table, err)
	}
	return out, nil
}

// nameExists runs the uniqueness checker outside a write, for callers that
// want to probe a name up front.
func (r *baseRepo[T]) nameExists(ctx context.Context, q UniqueQuery) (bool, error) {
	q.Table = r.kind.table
	taken, err := r.unique.Exists(ctx, q)
	if err != nil {
		return false, pkgerrors.Store("check "+r.kind.table, err)
	}
	return taken, nil
}

// ── Scopes ──

func whereColumn(column string, value any) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}

func whereTrimmed(column, value string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("TRIM(?) = ?", clause.Column{Name: column}, Normalize(&value))
	}
}
