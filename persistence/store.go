package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/npesaras/clens/internal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeletePolicy decides what deleting a record means for an entity
type DeletePolicy int

const (
	// SoftDelete sets deleted_at and keeps the row for auditing
	SoftDelete DeletePolicy = iota
	// HardDelete physically removes the row
	HardDelete
)

// Scope narrows or decorates a query
type Scope = func(*gorm.DB) *gorm.DB

// ByID selects a record by its surrogate key
func ByID(id uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: id})
	}
}

// OrderByID sorts records by their surrogate key
func OrderByID(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
}

// ByColumns selects records matching every column/value pair. Column names are
// quoted so reserved words such as interval are safe to use.
func ByColumns(columns map[string]interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		for name, value := range columns {
			db = db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: name}, Value: value})
		}
		return db
	}
}

// ActiveParent hides records whose parent, referenced through column, is
// missing or soft deleted.
func ActiveParent(column string, parentTable string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Expr{
			SQL: "EXISTS (SELECT 1 FROM ? WHERE ? = ? AND ? IS NULL)",
			Vars: []interface{}{
				clause.Table{Name: parentTable},
				clause.Column{Table: parentTable, Name: "id"},
				clause.Column{Table: clause.CurrentTable, Name: column},
				clause.Column{Table: parentTable, Name: "deleted_at"},
			},
		})
	}
}

// Store implements the create, read, update and delete life cycle shared by
// every entity. Soft deleted rows are never visible through a Store.
type Store[T any] struct {
	db     *gorm.DB
	policy DeletePolicy
	view   []Scope
}

// NewStore creates a Store. view is applied to every read, ie: to preload
// parents or to hide rows whose parents were deleted.
func NewStore[T any](db *gorm.DB, policy DeletePolicy, view ...Scope) *Store[T] {
	return &Store[T]{
		db:     db,
		policy: policy,
		view:   view,
	}
}

func (s *Store[T]) read(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T)).Scopes(s.view...)
}

// Create inserts record and fills in its generated fields
func (s *Store[T]) Create(ctx context.Context, record *T) error {
	return Translate(s.db.WithContext(ctx).Create(record).Error)
}

// Get retrieves the single active record selected by key
func (s *Store[T]) Get(ctx context.Context, key Scope) (*T, error) {
	var found T
	if err := s.read(ctx).Scopes(key).Take(&found).Error; err != nil {
		return nil, Translate(err)
	}
	return &found, nil
}

// List retrieves every active record narrowed by scopes
func (s *Store[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	found := []T{}
	if err := s.read(ctx).Scopes(scopes...).Find(&found).Error; err != nil {
		return nil, Translate(err)
	}
	return found, nil
}

// Exists reports whether any active record matches scopes. The read view is
// not applied.
func (s *Store[T]) Exists(ctx context.Context, scopes ...Scope) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Count(&count).Error; err != nil {
		return false, Translate(err)
	}
	return count > 0, nil
}

// Update applies fields to the record selected by key. Keys are column names.
// updated_at is always refreshed for models that carry it.
func (s *Store[T]) Update(ctx context.Context, key Scope, fields map[string]interface{}) (*T, error) {
	if _, err := s.Get(ctx, key); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}
	if err := s.db.WithContext(ctx).Model(new(T)).Scopes(key).Updates(fields).Error; err != nil {
		return nil, Translate(err)
	}
	return s.Get(ctx, key)
}

// Delete removes the record selected by key according to the Store's policy
// and returns it as it was last seen.
func (s *Store[T]) Delete(ctx context.Context, key Scope) (*T, error) {
	found, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var res *gorm.DB
	switch s.policy {
	case SoftDelete:
		res = db.Model(new(T)).Scopes(key).Updates(map[string]interface{}{
			"deleted_at": db.NowFunc(),
		})
	case HardDelete:
		res = db.Scopes(key).Delete(new(T))
	}
	if res.Error != nil {
		return nil, Translate(res.Error)
	}
	// Lost a race against another delete
	if res.RowsAffected == 0 {
		return nil, internal.ErrRecordNotFound
	}

	if s.policy == SoftDelete {
		if err := db.Unscoped().Model(new(T)).Scopes(key).Take(found).Error; err != nil {
			return nil, Translate(err)
		}
	}
	return found, nil
}

// Translate maps gorm errors onto the storage errors services understand
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return internal.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", internal.ErrDuplicateRecord, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", internal.ErrRecordInUse, err)
	}
	return err
}
