package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
	"gorm.io/gorm"
)

// Store is the database backed Gateway for a single principal.
type Store struct {
	db    *gorm.DB
	owner uuid.UUID
}

var _ Gateway = (*Store)(nil)

// NewStore returns a Store for the principal.
func NewStore(db *gorm.DB, owner uuid.UUID) *Store {
	return &Store{db: db, owner: owner}
}

// Owner returns the principal the store is scoped to.
func (s *Store) Owner() uuid.UUID {
	return s.owner
}

// modelFor returns an empty model for the collection.
func modelFor(c Collection) (any, error) {
	switch c {
	case Profiles:
		return &models.Profile{}, nil
	case Categories:
		return &models.Category{}, nil
	case Expenses:
		return &models.Expense{}, nil
	case Budgets:
		return &models.Budget{}, nil
	case SavingsGoals:
		return &models.SavingsGoal{}, nil
	}

	return nil, ErrUnknownCollection
}

// scoped returns a query on the collection limited to records of the principal.
func (s *Store) scoped(ctx context.Context, c Collection) (*gorm.DB, any, error) {
	model, err := modelFor(c)
	if err != nil {
		return nil, nil, err
	}

	column := "owner_id"
	if c == Profiles {
		column = "id"
	}

	q := s.db.WithContext(ctx).
		Model(model).
		Where(fmt.Sprintf("%s.%s = ?", c, column), s.owner)

	return q, model, nil
}

func (s *Store) Select(ctx context.Context, q Query, dest any) error {
	tx, _, err := s.scoped(ctx, q.Collection)
	if err != nil {
		return requestError("select", q.Collection, err)
	}

	if len(q.Filter) > 0 {
		tx = tx.Where(q.Filter)
	}

	for _, relation := range q.Expand {
		tx = tx.Preload(relation)
	}

	if q.Order != "" {
		tx = tx.Order(q.Order)
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	return requestError("select", q.Collection, tx.Find(dest).Error)
}

func (s *Store) Insert(ctx context.Context, c Collection, record any) (uuid.UUID, error) {
	id, err := s.stamp(c, record)
	if err != nil {
		return uuid.Nil, requestError("insert", c, err)
	}

	err = s.db.WithContext(ctx).Create(record).Error
	if err != nil {
		return uuid.Nil, requestError("insert", c, err)
	}

	return *id, nil
}

// stamp sets the owner of the record to the principal and returns a pointer
// to the record's ID, which is assigned during creation.
func (s *Store) stamp(c Collection, record any) (*uuid.UUID, error) {
	switch r := record.(type) {
	case *models.Category:
		if c == Categories {
			r.OwnerID = s.owner
			return &r.ID, nil
		}
	case *models.Expense:
		if c == Expenses {
			r.OwnerID = s.owner
			return &r.ID, nil
		}
	case *models.Budget:
		if c == Budgets {
			r.OwnerID = s.owner
			return &r.ID, nil
		}
	case *models.SavingsGoal:
		if c == SavingsGoals {
			r.OwnerID = s.owner
			return &r.ID, nil
		}
	}

	if _, err := modelFor(c); err != nil {
		return nil, err
	}
	return nil, ErrRecordType
}

func (s *Store) Update(ctx context.Context, c Collection, id uuid.UUID, fields map[string]any) error {
	tx, _, err := s.scoped(ctx, c)
	if err != nil {
		return requestError("update", c, err)
	}

	tx = tx.Where(fmt.Sprintf("%s.id = ?", c), id).Updates(protect(fields))
	if tx.Error != nil {
		return requestError("update", c, tx.Error)
	}

	if tx.RowsAffected == 0 {
		return requestError("update", c, notFound(c))
	}

	return nil
}

func (s *Store) CompareAndUpdate(ctx context.Context, c Collection, id uuid.UUID, expected, fields map[string]any) error {
	tx, _, err := s.scoped(ctx, c)
	if err != nil {
		return requestError("update", c, err)
	}

	tx = tx.Where(fmt.Sprintf("%s.id = ?", c), id).Where(expected).Updates(protect(fields))
	if tx.Error != nil {
		return requestError("update", c, tx.Error)
	}

	if tx.RowsAffected > 0 {
		return nil
	}

	// Distinguish a missing record from a changed one
	exists, _, err := s.scoped(ctx, c)
	if err != nil {
		return requestError("update", c, err)
	}

	var count int64
	err = exists.Where(fmt.Sprintf("%s.id = ?", c), id).Count(&count).Error
	if err != nil {
		return requestError("update", c, err)
	}

	if count == 0 {
		return requestError("update", c, notFound(c))
	}

	return requestError("update", c, ErrConflict)
}

func (s *Store) Delete(ctx context.Context, c Collection, id uuid.UUID) error {
	tx, model, err := s.scoped(ctx, c)
	if err != nil {
		return requestError("delete", c, err)
	}

	tx = tx.Where(fmt.Sprintf("%s.id = ?", c), id).Delete(model)
	if tx.Error != nil {
		return requestError("delete", c, tx.Error)
	}

	if tx.RowsAffected == 0 {
		return requestError("delete", c, notFound(c))
	}

	return nil
}

// protect removes the columns that must never be changed by updates.
func protect(fields map[string]any) map[string]any {
	safe := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" || k == "owner_id" || k == "created_at" {
			continue
		}
		safe[k] = v
	}

	return safe
}
