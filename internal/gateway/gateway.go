// Package gateway implements access to the record collections of a principal.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
)

// Collection is a named set of records.
type Collection string

const (
	Profiles     Collection = "profiles"
	Categories   Collection = "categories"
	Expenses     Collection = "expenses"
	Budgets      Collection = "budgets"
	SavingsGoals Collection = "savings_goals"
)

// Singular returns the human readable name of a single record.
func (c Collection) Singular() string {
	name := strings.ReplaceAll(string(c), "_", " ")
	if strings.HasSuffix(name, "ies") {
		return strings.TrimSuffix(name, "ies") + "y"
	}
	return strings.TrimSuffix(name, "s")
}

var (
	ErrConflict          = errors.New("the record has been changed in the meantime, please reload and try again")
	ErrUnknownCollection = errors.New("there is no such collection")
	ErrRecordType        = errors.New("the record does not belong to the collection")
)

// Query selects records from a collection.
type Query struct {
	Collection Collection
	Filter     map[string]any // Column values records must equal
	Order      string         // SQL order clause, e.g. "date DESC"
	Limit      int            // Maximum number of records, 0 for all
	Expand     []string       // Related records to load, e.g. "Category"
}

// Gateway is the request/response contract for record collections.
//
// All operations are scoped to a single principal. Records of other
// principals are neither returned nor modified.
type Gateway interface {
	// Select writes the matching records into dest, which must be a pointer
	// to a slice of the collection's model. No matches is not an error.
	Select(ctx context.Context, q Query, dest any) error

	// Insert stores a new record and returns its ID. The owner of the
	// record is always set to the principal.
	Insert(ctx context.Context, c Collection, record any) (uuid.UUID, error)

	// Update sets the fields of a record.
	Update(ctx context.Context, c Collection, id uuid.UUID, fields map[string]any) error

	// CompareAndUpdate sets the fields of a record only if all expected
	// values still match the stored ones. ErrConflict is returned otherwise.
	CompareAndUpdate(ctx context.Context, c Collection, id uuid.UUID, expected, fields map[string]any) error

	// Delete removes a record permanently.
	Delete(ctx context.Context, c Collection, id uuid.UUID) error
}

// RequestError is returned for every failed gateway operation.
type RequestError struct {
	Op         string
	Collection Collection
	Err        error
}

// Error returns the message of the underlying error so that it can be
// shown to users as is.
func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func requestError(op string, c Collection, err error) error {
	if err == nil {
		return nil
	}

	return &RequestError{Op: op, Collection: c, Err: err}
}

func notFound(c Collection) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, c.Singular())
}

// List returns the records matching the query.
func List[R any](ctx context.Context, g Gateway, q Query) ([]R, error) {
	records := make([]R, 0)
	err := g.Select(ctx, q, &records)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Get returns a single record by its ID.
func Get[R any](ctx context.Context, g Gateway, c Collection, id uuid.UUID, expand ...string) (R, error) {
	var zero R

	records, err := List[R](ctx, g, Query{
		Collection: c,
		Filter:     map[string]any{"id": id},
		Limit:      1,
		Expand:     expand,
	})
	if err != nil {
		return zero, err
	}

	if len(records) == 0 {
		return zero, requestError("select", c, notFound(c))
	}

	return records[0], nil
}
