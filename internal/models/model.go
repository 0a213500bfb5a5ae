package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is implemented by all records owned by a principal.
type Model interface {
	Export(owner uuid.UUID) (json.RawMessage, error) // All records of the owner for export
}

// Registry lists all owned models in foreign key order: models
// are listed before the models they reference.
var Registry = []Model{
	Expense{},
	Budget{},
	SavingsGoal{},
	Category{},
}

// DefaultModel is the base model for all records.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID = uuid.New()
	return nil
}

// export returns all records of type T that belong to the owner as JSON.
func export[T any](owner uuid.UUID) (json.RawMessage, error) {
	var records []T
	err := DB.Where("owner_id = ?", owner).Order("created_at ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&records)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
