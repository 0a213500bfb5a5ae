package aggregate_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

var today = types.NewDate(2024, time.March, 15)

func expense(amount string, category uuid.UUID, date types.Date) models.Expense {
	return models.Expense{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		CategoryID:   category,
		Amount:       decimal.RequireFromString(amount),
		Description:  "Expense",
		Date:         date,
	}
}

func category(name, color string) models.Category {
	return models.Category{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Name:         name,
		Color:        color,
	}
}
