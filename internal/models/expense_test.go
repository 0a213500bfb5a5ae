package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseCreateValidation() {
	profile := suite.createTestProfile(models.Profile{})
	other := suite.createTestProfile(models.Profile{})
	category := suite.createTestCategory(models.Category{OwnerID: profile.ID})
	foreignCategory := suite.createTestCategory(models.Category{OwnerID: other.ID})
	today := types.DateOf(time.Now())

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"Valid", models.Expense{OwnerID: profile.ID, CategoryID: category.ID, Amount: decimal.NewFromFloat(4.2), Description: "Tea", Date: today}, nil},
		{"Zero amount", models.Expense{OwnerID: profile.ID, CategoryID: category.ID, Description: "Tea", Date: today}, models.ErrExpenseAmountInvalid},
		{"Negative amount", models.Expense{OwnerID: profile.ID, CategoryID: category.ID, Amount: decimal.NewFromFloat(-1), Description: "Tea", Date: today}, models.ErrExpenseAmountInvalid},
		{"No description", models.Expense{OwnerID: profile.ID, CategoryID: category.ID, Amount: decimal.NewFromFloat(1), Description: "   ", Date: today}, models.ErrDescriptionEmpty},
		{"No date", models.Expense{OwnerID: profile.ID, CategoryID: category.ID, Amount: decimal.NewFromFloat(1), Description: "Tea"}, models.ErrDateMissing},
		{"Unknown category", models.Expense{OwnerID: profile.ID, CategoryID: uuid.New(), Amount: decimal.NewFromFloat(1), Description: "Tea", Date: today}, models.ErrResourceNotFound},
		{"Category of other profile", models.Expense{OwnerID: profile.ID, CategoryID: foreignCategory.ID, Amount: decimal.NewFromFloat(1), Description: "Tea", Date: today}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.expense).Error
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseAmountRoundTrip() {
	profile := suite.createTestProfile(models.Profile{})
	category := suite.createTestCategory(models.Category{OwnerID: profile.ID})

	amount := decimal.RequireFromString("19.99")
	expense := suite.createTestExpense(models.Expense{OwnerID: profile.ID, CategoryID: category.ID, Amount: amount})

	var reloaded []models.Expense
	require.Nil(suite.T(), models.DB.Where(&models.Expense{OwnerID: profile.ID}).Find(&reloaded).Error)
	require.Len(suite.T(), reloaded, 1)
	assert.True(suite.T(), amount.Equal(reloaded[0].Amount), "Amount changed from %s to %s", amount, reloaded[0].Amount)
	assert.Equal(suite.T(), expense.Date, reloaded[0].Date)
}

func (suite *TestSuiteStandard) TestExpenseAmountCheckOnUpdate() {
	profile := suite.createTestProfile(models.Profile{})
	category := suite.createTestCategory(models.Category{OwnerID: profile.ID})
	expense := suite.createTestExpense(models.Expense{OwnerID: profile.ID, CategoryID: category.ID})

	err := models.DB.Model(&expense).Updates(map[string]any{"amount": decimal.NewFromFloat(-3)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpenseAmountInvalid)
}

func (suite *TestSuiteStandard) TestExpenseExport() {
	profile := suite.createTestProfile(models.Profile{})
	other := suite.createTestProfile(models.Profile{})
	category := suite.createTestCategory(models.Category{OwnerID: profile.ID})
	otherCategory := suite.createTestCategory(models.Category{OwnerID: other.ID})

	for range 2 {
		_ = suite.createTestExpense(models.Expense{OwnerID: profile.ID, CategoryID: category.ID})
	}
	_ = suite.createTestExpense(models.Expense{OwnerID: other.ID, CategoryID: otherCategory.ID})

	raw, err := models.Expense{}.Export(profile.ID)
	require.Nil(suite.T(), err, "expense export failed")

	var expenses []models.Expense
	require.Nil(suite.T(), json.Unmarshal(raw, &expenses), "JSON could not be unmarshaled")
	require.Len(suite.T(), expenses, 2, "Number of expenses in export is wrong")
}
