package views_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/session"
	"github.com/pocketbook-app/backend/internal/views"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseListFilter() {
	fun := suite.createTestCategory("Fun")

	suite.createTestExpense("4.5", suite.category.ID, today, "Morning Coffee")
	suite.createTestExpense("12", suite.category.ID, today.AddDays(-1), "Groceries")
	suite.createTestExpense("8", fun.ID, today.AddDays(-2), "Irish coffee")

	v := views.NewExpenseList(suite.store, suite.session, suite.clock())
	suite.Require().Nil(v.Load(context.Background()))

	suite.Assert().Len(v.Expenses(), 3)
	suite.Assert().Len(v.Categories(), len(models.DefaultCategories)+1)
	suite.Assert().Len(v.Visible(), 3)

	v.SetFilter("COFFEE", uuid.Nil)
	suite.Assert().Len(v.Visible(), 2)

	v.SetFilter("coffee", fun.ID)
	visible := v.Visible()
	suite.Require().Len(visible, 1)
	suite.Assert().Equal("Irish coffee", visible[0].Description)

	v.SetFilter("", suite.category.ID)
	suite.Assert().Len(v.Visible(), 2)
}

func (suite *TestSuiteStandard) TestExpenseListCreate() {
	suite.createTestExpense("12", suite.category.ID, today.AddDays(-1), "Groceries")

	v := views.NewExpenseList(suite.store, suite.session, suite.clock())
	suite.Require().Nil(v.Load(context.Background()))

	created, err := v.Create(context.Background(), views.ExpenseForm{
		Amount:      decimal.RequireFromString("19.99"),
		Description: "  Dinner ",
		CategoryID:  suite.category.ID,
		Date:        today,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("Dinner", created.Description)
	suite.Assert().Equal(suite.profile.ID, created.OwnerID)
	suite.Require().NotNil(created.Category)
	suite.Assert().Equal(suite.category.Name, created.Category.Name)

	expenses := v.Expenses()
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal(created.ID, expenses[0].ID, "new expense is not first")

	// The filter applies to new expenses
	v.SetFilter("dinner", uuid.Nil)
	suite.Assert().Len(v.Visible(), 1)
}

func (suite *TestSuiteStandard) TestExpenseListCreateErrors() {
	v := views.NewExpenseList(suite.store, suite.session, suite.clock())

	_, err := v.Create(context.Background(), views.ExpenseForm{
		Amount:      decimal.Zero,
		Description: "Dinner",
		CategoryID:  suite.category.ID,
		Date:        today,
	})
	suite.Assert().ErrorIs(err, models.ErrExpenseAmountInvalid)

	// Categories of other principals are not found
	other := models.Profile{Email: "other@example.com"}
	suite.Require().Nil(models.DB.Create(&other).Error)
	var foreign models.Category
	suite.Require().Nil(models.DB.Where(&models.Category{OwnerID: other.ID}).First(&foreign).Error)

	_, err = v.Create(context.Background(), views.ExpenseForm{
		Amount:      decimal.NewFromInt(5),
		Description: "Dinner",
		CategoryID:  foreign.ID,
		Date:        today,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Empty(v.Expenses())
}

func (suite *TestSuiteStandard) TestExpenseListDelete() {
	first := suite.createTestExpense("4.5", suite.category.ID, today, "Coffee")
	second := suite.createTestExpense("12", suite.category.ID, today, "Groceries")

	v := views.NewExpenseList(suite.store, suite.session, suite.clock())
	suite.Require().Nil(v.Load(context.Background()))
	v.SetFilter("coffee", uuid.Nil)

	suite.Require().Nil(v.Delete(context.Background(), first.ID))

	expenses := v.Expenses()
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(second.ID, expenses[0].ID)
	suite.Assert().Empty(v.Visible())

	err := v.Delete(context.Background(), first.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseListSignedOut() {
	suite.session.Resolve(uuid.Nil)
	v := views.NewExpenseList(suite.store, suite.session, suite.clock())

	_, err := v.Create(context.Background(), views.ExpenseForm{
		Amount:      decimal.NewFromInt(5),
		Description: "Dinner",
		CategoryID:  suite.category.ID,
		Date:        today,
	})
	suite.Assert().ErrorIs(err, session.ErrNoPrincipal)
}
