package views

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	ErrCategoryMissing       = models.NewValidationError("categoryId", "a category must be selected")
	ErrProgressAmountInvalid = models.NewValidationError("amount", "progress amounts must be larger than zero")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidationErrorToText returns a human readable message for a failed
// validation of a field.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #6b7280", e.Field())
	case "url":
		return fmt.Sprintf("%s must be a URL", e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// check validates a form. The first failing field is reported with the
// error from known if there is one for it.
func check(form any, known map[string]error) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	field := errs[0]
	if e, ok := known[field.Field()]; ok {
		return e
	}

	return models.NewValidationError(field.Field(), ValidationErrorToText(field))
}

// CategoryForm is the input for a new category.
type CategoryForm struct {
	Name  string `json:"name" validate:"required,max=50" example:"Groceries"`
	Color string `json:"color" validate:"omitempty,hexcolor" example:"#22c55e"`
	Icon  string `json:"icon" validate:"max=50" example:"shopping-cart"`
}

func (f *CategoryForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Color = strings.TrimSpace(f.Color)
	f.Icon = strings.TrimSpace(f.Icon)

	return check(f, map[string]error{"name": models.ErrCategoryNameEmpty})
}

// Model returns the category for the form.
func (f CategoryForm) Model() models.Category {
	return models.Category{
		Name:  f.Name,
		Color: f.Color,
		Icon:  f.Icon,
	}
}

// ExpenseForm is the input for a new expense.
type ExpenseForm struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"12.50"`
	Description string          `json:"description" validate:"required" example:"Lunch"`
	Notes       string          `json:"notes" example:"with the team"`
	CategoryID  uuid.UUID       `json:"categoryId" validate:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Date        types.Date      `json:"date" validate:"required" swaggertype:"string" example:"2024-03-15"`
}

func (f *ExpenseForm) Validate() error {
	f.Description = strings.TrimSpace(f.Description)
	f.Notes = strings.TrimSpace(f.Notes)

	if !f.Amount.IsPositive() {
		return models.ErrExpenseAmountInvalid
	}

	return check(f, map[string]error{
		"description": models.ErrDescriptionEmpty,
		"categoryId":  ErrCategoryMissing,
		"date":        models.ErrDateMissing,
	})
}

// Model returns the expense for the form.
func (f ExpenseForm) Model() models.Expense {
	return models.Expense{
		Amount:      f.Amount,
		Description: f.Description,
		Notes:       f.Notes,
		CategoryID:  f.CategoryID,
		Date:        f.Date,
	}
}

// BudgetForm is the input for a new budget. The end date is computed
// from the start date and the period.
type BudgetForm struct {
	CategoryID uuid.UUID       `json:"categoryId" validate:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"400"`
	Period     types.Period    `json:"period" validate:"oneof=weekly monthly" example:"monthly"`
	StartDate  types.Date      `json:"startDate" validate:"required" swaggertype:"string" example:"2024-03-01"`
}

func (f *BudgetForm) Validate() error {
	if !f.Amount.IsPositive() {
		return models.ErrBudgetAmountInvalid
	}

	return check(f, map[string]error{
		"categoryId": ErrCategoryMissing,
		"period":     models.ErrBudgetPeriodInvalid,
		"startDate":  models.ErrStartDateMissing,
	})
}

// Model returns the budget for the form.
func (f BudgetForm) Model() models.Budget {
	return models.Budget{
		CategoryID: f.CategoryID,
		Amount:     f.Amount,
		Period:     f.Period,
		StartDate:  f.StartDate,
	}
}

// GoalForm is the input for a new savings goal.
type GoalForm struct {
	Title         string          `json:"title" validate:"required,max=100" example:"New bike"`
	TargetAmount  decimal.Decimal `json:"targetAmount" swaggertype:"string" example:"1000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" swaggertype:"string" example:"200"` // Defaults to 0
	TargetDate    types.Date      `json:"targetDate" validate:"required" swaggertype:"string" example:"2024-12-24"`
}

func (f *GoalForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)

	if !f.TargetAmount.IsPositive() {
		return models.ErrGoalTargetInvalid
	}

	if f.CurrentAmount.IsNegative() {
		return models.ErrGoalCurrentNegative
	}

	return check(f, map[string]error{
		"title":      models.ErrGoalTitleEmpty,
		"targetDate": models.ErrGoalTargetDateMissing,
	})
}

// Model returns the savings goal for the form.
func (f GoalForm) Model() models.SavingsGoal {
	return models.SavingsGoal{
		Title:         f.Title,
		TargetAmount:  f.TargetAmount,
		CurrentAmount: f.CurrentAmount,
		TargetDate:    f.TargetDate,
	}
}

// ProfileForm is the input for an update of a profile. Fields that are
// nil are not changed.
type ProfileForm struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=100" example:"Jane"`
	AvatarURL   *string `json:"avatarUrl" validate:"omitempty,url" example:"https://example.com/avatars/jane.png"`
}

func (f *ProfileForm) Validate() error {
	if f.DisplayName != nil {
		*f.DisplayName = strings.TrimSpace(*f.DisplayName)
	}

	if f.AvatarURL != nil {
		*f.AvatarURL = strings.TrimSpace(*f.AvatarURL)
	}

	return check(f, nil)
}

// Fields returns the database columns to update.
func (f ProfileForm) Fields() map[string]any {
	fields := make(map[string]any)
	if f.DisplayName != nil {
		fields["display_name"] = *f.DisplayName
	}

	if f.AvatarURL != nil {
		fields["avatar_url"] = *f.AvatarURL
	}

	return fields
}
