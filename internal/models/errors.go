package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// ValidationError is returned when a record is malformed or misses
// required fields.
type ValidationError struct {
	Field  string // json name of the offending field
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError returns a ValidationError for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

var (
	ErrEmailInUse            = NewValidationError("email", "this email address is already registered")
	ErrEmailEmpty            = NewValidationError("email", "the email address must not be empty")
	ErrCategoryNameEmpty     = NewValidationError("name", "the category name must not be empty")
	ErrCategoryInUse         = NewValidationError("categoryId", "the category is still used by expenses or budgets")
	ErrExpenseAmountInvalid  = NewValidationError("amount", "expense amounts must be larger than zero")
	ErrDescriptionEmpty      = NewValidationError("description", "the description must not be empty")
	ErrDateMissing           = NewValidationError("date", "the date must be set")
	ErrBudgetAmountInvalid   = NewValidationError("amount", "budget amounts must be larger than zero")
	ErrBudgetPeriodInvalid   = NewValidationError("period", "the period must be one of 'weekly' or 'monthly'")
	ErrStartDateMissing      = NewValidationError("startDate", "the start date must be set")
	ErrGoalTitleEmpty        = NewValidationError("title", "the goal title must not be empty")
	ErrGoalTargetInvalid     = NewValidationError("targetAmount", "goal target amounts must be larger than zero")
	ErrGoalCurrentNegative   = NewValidationError("currentAmount", "the current amount of a goal must not be negative")
	ErrGoalTargetDateMissing = NewValidationError("targetDate", "the target date must be set")
)
