// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrExpenseNotFound indicates that the expense does not exist or is
	// not owned by the caller. The two cases are deliberately not
	// distinguished.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrInvalidAmount indicates that the amount is not a valid decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a negative expense amount.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrInvalidDate indicates that the date is not a valid YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("date must be a valid YYYY-MM-DD date")
)

// DateLayout is the calendar date format used for expense dates.
//
// Dates are stored and compared as plain strings so that a date entered
// in one timezone reads back as the same calendar day in any other.
const DateLayout = "2006-01-02"

// Expense holds one spend event of an owner.
type Expense struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"` // decimal string with exactly 2 fractional digits
	Date      string    `json:"date"`   // YYYY-MM-DD
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// CreateExpenseParams is the input data to create an expense.
type CreateExpenseParams struct {
	Name   string
	Amount string
	Date   string
	Owner  string
}

// UpdateExpenseParams is the input data to fully replace an expense.
type UpdateExpenseParams struct {
	ID     int32
	Name   string
	Amount string
	Date   string
	Owner  string
}
