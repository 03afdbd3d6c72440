package domain

import (
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

// Context is the record kind a field definition or record belongs to.
type Context string

const (
	ContextExpense Context = "expense"
	ContextIncome  Context = "income"
)

func (c Context) String() string {
	return string(c)
}

func (c Context) IsValid() bool {
	return c == ContextExpense || c == ContextIncome
}

func ParseContext(value string) (Context, error) {
	context := Context(value)
	if !context.IsValid() {
		return "", shareddomain.NewValidationError("context", "must be expense or income")
	}
	return context, nil
}
