package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrUsernameNotUnique = errors.New("a user with this username already exists")
	ErrUsernameEmpty     = errors.New("the username must not be empty")
)

// Category errors
var (
	ErrCategoryNameEmpty = errors.New("the category name must not be empty")
	ErrCategoryNotOwned  = errors.New("the category does not exist")
)

// Transaction errors
var (
	ErrTransactionTypeInvalid = errors.New("the transaction type must be one of IN, OUT")
	ErrAmountOutOfRange       = errors.New("the amount must have at most 8 digits before and 2 digits after the decimal point")
	ErrDateMissing            = errors.New("the transaction date must be set")
	ErrDescriptionEmpty       = errors.New("the transaction description must not be empty")
)

// isDomainError reports if the error is one of the errors defined here
// and can be returned to the user as is.
func isDomainError(err error) bool {
	for _, e := range []error{
		ErrGeneral,
		ErrResourceNotFound,
		ErrUsernameNotUnique,
		ErrUsernameEmpty,
		ErrCategoryNameEmpty,
		ErrCategoryNotOwned,
		ErrTransactionTypeInvalid,
		ErrAmountOutOfRange,
		ErrDateMissing,
		ErrDescriptionEmpty,
	} {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
