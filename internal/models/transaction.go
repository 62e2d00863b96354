package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/financeflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "IN"
	TransactionTypeExpense TransactionType = "OUT"
)

// Valid reports if the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// maxAmount is the first amount that does not fit into DECIMAL(10,2).
var maxAmount = decimal.New(1, 8)

// Transaction is an income or expense of a user.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index;not null"`
	User        User      `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  *uuid.UUID
	Category    *Category       `gorm:"constraint:OnDelete:SET NULL"`
	Description string          `gorm:"size:255;not null"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	Date        types.Date      `gorm:"index"`
	Type        TransactionType `gorm:"size:3;not null"`
}

// CategoryName returns the name of the linked category, or an empty
// string if there is none.
//
// The category must have been preloaded.
func (t Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}

	return t.Category.Name
}

// ValidateAmount checks that an amount can be stored without loss.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Abs().GreaterThanOrEqual(maxAmount) || !amount.Equal(amount.Round(2)) {
		return ErrAmountOutOfRange
	}

	return nil
}

// BeforeSave
//   - trims whitespace from the description and rejects an empty one
//   - ensures that the category ID is nil and not a pointer to the nil UUID
//   - verifies type, amount and date
//   - verifies that the category belongs to the owner of the transaction
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return ErrDescriptionEmpty
	}

	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}

	if t.CategoryID == nil {
		return nil
	}

	_, err := OwnedCategory(tx.Session(&gorm.Session{NewDB: true}), t.UserID, *t.CategoryID)
	if errors.Is(err, ErrResourceNotFound) {
		return fmt.Errorf("%w: %s", ErrCategoryNotOwned, t.CategoryID)
	}

	return err
}

// OwnedTransaction returns the transaction with the given ID if it
// belongs to the user. The category is preloaded.
func OwnedTransaction(db *gorm.DB, userID, id uuid.UUID) (Transaction, error) {
	var transaction Transaction
	err := db.Preload("Category").Where("user_id = ?", userID).First(&transaction, "id = ?", id).Error
	return transaction, err
}
