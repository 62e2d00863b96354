package models

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// User is an account that owns categories and transactions.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	Email        string `gorm:"size:254"`
	PasswordHash string `json:"-"`
}

// BeforeSave trims whitespace and ensures the username is set.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)

	if u.Username == "" {
		return ErrUsernameEmpty
	}

	return nil
}

// CreateUser creates a new user together with the default categories.
//
// Both happen in one database transaction so that a user never
// exists without the defaults. Updating users must not go through
// here, the defaults are only created once.
func CreateUser(db *gorm.DB, user *User) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(user).Error
		if err != nil {
			return err
		}

		return SeedDefaultCategories(tx, *user)
	})

	// Errors when starting or committing the transaction do not
	// pass through the callbacks
	if err != nil && !isDomainError(err) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}
