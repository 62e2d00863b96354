package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategories are created for every new user.
var DefaultCategories = []string{
	"Salário",
	"Alimentação",
	"Transporte",
	"Moradia",
	"Lazer",
}

// Category is a named bucket for transactions, owned by one user.
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"index;not null"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`
	Name   string    `gorm:"size:100;not null"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// BeforeDelete detaches all transactions from the category.
//
// The foreign key does the same, but only when the database enforces
// foreign keys.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&Transaction{}).
		Where("category_id = ?", c.ID).
		UpdateColumn("category_id", nil).Error
}

// SeedDefaultCategories creates the default categories for a user.
func SeedDefaultCategories(db *gorm.DB, user User) error {
	categories := make([]Category, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, Category{
			UserID: user.ID,
			Name:   name,
		})
	}

	return db.Create(&categories).Error
}

// OwnedCategory returns the category with the given ID if it belongs
// to the user.
func OwnedCategory(db *gorm.DB, userID, id uuid.UUID) (Category, error) {
	var category Category
	err := db.Where("user_id = ?", userID).First(&category, "id = ?", id).Error
	return category, err
}
