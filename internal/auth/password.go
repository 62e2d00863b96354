package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordEmpty = errors.New("the password must not be empty")

// HashPassword returns the bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrPasswordEmpty
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword reports if the password matches the hash.
func CheckPassword(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
