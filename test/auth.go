package test

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Password is the password of all users created with Login.
const Password = "correct horse battery staple"

// Session is a registered user with a valid access token.
type Session struct {
	UserID   uuid.UUID
	Username string
	Access   string
	Refresh  string
}

// Header returns the Authorization header for the session.
func (s Session) Header() map[string]string {
	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", s.Access)}
}

// Login registers a new user with a random name and obtains tokens for it
// through the API.
func Login(t *testing.T) Session {
	username := uuid.NewString()
	base := os.Getenv("API_URL")

	r := Request(t, http.MethodPost, base+"/register/", map[string]string{
		"username": username,
		"email":    "user@example.com",
		"password": Password,
	})
	AssertHTTPStatus(t, &r, http.StatusCreated)

	var user struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	DecodeResponse(t, &r, &user)

	r = Request(t, http.MethodPost, base+"/token/", map[string]string{
		"username": username,
		"password": Password,
	})
	AssertHTTPStatus(t, &r, http.StatusOK)

	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	DecodeResponse(t, &r, &tokens)
	require.NotEmpty(t, tokens.Access)

	return Session{
		UserID:   user.Data.ID,
		Username: username,
		Access:   tokens.Access,
		Refresh:  tokens.Refresh,
	}
}
