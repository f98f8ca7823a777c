// Package auth provides the marketplace credential store and the holder of
// the current session.
//
// Student and instructor accounts live in two independent collections keyed
// by email. Passwords are stored and compared as plain text, matching the
// persisted format this package reads and writes; callers that need real
// credential protection must not reuse this store.
package auth

import (
	"strings"

	apperrors "github.com/omkumar23112003/course-selling-app/internal/platform/errors"
	"github.com/omkumar23112003/course-selling-app/internal/services/marketplace/storage"
)

var (
	// ErrInvalidCredentials indicates no account matched both email and password.
	ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "invalid credentials")
	// ErrAlreadyExists indicates the email is taken in the selected collection.
	ErrAlreadyExists = apperrors.New(apperrors.CodeAlreadyExists, "account already exists")
)

// Account is one stored student or instructor record.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	// IsAdmin mirrors the collection the account was created in. Login never
	// reads it.
	IsAdmin bool `json:"isAdmin"`
}

// Session is the authenticated identity derived from an account.
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// IsAdmin is the role flag the caller authenticated with.
	IsAdmin bool `json:"isAdmin"`
}

// SessionFor derives the session for account under the caller's role flag.
func SessionFor(account Account, asInstructor bool) Session {
	return Session{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		IsAdmin:  asInstructor,
	}
}

// CollectionKey returns the storage key of the account collection for a role.
func CollectionKey(asInstructor bool) string {
	if asInstructor {
		return storage.KeyInstructors
	}
	return storage.KeyStudents
}

// SignupInput describes a new account.
type SignupInput struct {
	Username     string
	Email        string
	Password     string
	AsInstructor bool
}

func (in SignupInput) validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"username", in.Username},
		{"email", in.Email},
		{"password", in.Password},
	} {
		if strings.TrimSpace(field.value) == "" {
			return apperrors.WithMetadata(
				apperrors.CodeInvalidArgument,
				field.name+" is required",
				map[string]string{"Field": field.name},
			)
		}
	}
	return nil
}

func findByEmail(accounts []Account, email string) (Account, bool) {
	for _, account := range accounts {
		if account.Email == email {
			return account, true
		}
	}
	return Account{}, false
}
