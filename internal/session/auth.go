package session

import (
	"fmt"
	"strconv"
	"strings"

	"foodexchange-admin/internal/config"
	"foodexchange-admin/internal/marketerrors"

	"golang.org/x/crypto/bcrypt"
)

// Login failure messages shown to the operator
const (
	MsgMissingCredentials = "Please enter both email and password"
	MsgInvalidCredentials = "Invalid credentials"
)

// compared against when the email is unknown so both paths cost a bcrypt round
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// Authenticator checks operator credentials against the configured accounts
type Authenticator struct {
	accounts map[string]config.Account // key: lower-cased email
}

// NewAuthenticator indexes accounts by email
func NewAuthenticator(accounts []config.Account) *Authenticator {
	a := &Authenticator{accounts: make(map[string]config.Account, len(accounts))}
	for _, acc := range accounts {
		a.accounts[strings.ToLower(strings.TrimSpace(acc.Email))] = acc
	}
	return a
}

// CredentialError carries the operator-facing login failure message
type CredentialError struct {
	Message string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("%s: %s", marketerrors.ErrInvalidCredentials, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidCredentials
func (e *CredentialError) Unwrap() error {
	return marketerrors.ErrInvalidCredentials
}

// Authenticate returns the matching account
func (a *Authenticator) Authenticate(email, password string) (config.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return config.Account{}, &CredentialError{Message: MsgMissingCredentials}
	}

	acc, ok := a.accounts[email]
	hash := dummyHash
	if ok {
		hash = []byte(acc.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !ok {
		return config.Account{}, &CredentialError{Message: MsgInvalidCredentials}
	}
	return acc, nil
}

// HashPassword produces a bcrypt hash for an accounts entry
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("hash password: %w - empty password", marketerrors.ErrInvalidRequest)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// LoginValues are the session values written after a successful login
func LoginValues(acc config.Account) map[string]string {
	return map[string]string{
		KeyLoggedIn:  "true",
		KeyUserID:    strconv.Itoa(acc.UserID),
		KeyUserRole:  acc.Role,
		KeyFirstName: acc.FirstName,
		KeyLastName:  acc.LastName,
	}
}
