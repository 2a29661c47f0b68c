package users

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Festival roles
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// MinPasswordLength matches the login form's password rule.
const MinPasswordLength = 6

// Account is a user of the authentication service.
type Account struct {
	ID           string    `json:"userId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialize
	Roles        []string  `json:"roles"`
	Created      time.Time `json:"created"`
	LastLogin    time.Time `json:"lastLogin,omitempty"`
	Blocked      bool      `json:"blocked,omitempty"`
}

// NormaliseEmail is the key accounts are stored and looked up under.
func NormaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPassword checks password against the account's hash
func (a *Account) CheckPassword(password string) bool {
	return CheckPasswordHash(password, a.PasswordHash)
}

func (a *Account) HasRole(role string) bool {
	return slices.Contains(a.Roles, role)
}

// New creates an account with a hashed password.
func New(email, password string, roles ...string) (*Account, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("[users New] hash password: %w", err)
	}
	if roles == nil {
		roles = []string{}
	}
	return &Account{
		Email:        NormaliseEmail(email),
		PasswordHash: hash,
		Roles:        roles,
		Created:      time.Now().UTC(),
	}, nil
}
