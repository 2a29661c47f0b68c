package stubapi

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/jrsteele09/fringe-portal/users"
	"github.com/rs/zerolog/log"
)

// SeedConfig names the accounts created at start-up. Empty passwords are
// generated and logged once.
type SeedConfig struct {
	AdminEmail     string `env:"STUB_ADMIN_EMAIL" envDefault:"admin@fringe.local"`
	AdminPassword  string `env:"STUB_ADMIN_PASSWORD"`
	MemberEmail    string `env:"STUB_MEMBER_EMAIL" envDefault:"member@fringe.local"`
	MemberPassword string `env:"STUB_MEMBER_PASSWORD"`
}

// Credential is a seeded login.
type Credential struct {
	Email    string
	Password string
	Roles    []string
}

// Seed creates the admin and member accounts unless they already exist. It
// returns the credentials of the accounts it created.
func Seed(accounts users.Repo, cfg SeedConfig) ([]Credential, error) {
	wanted := []Credential{
		{Email: cfg.AdminEmail, Password: cfg.AdminPassword, Roles: []string{users.RoleAdmin}},
		{Email: cfg.MemberEmail, Password: cfg.MemberPassword, Roles: []string{users.RoleMember}},
	}

	created := make([]Credential, 0, len(wanted))
	for _, c := range wanted {
		if c.Email == "" {
			continue
		}
		if existing, err := accounts.GetByEmail(c.Email); err == nil {
			log.Info().Str("email", existing.Email).Msg("seed account already exists")
			continue
		}

		if c.Password == "" {
			generated, err := generatePassword()
			if err != nil {
				return nil, err
			}
			c.Password = generated
		}

		account, err := users.New(c.Email, c.Password, c.Roles...)
		if err != nil {
			return nil, fmt.Errorf("[stubapi Seed] %s: %w", c.Email, err)
		}
		if err := accounts.Upsert(account); err != nil {
			return nil, fmt.Errorf("[stubapi Seed] store %s: %w", c.Email, err)
		}

		c.Email = account.Email
		created = append(created, c)
		log.Info().
			Str("email", c.Email).
			Str("password", c.Password).
			Strs("roles", c.Roles).
			Msg("seeded account, save this password as it will not be displayed again")
	}
	return created, nil
}

func generatePassword() (string, error) {
	passwordBytes := make([]byte, 16)
	if _, err := rand.Read(passwordBytes); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return base64.URLEncoding.EncodeToString(passwordBytes), nil
}
