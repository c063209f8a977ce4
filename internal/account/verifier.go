package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"hrdesk/api/internal/auth"
	"hrdesk/api/internal/crypto"
	"hrdesk/api/internal/model"
)

// Scope selects which population of accounts a login is checked against.
type Scope int

const (
	ScopeAdmin Scope = iota + 1
	ScopeHR
)

func (s Scope) Role() auth.Role {
	switch s {
	case ScopeAdmin:
		return auth.RoleAdmin
	case ScopeHR:
		return auth.RoleHR
	default:
		return auth.RoleUnknown
	}
}

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWrongPassword      = errors.New("wrong password")
)

// StoreError marks a failure of the account store itself.
type StoreError struct{ Err error }

func (e *StoreError) Error() string { return "account store: " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

type Store interface {
	GetAdminByEmail(ctx context.Context, email string) (model.Account, error)
	GetHRByEmail(ctx context.Context, email string) (model.Account, error)
}

type Verifier struct {
	store Store
}

func NewVerifier(store Store) *Verifier {
	return &Verifier{store: store}
}

func (v *Verifier) Verify(ctx context.Context, scope Scope, email, password string) (auth.Claims, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return auth.Claims{}, ErrMissingCredentials
	}

	var (
		acc model.Account
		err error
	)
	switch scope {
	case ScopeAdmin:
		acc, err = v.store.GetAdminByEmail(ctx, email)
	case ScopeHR:
		acc, err = v.store.GetHRByEmail(ctx, email)
	default:
		return auth.Claims{}, fmt.Errorf("account: unknown scope %d", int(scope))
	}
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return auth.Claims{}, ErrInvalidEmail
		}
		return auth.Claims{}, &StoreError{Err: err}
	}

	if err := crypto.CheckPassword(acc.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return auth.Claims{}, ErrWrongPassword
		}
		return auth.Claims{}, fmt.Errorf("account: compare password: %w", err)
	}

	return auth.Claims{
		Role:  scope.Role(),
		ID:    acc.ID,
		Email: acc.Email,
		Name:  acc.Name,
	}, nil
}
