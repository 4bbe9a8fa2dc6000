package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/internal/checklist/store"
	"github.com/tynanfleet/fleetcheck/pkg/cryptox"
	"github.com/tynanfleet/fleetcheck/pkg/idx"
)

var (
	// ErrMissingFields rejects sign-ups with an empty name, username or
	// password.
	ErrMissingFields = errors.New("service: missing sign-up fields")

	// ErrUsernameReserved rejects the administrator username. The check is
	// case-insensitive: usernames are lowercased before it runs, and a
	// mixed-case configured admin name must still be unclaimable.
	ErrUsernameReserved = errors.New("service: username is reserved")

	// ErrUsernameTaken rejects a username already registered by another user.
	ErrUsernameTaken = errors.New("service: username already taken")
)

// AccountService creates regular-user accounts. Users are never updated or
// deleted once created.
type AccountService struct {
	Store store.Store

	AdminUsername string
}

// CreateAccount validates and stores a new account, returning the Actor the
// caller should establish a session for. The existence check and insert run
// in one transaction; the UNIQUE constraint backs the check up against a
// concurrent sign-up of the same name.
func (s *AccountService) CreateAccount(ctx context.Context, name, username, password string) (domain.Actor, error) {
	name = strings.TrimSpace(name)
	username = strings.ToLower(strings.TrimSpace(username))

	if name == "" || username == "" || password == "" {
		return domain.Actor{}, ErrMissingFields
	}
	if s.AdminUsername != "" && strings.EqualFold(username, s.AdminUsername) {
		return domain.Actor{}, ErrUsernameReserved
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Actor{}, err
	}

	user := domain.User{
		ID:           idx.New(),
		Name:         name,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByUsername(ctx, username)
		switch {
		case err == nil:
			return ErrUsernameTaken
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Actor{}, err
	}

	return domain.Actor{Kind: domain.ActorUser, UserID: user.ID, Name: user.Name}, nil
}
