package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/internal/checklist/store"
	"github.com/tynanfleet/fleetcheck/pkg/cryptox"
)

// ErrInvalidCredentials is returned for every authentication failure. One
// error for unknown user and wrong password alike, so responses cannot be
// used to enumerate accounts.
var ErrInvalidCredentials = errors.New("service: invalid credentials")

// AdminDisplayName is the display name attached to administrator sessions.
const AdminDisplayName = "Administrator"

// SessionService authenticates credentials and yields the Actor a session
// will identify. Administrator credentials come from configuration; when
// either half is empty the administrator identity is disabled.
type SessionService struct {
	Store store.Store

	AdminUsername string
	AdminPassword string
}

// Authenticate checks the submitted credentials. The administrator check runs
// first and takes precedence: a matching pair elevates to the Administrator
// actor even when a registered user holds the same username. Comparison is
// constant-time on both fields, and both comparisons always execute.
func (s *SessionService) Authenticate(ctx context.Context, username, password string) (domain.Actor, error) {
	username = strings.TrimSpace(username)

	if s.adminEnabled() {
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.AdminUsername))
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.AdminPassword))
		if userOK&passOK == 1 {
			return domain.Actor{Kind: domain.ActorAdmin, Name: AdminDisplayName}, nil
		}
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Actor{}, ErrInvalidCredentials
		}
		return domain.Actor{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.Actor{}, ErrInvalidCredentials
	}

	return domain.Actor{Kind: domain.ActorUser, UserID: u.ID, Name: u.Name}, nil
}

func (s *SessionService) adminEnabled() bool {
	return s.AdminUsername != "" && s.AdminPassword != ""
}
