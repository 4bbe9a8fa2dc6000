package domain

import "github.com/tynanfleet/fleetcheck/pkg/idx"

// ActorKind distinguishes the two identities a session can carry.
type ActorKind string

const (
	ActorAdmin ActorKind = "admin"
	ActorUser  ActorKind = "user"
)

// Actor is the authenticated identity attached to a request for its duration.
// The administrator is a single configured identity with no user row, so
// UserID is zero for admin actors.
type Actor struct {
	Kind   ActorKind
	UserID idx.ID
	Name   string
}

// IsAdmin reports whether the actor is the administrator identity.
func (a Actor) IsAdmin() bool { return a.Kind == ActorAdmin }

// IsZero reports whether the actor is unauthenticated (no session).
func (a Actor) IsZero() bool { return a.Kind == "" }
