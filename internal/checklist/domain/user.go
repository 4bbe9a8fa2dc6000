package domain

import (
	"time"

	"github.com/tynanfleet/fleetcheck/pkg/idx"
)

// User is a registered account that can submit checklist entries. Usernames
// are stored case-normalized (lowercase) and are unique. The password is only
// ever held as an argon2id PHC hash.
type User struct {
	ID           idx.ID
	Name         string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
