package entity

import (
	"time"
)

// CookingLevel is derived from the number of recipes a user has authored.
type CookingLevel string

const (
	LevelBeginner     CookingLevel = "beginner"
	LevelIntermediate CookingLevel = "intermediate"
	LevelAdvanced     CookingLevel = "advanced"
)

// Valid reports whether l is one of the known cooking levels.
func (l CookingLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID           string
	Name         string
	Email        string
	Password     string
	CookingLevel CookingLevel
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerID makes a user its own owner.
func (u *User) OwnerID() string { return u.ID }

// Owned is implemented by every resource that belongs to exactly one user.
type Owned interface {
	OwnerID() string
}
