package model

import "time"

// Role is the closed set of admin permission tiers. SUPER_ADMIN is a strict
// superset of ADMIN: it can additionally manage other Admin records.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleSuperAdmin:
		return 2
	default:
		return 0
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.level() > 0
}

// HasAtLeast is the single authorization predicate: it reports whether r
// grants at least the permissions of required. Unknown roles grant nothing.
func (r Role) HasAtLeast(required Role) bool {
	return r.level() > 0 && r.level() >= required.level()
}

// Admin represents a back-office user. Passwords are stored as bcrypt hashes.
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'ADMIN'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the verified, non-secret representation of an authenticated
// admin. It deliberately excludes the password hash.
type Identity struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Identity derives the non-secret identity value from an admin record.
func (a *Admin) Identity() *Identity {
	return &Identity{
		ID:       a.ID,
		Email:    a.Email,
		Name:     a.Name,
		Username: a.Username,
		Role:     a.Role,
	}
}
