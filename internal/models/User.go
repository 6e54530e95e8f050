package models

// Role is the closed set of account roles. Authorization decisions are made
// against these constants only, never against raw request input.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDriver  Role = "driver"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDriver, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     Role   `json:"role" gorm:"type:varchar(16)"`

	// BusID is set only for drivers (1 -> B1, 2 -> B2).
	BusID *int `json:"busId"`
}
