package domain

import "time"

// User models an identity stored in one of the role partitions.
type User struct {
	UserID       string    `json:"user_id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the identity asserted by a verified session token.
type Principal struct {
	SubjectID string
	Role      Role
}
