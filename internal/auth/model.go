package auth

import "time"

// User is the domain entity.
type User struct {
	ID                int
	Username          string
	Email             string
	PasswordHash      string
	FirstName         string
	LastName          string
	Phone             string
	IsVerified        bool
	VerificationToken string
	CreatedAt         time.Time
}
