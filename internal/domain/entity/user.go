package entity

import "time"

// User usuario del dashboard (login con email + password).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
