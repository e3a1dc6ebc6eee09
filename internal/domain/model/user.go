package model

import "time"

// User represents a registered holder of a loyalty card.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Roles        RoleSet
	CoffeeCount  int
	QRCodePath   string
	CreatedAt    time.Time
}
