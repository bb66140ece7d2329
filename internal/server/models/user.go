// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. PasswordHash is the bcrypt output and is
// never serialised.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}
