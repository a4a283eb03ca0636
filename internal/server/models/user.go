// Package models holds the server-side persistence shapes.
package models

import "time"

// User is an account row. PasswordHash is a bcrypt hash and never leaves the
// server.
type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Surname      string    `db:"surname"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
