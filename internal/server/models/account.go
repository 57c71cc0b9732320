// Package models defines the server-side records persisted by the
// repositories and the request shapes validated before they reach them.
package models

import "time"

// Account is a registered user. PasswordHash always holds a bcrypt digest.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
