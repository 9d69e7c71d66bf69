// Package model contain structure of data in the application
package model

import "time"

// User represents an account created from a Google sign-in. GoogleID is the
// provider's opaque subject id and identifies at most one user.
type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	GoogleID string `gorm:"uniqueIndex;column:google_id" json:"-"`
}

// AccessToken is one exchanged provider token tied to a user. Rows are append
// only; there is no expiry sweep or revocation path.
type AccessToken struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	UserID       int       `json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresIn    int64     `json:"expires_in"`
	CreatedAt    time.Time `json:"created_at"`
}
