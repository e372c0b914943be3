// Package models defines the core data structures for users and commands.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized into responses.
	PasswordHash []byte `json:"-"`
}

// Command holds a stored shell snippet together with its grouping label
// and the identity of the user that owns it.
type Command struct {
	// ID is the unique identifier for the command, assigned on creation.
	ID string `json:"id"`
	// Title is a short human-readable label for the snippet.
	Title string `json:"title"`
	// Command is the literal snippet text the user wants to recall.
	Command string `json:"command"`
	// Category is a free-form grouping label. It is not validated against
	// any enumerated set; grouping is a case-sensitive exact match.
	Category string `json:"category"`
	// Owner is the id of the user that created the record. It is stamped
	// from the authenticated caller at creation and never mutated.
	Owner string `json:"owner"`
	// CreatedAt is the server time at creation.
	CreatedAt time.Time `json:"createdAt"`
}
