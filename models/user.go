package models

import "time"

// User is an account of the note keeper.
// Login is the user's e-mail address and is unique across the service.
type User struct {
	// UserID is the internal identifier, used only at the persistence layer.
	UserID int64 `json:"-"`

	Login       string `json:"login"`
	DisplayName string `json:"display_name,omitempty"`

	// Password is plaintext on the way in and a bcrypt hash once stored.
	// It is never sent back to clients.
	Password string `json:"password,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns a copy of u that is safe to send to a client.
func (u User) Profile() User {
	u.Password = ""
	return u
}

// Session is the logged-in state the client keeps between runs.
type Session struct {
	UserID      int64
	Login       string
	DisplayName string
	Token       string
	SavedAt     time.Time
}

// User returns the profile part of the session.
func (s Session) User() User {
	return User{UserID: s.UserID, Login: s.Login, DisplayName: s.DisplayName}
}
