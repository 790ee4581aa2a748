// Package models holds the server-side domain records.
package models

import "time"

// Role controls what a user may do. The zero value is not a valid role;
// use RoleUser for ordinary accounts.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the persisted account record. PasswordHash is never the
// plaintext; a new plaintext is staged with SetPassword and hashed by the
// credential store on the next save.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Location     string
	PhoneNumber  string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	pendingPassword *string
}

// SetPassword stages a new plaintext password.
func (u *User) SetPassword(plain string) {
	u.pendingPassword = &plain
}

// PendingPassword returns the staged plaintext, if any.
func (u *User) PendingPassword() (string, bool) {
	if u.pendingPassword == nil {
		return "", false
	}
	return *u.pendingPassword, true
}

// PasswordModified reports whether a plaintext is waiting to be hashed.
func (u *User) PasswordModified() bool {
	return u.pendingPassword != nil
}

// ClearPendingPassword drops the staged plaintext once it has been hashed.
func (u *User) ClearPendingPassword() {
	u.pendingPassword = nil
}

// PublicUser is the client-facing view of a User. It never carries the hash.
type PublicUser struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Location    string    `json:"location,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Public returns the client-facing view of u.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Location:    u.Location,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
