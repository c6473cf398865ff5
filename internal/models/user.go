// internal/models/user.go
package models

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	// Stored and compared as an opaque value. Demo-grade: no hashing is applied.
	PasswordHash string `json:"passwordHash"`
	IsAdmin      bool   `json:"isAdmin"`
}

// PublicUser is the wire shape for user payloads. The stored password field
// must round-trip through the persistence layer, so it cannot be tagged
// `json:"-"`; handlers respond with this projection instead.
type PublicUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
	}
}

// Session is the single process-wide active-session pointer. At most one user
// is signed in at a time.
type Session struct {
	UserID string `json:"userId,omitempty"`
}
