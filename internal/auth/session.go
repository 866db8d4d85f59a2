package auth

import "github.com/mvcarvalho/clinigo/internal/models"

// Session identifies the logged-in user for the duration of a command.
// It is passed explicitly to operations that gate on access level;
// there is no package-level current user.
type Session struct {
	UserID      uint
	Username    string
	AccessLevel string
}

// IsAdmin reports whether the session may perform admin-only actions
// (user management, restore).
func (s Session) IsAdmin() bool {
	return s.AccessLevel == models.AccessAdmin
}
