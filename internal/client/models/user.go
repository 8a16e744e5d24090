package models

import "strings"

// User is the account shape returned by the backend.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Profile is the locally cached, denormalized copy of user identity fields.
// It is not authoritative; the server copy always wins when reachable.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Profile derives the cacheable profile from a server user. When the server
// omits the name, the local part of the email is used instead so screens
// always have something to display.
func (u *User) Profile() Profile {
	name := u.Name
	if name == "" {
		name = u.Email
		if i := strings.Index(u.Email, "@"); i >= 0 {
			name = u.Email[:i]
		}
	}
	return Profile{Email: u.Email, Name: name, Phone: u.Phone}
}

// LoginData is the payload of a successful login response.
type LoginData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
