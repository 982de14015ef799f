package domain

import "time"

const (
	RoleListener = "LISTENER"
	RoleCreator  = "CREATOR"
)

// ValidRole reports whether role names one of the two account roles.
func ValidRole(role string) bool {
	return role == RoleListener || role == RoleCreator
}

// User models a registered account. Role is fixed at registration time;
// there is no endpoint that changes it.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreatorSummary is the public slice of a user embedded in series responses.
type CreatorSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Summary returns the public view of the user.
func (u *User) Summary() CreatorSummary {
	return CreatorSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
