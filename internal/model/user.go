package model

// Role is the access role attached to a fixture user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// User is a login account. Usernames are unique.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`
}

// UserSummary is the public part of a user returned after login.
type UserSummary struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// Summary strips credentials from the user.
func (u *User) Summary() UserSummary {
	return UserSummary{Username: u.Username, Name: u.Name, Role: u.Role}
}

// LoginRequest is the payload for POST /api/login. Both keys must be present;
// empty or unknown values are a credentials failure, not a malformed request.
type LoginRequest struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}
