package model

// User is a registered account. Password holds the argon2id encoded hash,
// never the plaintext.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// InsertUser carries the fields of a new account. Password is already hashed
// by the time it reaches the store.
type InsertUser struct {
	Username string
	Password string
}

// CreateUserRequest is the POST /api/auth/register body.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is user data safe for API responses.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AuthResponse carries a signed token plus the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
