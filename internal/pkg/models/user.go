package models

import "time"

// Role constants for the three actor kinds
const (
	RoleUser     = "user"
	RoleMechanic = "mechanic"
	RoleAdmin    = "admin"
)

// User represents an account in the users collection. Mechanic accounts
// carry the additional directory fields; MechanicProfile is the directory's
// projection of the same document.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	Phone        string    `json:"phone" bson:"phone"`
	Role         string    `json:"role" bson:"role"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Location     *Location `json:"location,omitempty" bson:"location,omitempty"`
	Geohash      string    `json:"-" bson:"geohash,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	Services     []string  `json:"services,omitempty" bson:"services,omitempty"`
	Available    bool      `json:"available,omitempty" bson:"available,omitempty"`
	RatingSum    int64     `json:"-" bson:"rating_sum,omitempty"`
	RatingCount  int64     `json:"-" bson:"rating_count,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin    time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
}

// IsMechanic reports whether the account is a mechanic
func (u *User) IsMechanic() bool {
	return u.Role == RoleMechanic
}

// Identity is the authenticated actor resolved from a token. It is what the
// identity cache stores and what handlers read from the request context.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// RegisterRequest carries an account registration
type RegisterRequest struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
	Location *Location `json:"location,omitempty"`
	Address  string    `json:"address,omitempty"`
	Services []string  `json:"services,omitempty"`
}

// LoginRequest carries a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful registration or login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}
