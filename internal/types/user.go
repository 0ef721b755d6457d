package types

import "time"

// UserResponse is the public shape of a user. The password hash is never
// part of any response body.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
