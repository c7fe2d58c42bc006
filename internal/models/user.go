// Package models contains the data records handled by the mock backend.
// JSON tags use the camelCase keys the web client already stores, so
// serialized records stay interchangeable with the existing browser state.
package models

import "time"

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusPending UserStatus = "pending"
	UserStatusBlocked UserStatus = "blocked"
)

// User is an identity plus account snapshot. Name is the derived display
// name (FirstName + " " + LastName) and is stored denormalized, matching
// the client-side record layout.
type User struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Phone      string     `json:"phone"`
	Country    string     `json:"country"`
	Balance    float64    `json:"balance"`
	Status     UserStatus `json:"status"`
	IsVerified bool       `json:"isVerified"`
	Role       string     `json:"role"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// DisplayName derives the display name from the name parts.
func DisplayName(firstName, lastName string) string {
	return firstName + " " + lastName
}
