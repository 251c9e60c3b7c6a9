package entities

import "time"

// Child is one registered child profile. Everything else in the session
// (schedules, medications, measurements) hangs off a child id.
type Child struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
	Sex       string    `json:"sex"` // male or female
	CreatedAt time.Time `json:"createdAt"`
}
