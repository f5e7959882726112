package model

import "time"

// Role is the authorization level attached to a User. Absence of a User
// record is not a role; lookups must treat not-found as its own case.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// Option is one treatment and its full catalog of bookable slot labels.
// Catalog rows are read-only to this service.
type Option struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}

type Booking struct {
	ID              string    `json:"_id"`
	Email           string    `json:"email"`
	Treatment       string    `json:"treatment"`
	AppointmentDate string    `json:"appointmentDate"`
	Slot            string    `json:"slot"`
	CreatedAt       time.Time `json:"createdAt"`
}

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Doctor struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty"`
	CreatedAt time.Time `json:"createdAt"`
}
