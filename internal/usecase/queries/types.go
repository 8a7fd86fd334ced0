package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	Number    string `json:"number"`
	Class     string `json:"class"`
	RateCents int64  `json:"rate_cents"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	RoomNumber       string    `json:"room_number"`
	RoomClass        string    `json:"room_class"`
	Nights           int       `json:"nights"`
	ServiceCostCents int64     `json:"service_cost_cents"`
	TotalCents       int64     `json:"total_cents"`
	ClientName       *string   `json:"client_name,omitempty"`
	ClientPoints     *int      `json:"client_points,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type GroupBookingView struct {
	Bookings     []BookingView `json:"bookings"`
	TotalCents   int64         `json:"total_cents"`
	SkippedRooms []string      `json:"skipped_rooms,omitempty"`
}
