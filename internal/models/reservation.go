package models

import "time"

// RoomType is a bookable room category and its nightly rate.
type RoomType struct {
	Name string `json:"name" toml:"name" validate:"required"`
	Rate int    `json:"rate" toml:"rate" validate:"gt=0"`
}

// Service is an add-on charged once per room for the whole stay.
type Service struct {
	Name string `json:"name" toml:"name" validate:"required"`
	Cost int    `json:"cost" toml:"cost" validate:"gte=0"`
}

// ReservationRequest holds the validated inputs of one session.
type ReservationRequest struct {
	RoomTypeIndex int       `json:"room_type_index" validate:"gte=0"`
	NumRooms      int       `json:"num_rooms" validate:"gt=0"`
	CheckIn       Date      `json:"check_in" validate:"required"`
	CheckOut      Date      `json:"check_out" validate:"required"`
	Services      []Service `json:"services" validate:"dive"`
}

// ServiceCharge is one service line of the summary: cost times room count.
type ServiceCharge struct {
	Service  Service `json:"service"`
	Quantity int     `json:"quantity"`
	Amount   int     `json:"amount"`
}

// ReservationResult is the priced form of a request.
type ReservationResult struct {
	RoomType        RoomType        `json:"room_type"`
	TotalNights     int             `json:"total_nights"`
	Subtotal        int             `json:"subtotal"`
	AdditionalCosts int             `json:"additional_costs"`
	TotalCost       int             `json:"total_cost"`
	Charges         []ServiceCharge `json:"charges"`
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// Reservation is the outcome of a session that reached the summary.
// ID is only assigned once the guest confirms.
type Reservation struct {
	ID        string             `json:"id,omitempty"`
	Request   ReservationRequest `json:"request"`
	Result    ReservationResult  `json:"result"`
	Status    Status             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}
