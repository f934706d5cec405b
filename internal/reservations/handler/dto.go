package handler

import (
	"time"

	"cocoresort/pkg/model"
)

type DateRangeRequest struct {
	Text string `json:"text"`
}

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Pattern   string `json:"pattern"`
	Language  string `json:"language"`
}

type SummaryRequest struct {
	CustomerID      string `json:"customer_id"`
	CustomerContact string `json:"customer_contact"`
	Summary         string `json:"summary"`
}

type RoomResponse struct {
	Number        int     `json:"number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Available     bool    `json:"available"`
}

type ReservationResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact string    `json:"customer_contact"`
	RoomNumber      int       `json:"room_number"`
	RoomType        string    `json:"room_type"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Nights          int       `json:"nights"`
	NumPeople       int       `json:"num_people"`
	PricePerNight   float64   `json:"price_per_night"`
	TotalCost       float64   `json:"total_cost"`
	CreatedAt       time.Time `json:"created_at"`
}

func newRoomResponse(r *model.Room) RoomResponse {
	return RoomResponse{
		Number:        r.Number,
		Type:          r.Type,
		PricePerNight: r.Price,
		Available:     r.Available(),
	}
}

func newReservationResponse(r *model.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		CustomerID:      r.Customer.ID,
		CustomerName:    r.Customer.Name,
		CustomerContact: r.Customer.Contact,
		RoomNumber:      r.Room.Number,
		RoomType:        r.Room.Type,
		StartDate:       r.StartDate(),
		EndDate:         r.EndDate(),
		Nights:          r.Nights(),
		NumPeople:       r.NumPeople,
		PricePerNight:   r.Room.Price,
		TotalCost:       r.TotalCost(),
		CreatedAt:       r.CreatedAt,
	}
}
