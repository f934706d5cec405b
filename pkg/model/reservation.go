package model

import (
	"fmt"
	"time"

	"cocoresort/pkg/dates"
	apperrors "cocoresort/pkg/errors"

	"github.com/google/uuid"
)

// Reservation books one room for one customer over an inclusive date range.
// It is never edited in place; a change is a cancel followed by a new booking.
type Reservation struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	Room      *Room     `json:"room" validate:"required"`
	Customer  *Customer `json:"-" validate:"required"`
	Start     time.Time `json:"start_date" validate:"required"`
	End       time.Time `json:"end_date" validate:"required"`
	NumPeople int       `json:"num_people" validate:"min=1"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReservation builds a reservation from YYYY-MM-DD dates. It does not
// commit anything; see Customer.MakeReservation.
func NewReservation(room *Room, customer *Customer, start, end string, numPeople int) (*Reservation, error) {
	if room == nil {
		return nil, apperrors.ErrNoMatchingRoom
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: reservation has no customer", apperrors.ErrInvalidCustomer)
	}

	startDate, err := dates.ParseISODate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := dates.ParseISODate(end)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end %s is before start %s", apperrors.ErrInvalidDateRange, end, start)
	}
	if numPeople < 1 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidPartySize, numPeople)
	}

	r := &Reservation{
		ID:        uuid.NewString(),
		Room:      room,
		Customer:  customer,
		Start:     startDate,
		End:       endDate,
		NumPeople: numPeople,
		CreatedAt: time.Now().UTC(),
	}
	if err := check(r, apperrors.ErrInvalidCustomer); err != nil {
		return nil, err
	}
	return r, nil
}

// Overlaps reports whether the two stays share at least one calendar day.
// Bounds are inclusive, so a checkout day colliding with a check-in counts.
func (r *Reservation) Overlaps(other *Reservation) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

func (r *Reservation) Nights() int {
	return dates.Nights(r.Start, r.End)
}

func (r *Reservation) TotalCost() float64 {
	return r.Room.Price * float64(r.Nights())
}

func (r *Reservation) StartDate() string { return dates.FormatISODate(r.Start) }

func (r *Reservation) EndDate() string { return dates.FormatISODate(r.End) }
