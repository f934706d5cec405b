package model

import (
	"fmt"
	"slices"
	"sync"

	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/sanitizer"
)

// Customer owns its reservation list and the no-overlap rule over it.
type Customer struct {
	ID      string `json:"id" bson:"customer_id" validate:"required"`
	Name    string `json:"name" bson:"customer_name" validate:"required"`
	Contact string `json:"contact" bson:"customer_contact" validate:"required"`

	mu           sync.Mutex
	reservations []*Reservation
}

func NewCustomer(id, name, contact string) (*Customer, error) {
	c := &Customer{
		ID:      sanitizer.CleanText(id),
		Name:    sanitizer.NormalizeName(name),
		Contact: sanitizer.CleanText(contact),
	}
	if err := check(c, apperrors.ErrInvalidCustomer); err != nil {
		return nil, err
	}
	return c, nil
}

// MakeReservation commits r unless the customer already holds an overlapping
// reservation on the same room. The scan and the append happen under one
// lock, so concurrent attempts for the same stay admit exactly one.
func (c *Customer) MakeReservation(r *Reservation) error {
	if r.Customer != c {
		return fmt.Errorf("%w: reservation %s belongs to another customer", apperrors.ErrInvalidCustomer, r.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.reservations {
		if existing.Room == r.Room && existing.Overlaps(r) {
			return fmt.Errorf("%w: room %d is already booked from %s to %s",
				apperrors.ErrRoomUnavailable, r.Room.Number, existing.StartDate(), existing.EndDate())
		}
	}

	c.reservations = append(c.reservations, r)
	r.Room.SetAvailability(false)
	return nil
}

// CancelReservation drops r and frees its room. It reports whether r was held;
// cancelling an unknown or already cancelled reservation does nothing.
func (c *Customer) CancelReservation(r *Reservation) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.Index(c.reservations, r)
	if i < 0 {
		return false
	}
	c.reservations = slices.Delete(c.reservations, i, i+1)
	r.Room.SetAvailability(true)
	return true
}

// Reservations returns a snapshot in booking order.
func (c *Customer) Reservations() []*Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.reservations)
}
