package model

import (
	"fmt"
	"math"
	"sync"

	apperrors "cocoresort/pkg/errors"
)

// Room is a bookable unit. Availability is flipped by the reservation flow
// and never by the room itself.
type Room struct {
	Number int     `json:"number" bson:"number"`
	Type   string  `json:"type" bson:"type"`
	Price  float64 `json:"price_per_night" bson:"price_per_night" validate:"min=0"`

	mu        sync.RWMutex
	available bool
}

func NewRoom(number int, roomType string, price float64) (*Room, error) {
	r := &Room{Number: number, Type: roomType, Price: price, available: true}
	if err := check(r, apperrors.ErrInvalidRoomPrice); err != nil {
		return nil, err
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidRoomPrice, price)
	}
	return r, nil
}

func (r *Room) SetAvailability(available bool) {
	r.mu.Lock()
	r.available = available
	r.mu.Unlock()
}

func (r *Room) Available() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.available
}
