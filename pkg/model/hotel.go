package model

import (
	"slices"
	"sync"

	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/sanitizer"
)

// Hotel is the booking registry: the rooms it owns, searchable by type.
type Hotel struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`

	mu    sync.RWMutex
	rooms []*Room
}

func NewHotel(name, address string) (*Hotel, error) {
	h := &Hotel{
		Name:    sanitizer.CleanText(name),
		Address: sanitizer.CleanText(address),
	}
	if err := check(h, apperrors.ErrInvalidHotel); err != nil {
		return nil, err
	}
	return h, nil
}

// AddRoom appends room without checking for duplicate numbers.
func (h *Hotel) AddRoom(room *Room) {
	h.mu.Lock()
	h.rooms = append(h.rooms, room)
	h.mu.Unlock()
}

// FindRoomsByType returns every room whose type equals roomType exactly, in
// the order they were added. No match yields an empty slice.
func (h *Hotel) FindRoomsByType(roomType string) []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	matches := []*Room{}
	for _, r := range h.rooms {
		if r.Type == roomType {
			matches = append(matches, r)
		}
	}
	return matches
}

func (h *Hotel) Rooms() []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.rooms)
}
