package service

import (
	"fmt"
	"regexp"
	"strconv"

	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/model"
	"cocoresort/pkg/sanitizer"
)

// Keys the assistant uses in a reservation summary, Spanish first.
var (
	nameKeys     = []string{"Nombre", "Nombre completo", "Name", "Full name"}
	peopleKeys   = []string{"Número de Personas", "Numero de Personas", "Number of People", "Guests"}
	datesKeys    = []string{"Fechas", "Fechas de estancia", "Dates"}
	roomTypeKeys = []string{"Tipo de Habitación", "Tipo de Habitacion", "Tipo de alojamiento", "Room Type"}
)

var firstNumber = regexp.MustCompile(`\d+`)

// BookingRequestFromSummary reads a "Key: value" reservation summary into a
// booking request for customerID. The dates line goes through the date range
// parser, so any of its patterns is accepted there.
func (s *reservationService) BookingRequestFromSummary(customerID, contact, summary string) (*model.BookingRequest, error) {
	details := sanitizer.ExtractDetails(summary)

	name, ok := sanitizer.Lookup(details, nameKeys...)
	if !ok {
		return nil, fmt.Errorf("%w: summary has no name", apperrors.ErrInvalidCustomer)
	}

	datesText, ok := sanitizer.Lookup(details, datesKeys...)
	if !ok {
		return nil, fmt.Errorf("%w: summary has no dates", apperrors.ErrInvalidDateRange)
	}
	rng, err := s.parser.Parse(datesText)
	if err != nil {
		return nil, err
	}

	roomType, ok := sanitizer.Lookup(details, roomTypeKeys...)
	if !ok {
		return nil, fmt.Errorf("%w: summary has no room type", apperrors.ErrNoMatchingRoom)
	}

	peopleText, _ := sanitizer.Lookup(details, peopleKeys...)
	people, err := strconv.Atoi(firstNumber.FindString(peopleText))
	if err != nil {
		return nil, fmt.Errorf("%w: summary has no number of people", apperrors.ErrInvalidPartySize)
	}

	return &model.BookingRequest{
		CustomerID:      customerID,
		CustomerName:    name,
		CustomerContact: contact,
		RoomType:        roomType,
		StartDate:       rng.StartISO(),
		EndDate:         rng.EndISO(),
		NumPeople:       people,
	}, nil
}
