package errors

import (
	stderrors "errors"
	"net/http"
)

// Reservation domain failures. Domain code wraps these with fmt.Errorf("%w: ...")
// so callers can match them with errors.Is.
var (
	ErrInvalidDateFormat = stderrors.New("invalid date format, expected YYYY-MM-DD")

	ErrInvalidDateRange = stderrors.New("invalid date range")

	ErrInvalidRoomPrice = stderrors.New("room price cannot be negative")

	ErrInvalidCustomer = stderrors.New("customer name and contact cannot be empty")

	ErrInvalidHotel = stderrors.New("hotel name and address cannot be empty")

	ErrInvalidPartySize = stderrors.New("number of people must be at least 1")

	ErrRoomUnavailable = stderrors.New("room is not available")

	ErrNoMatchingRoom = stderrors.New("no room matches the requested type")

	ErrReservationNotFound = stderrors.New("reservation not found")

	ErrIOFailure = stderrors.New("reservation store i/o failure")
)

// FieldErrors is implemented by validation failures that can list every
// offending field.
type FieldErrors interface {
	error
	FieldDetails() map[string]any
}

var domainErrors = []struct {
	sentinel error
	code     string
	status   int
}{
	{ErrInvalidDateFormat, CodeInvalidDateFormat, http.StatusBadRequest},
	{ErrInvalidDateRange, CodeInvalidDateRange, http.StatusBadRequest},
	{ErrInvalidRoomPrice, CodeInvalidRoomPrice, http.StatusUnprocessableEntity},
	{ErrInvalidCustomer, CodeInvalidCustomer, http.StatusUnprocessableEntity},
	{ErrInvalidHotel, CodeInvalidHotel, http.StatusUnprocessableEntity},
	{ErrInvalidPartySize, CodeInvalidPartySize, http.StatusUnprocessableEntity},
	{ErrRoomUnavailable, CodeRoomUnavailable, http.StatusConflict},
	{ErrNoMatchingRoom, CodeNoMatchingRoom, http.StatusNotFound},
	{ErrReservationNotFound, CodeNotFound, http.StatusNotFound},
	{ErrIOFailure, CodeIOFailure, http.StatusInternalServerError},
}

// FromDomain maps an error chain carrying one of the domain sentinels to an
// AppError with a stable code. The message is the full wrapped error text except
// for i/o failures, whose cause is kept in Err only. Field failures found in the
// chain are attached as details.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var fieldErrs FieldErrors
	hasFields := stderrors.As(err, &fieldErrs)

	for _, d := range domainErrors {
		if !stderrors.Is(err, d.sentinel) {
			continue
		}
		if d.sentinel == ErrIOFailure {
			return Wrap(err, d.code, d.sentinel.Error(), d.status)
		}
		mapped := Wrap(err, d.code, err.Error(), d.status)
		if hasFields {
			mapped = mapped.WithDetails(fieldErrs.FieldDetails())
		}
		return mapped
	}
	if hasFields {
		return Validation(fieldErrs.Error(), fieldErrs.FieldDetails())
	}
	return Internal("An unexpected error occurred", err)
}
