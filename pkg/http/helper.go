package http

import (
	"encoding/json"
	"net/http"
	"time"

	"cocoresort/pkg/dates"
	apperrors "cocoresort/pkg/errors"
)

// DecodeJSON reads the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.InvalidInput("Invalid request body: " + err.Error())
	}
	return nil
}

// ExtractDay reads a YYYY-MM-DD query parameter. A missing parameter means
// today in UTC.
func ExtractDay(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		y, m, d := time.Now().UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	day, err := dates.ParseISODate(raw)
	if err != nil {
		return time.Time{}, apperrors.InvalidInput("invalid " + name + " parameter: " + raw)
	}
	return day, nil
}
