package repository

import (
	"context"
	"time"

	"cocoresort/pkg/model"
)

// ReservationRepository stores committed reservations, one logical file or
// partition per reservations day.
type ReservationRepository interface {
	Append(ctx context.Context, r *model.Reservation) error
	List(ctx context.Context, day time.Time) ([]Record, error)
	Ping(ctx context.Context) error
}

// reservationsDay is the day a reservation is filed under: the UTC date it
// was created.
func reservationsDay(r *model.Reservation) time.Time {
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	y, m, d := created.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
