package service

import (
	"context"
	"testing"

	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spanishSummary = `¡Perfecto! Aquí está el resumen de tu reserva:
Nombre: Aldo Rea
Número de Personas: 6
Fechas: 2024-07-20 al 2024-07-25
Tipo de Habitación: 3 Rooms, 3 Bathrooms Villa
Precio por Noche: MXN 3300
Costo Total: MXN 16500`

func TestBookingRequestFromSummary(t *testing.T) {
	svc := newTestService(t, testConfig(true), &fakeRepo{}, nil)

	req, err := svc.BookingRequestFromSummary("5219981234567", "+5219981234567", spanishSummary)
	require.NoError(t, err)
	assert.Equal(t, &model.BookingRequest{
		CustomerID:      "5219981234567",
		CustomerName:    "Aldo Rea",
		CustomerContact: "+5219981234567",
		RoomType:        villa,
		StartDate:       "2024-07-20",
		EndDate:         "2024-07-25",
		NumPeople:       6,
	}, req)

	r, err := svc.BookRoom(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 16500.0, r.TotalCost())
}

func TestBookingRequestFromSummary_English(t *testing.T) {
	svc := newTestService(t, testConfig(true), &fakeRepo{}, nil)
	summary := "Name: Jane Doe\nNumber of People: 2 adults\nDates: From July 20, 2024 to July 25, 2024\nRoom Type: 1 Room, 1 Bathroom Apartment"

	req, err := svc.BookingRequestFromSummary("c9", "jane@example.com", summary)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", req.CustomerName)
	assert.Equal(t, 2, req.NumPeople)
	assert.Equal(t, "2024-07-20", req.StartDate)
	assert.Equal(t, "1 Room, 1 Bathroom Apartment", req.RoomType)
}

func TestBookingRequestFromSummary_Missing(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		wantErr error
	}{
		{
			name:    "no name",
			summary: "Número de Personas: 6\nFechas: 2024-07-20 al 2024-07-25\nTipo de Habitación: Villa",
			wantErr: apperrors.ErrInvalidCustomer,
		},
		{
			name:    "no dates",
			summary: "Nombre: Aldo\nNúmero de Personas: 6\nTipo de Habitación: Villa",
			wantErr: apperrors.ErrInvalidDateRange,
		},
		{
			name:    "unparseable dates",
			summary: "Nombre: Aldo\nNúmero de Personas: 6\nFechas: 20-07-2024 to 25-07-2024\nTipo de Habitación: Villa",
			wantErr: apperrors.ErrInvalidDateRange,
		},
		{
			name:    "no room type",
			summary: "Nombre: Aldo\nNúmero de Personas: 6\nFechas: 2024-07-20 al 2024-07-25",
			wantErr: apperrors.ErrNoMatchingRoom,
		},
		{
			name:    "people not a number",
			summary: "Nombre: Aldo\nNúmero de Personas: seis\nFechas: 2024-07-20 al 2024-07-25\nTipo de Habitación: Villa",
			wantErr: apperrors.ErrInvalidPartySize,
		},
	}

	svc := newTestService(t, testConfig(true), &fakeRepo{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := svc.BookingRequestFromSummary("c1", "555", tt.summary)
			assert.Nil(t, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
