package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cocoresort/internal/reservations/events"
	"cocoresort/internal/reservations/repository"
	"cocoresort/internal/reservations/service"
	"cocoresort/internal/reservations/validator"
	"cocoresort/pkg/config"
	"cocoresort/pkg/dates"
	apperrors "cocoresort/pkg/errors"
	httputil "cocoresort/pkg/http"
	"cocoresort/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookingBody = `{
	"customer_id": "c1",
	"customer_name": "Aldo Rea",
	"customer_contact": "555-0100",
	"room_type": "3 Rooms, 3 Bathrooms Villa",
	"start_date": "2024-07-20",
	"end_date": "2024-07-25",
	"num_people": 6
}`

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	rooms, err := config.ParseRooms(config.DefaultHotelRooms)
	require.NoError(t, err)
	cfg := &config.Config{
		Log:                logger.Discard(),
		HotelName:          config.DefaultHotelName,
		HotelAddress:       config.DefaultHotelAddress,
		HotelRooms:         rooms,
		RoomLedgerEnforced: true,
		PhoneRegions:       []string{"MX"},
	}

	repo, err := repository.NewCSVRepository(t.TempDir(), "reservations", cfg.Log)
	require.NoError(t, err)
	hotel, err := service.NewHotel(cfg)
	require.NoError(t, err)

	svc := service.NewReservationService(
		hotel,
		repo,
		events.NopPublisher{},
		validator.NewBookingRequestValidator(cfg.Log),
		dates.NewParser(cfg.Log),
		cfg,
	)

	router := httprouter.New()
	NewReservationHandler(svc, cfg.Log).RegisterRoutes(router)
	NewHealthHandler(repo, cfg.Log).RegisterRoutes(router)
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestExtractDateRange(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantStart  string
		wantCode   string
	}{
		{
			name:       "spanish range",
			body:       `{"text": "Del 20 de julio de 2024 al 25 de julio de 2024"}`,
			wantStatus: http.StatusOK,
			wantStart:  "2024-07-20",
		},
		{
			name:       "unrecognised format",
			body:       `{"text": "20-07-2024 to 25-07-2024"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidDateRange,
		},
		{
			name:       "malformed body",
			body:       `{"text":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidInput,
		},
		{
			name:       "unknown field",
			body:       `{"txt": "2024-07-20 to 2024-07-25"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/api/v1/date-ranges", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			got := decodeData[DateRangeResponse](t, rec)
			assert.Equal(t, tt.wantStart, got.StartDate)
			assert.Equal(t, "es", got.Language)
		})
	}
}

func TestFindRooms(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/api/v1/rooms?type=2+Rooms,+2+Bathrooms+Villa", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rooms := decodeData[[]RoomResponse](t, rec)
	require.Len(t, rooms, 1)
	assert.Equal(t, RoomResponse{Number: 102, Type: "2 Rooms, 2 Bathrooms Villa", PricePerNight: 2200, Available: true}, rooms[0])

	rec = do(router, http.MethodGet, "/api/v1/rooms?type=Penthouse", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]RoomResponse](t, rec))

	rec = do(router, http.MethodGet, "/api/v1/rooms", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReservationLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodPost, "/api/v1/reservations", bookingBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData[ReservationResponse](t, rec)
	assert.Equal(t, 103, created.RoomNumber)
	assert.Equal(t, 5, created.Nights)
	assert.Equal(t, 16500.0, created.TotalCost)

	rec = do(router, http.MethodPost, "/api/v1/reservations", bookingBody)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apperrors.CodeRoomUnavailable, decodeError(t, rec).Code)

	rec = do(router, http.MethodGet, "/api/v1/reservations/id/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeData[ReservationResponse](t, rec).ID)

	rec = do(router, http.MethodGet, "/api/v1/reservations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	records := decodeData[[]repository.Record](t, rec)
	require.Len(t, records, 1)
	assert.Equal(t, "Aldo Rea", records[0].CustomerName)

	rec = do(router, http.MethodDelete, "/api/v1/reservations/id/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(router, http.MethodDelete, "/api/v1/reservations/id/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodPost, "/api/v1/reservations", bookingBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreate_Rejections(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		from, to   string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown room type",
			from:       `"3 Rooms, 3 Bathrooms Villa"`,
			to:         `"Penthouse"`,
			wantStatus: http.StatusNotFound,
			wantCode:   apperrors.CodeNoMatchingRoom,
		},
		{
			name:       "day first date",
			from:       `"2024-07-20"`,
			to:         `"20-07-2024"`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidDateFormat,
		},
		{
			name:       "no guests",
			from:       `"num_people": 6`,
			to:         `"num_people": 0`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apperrors.CodeInvalidPartySize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/api/v1/reservations", strings.Replace(bookingBody, tt.from, tt.to, 1))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestCreate_FieldDetails(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(bookingBody, `"num_people": 6`, `"num_people": 0`, 1)
	rec := do(router, http.MethodPost, "/api/v1/reservations", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	resp := decodeError(t, rec)
	fields, ok := resp.Details["fields"].([]any)
	require.True(t, ok, "details: %v", resp.Details)
	require.Len(t, fields, 1)
	assert.Equal(t, "NumPeople", fields[0].(map[string]any)["field"])
}

func TestCreateFromSummary(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(SummaryRequest{
		CustomerID:      "5219981234567",
		CustomerContact: "+5219981234567",
		Summary:         "Nombre: Aldo Rea\nNúmero de Personas: 6\nFechas: del 20 de julio de 2024 al 25 de julio de 2024\nTipo de Habitación: 3 Rooms, 3 Bathrooms Villa",
	})
	require.NoError(t, err)

	rec := do(router, http.MethodPost, "/api/v1/reservations/summary", string(body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeData[ReservationResponse](t, rec)
	assert.Equal(t, "2024-07-20", got.StartDate)
	assert.Equal(t, "2024-07-25", got.EndDate)
	assert.Equal(t, 6, got.NumPeople)
}

func TestList_InvalidDay(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/api/v1/reservations?day=20-07-2024", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperrors.CodeInvalidInput, decodeError(t, rec).Code)
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("disk gone") }

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","store":"ok"}`, rec.Body.String())

	down := httprouter.New()
	NewHealthHandler(failingPinger{}, logger.Discard()).RegisterRoutes(down)
	rec = do(down, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
