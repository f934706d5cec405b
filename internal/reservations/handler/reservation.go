package handler

import (
	"net/http"
	"strings"

	"cocoresort/internal/reservations/service"
	apperrors "cocoresort/pkg/errors"
	httputil "cocoresort/pkg/http"
	"cocoresort/pkg/logger"
	"cocoresort/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReservationHandler struct {
	service service.ReservationService
	log     *logger.Logger
}

func NewReservationHandler(service service.ReservationService, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log,
	}
}

func (h *ReservationHandler) ExtractDateRange(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req DateRangeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "ExtractDateRange", err)
		return
	}

	rng, err := h.service.ExtractDateRange(req.Text)
	if err != nil {
		h.writeError(w, "ExtractDateRange", err)
		return
	}

	if err := httputil.WriteSuccess(w, DateRangeResponse{
		StartDate: rng.StartISO(),
		EndDate:   rng.EndISO(),
		Pattern:   rng.Pattern,
		Language:  string(rng.Language),
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "ExtractDateRange", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) FindRooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	roomType := r.URL.Query().Get("type")
	if strings.TrimSpace(roomType) == "" {
		h.writeError(w, "FindRooms", apperrors.InvalidInput("'type' query parameter is required"))
		return
	}

	rooms := h.service.FindRooms(roomType)
	resp := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, newRoomResponse(room))
	}

	if err := httputil.WriteList(w, resp, len(resp)); err != nil {
		h.log.Error("failed to write list response", "handler", "FindRooms", "operation", "WriteList", "error", err)
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	h.reserve(w, r, "Create", &req)
}

func (h *ReservationHandler) CreateFromSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req SummaryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "CreateFromSummary", err)
		return
	}

	booking, err := h.service.BookingRequestFromSummary(req.CustomerID, req.CustomerContact, req.Summary)
	if err != nil {
		h.writeError(w, "CreateFromSummary", err)
		return
	}

	h.reserve(w, r, "CreateFromSummary", booking)
}

func (h *ReservationHandler) reserve(w http.ResponseWriter, r *http.Request, name string, req *model.BookingRequest) {
	reservation, err := h.service.Reserve(r.Context(), req)
	if err != nil {
		h.writeError(w, name, err)
		return
	}

	if err := httputil.WriteCreated(w, newReservationResponse(reservation)); err != nil {
		h.log.Error("failed to write created response", "handler", name, "operation", "WriteCreated", "error", err)
	}
}

func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reservation, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, newReservationResponse(reservation)); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if _, err := h.service.CancelByID(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Cancel", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	day, err := httputil.ExtractDay(r, "day")
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	records, err := h.service.ListReservations(r.Context(), day)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WriteList(w, records, len(records)); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, name string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", name, "operation", "WriteError", "error", writeErr)
	}
}
