package handler

import "github.com/julienschmidt/httprouter"

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/date-ranges", h.ExtractDateRange)
	router.GET("/api/v1/rooms", h.FindRooms)

	router.POST("/api/v1/reservations", h.Create)
	router.POST("/api/v1/reservations/summary", h.CreateFromSummary)
	router.GET("/api/v1/reservations", h.List)
	router.GET("/api/v1/reservations/id/:id", h.GetByID)
	router.DELETE("/api/v1/reservations/id/:id", h.Cancel)
}
