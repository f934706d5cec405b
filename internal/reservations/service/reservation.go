package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"cocoresort/internal/reservations/events"
	"cocoresort/internal/reservations/repository"
	"cocoresort/internal/reservations/validator"
	"cocoresort/pkg/config"
	"cocoresort/pkg/dates"
	apperrors "cocoresort/pkg/errors"
	"cocoresort/pkg/model"
	"cocoresort/pkg/sanitizer"
)

type ReservationService interface {
	ExtractDateRange(text string) (dates.Range, error)
	FindRooms(roomType string) []*model.Room
	BookRoom(ctx context.Context, req *model.BookingRequest) (*model.Reservation, error)
	Reserve(ctx context.Context, req *model.BookingRequest) (*model.Reservation, error)
	CancelRoom(ctx context.Context, customer *model.Customer, r *model.Reservation) bool
	CancelByID(ctx context.Context, id string) (*model.Reservation, error)
	PersistReservation(ctx context.Context, r *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	ListReservations(ctx context.Context, day time.Time) ([]repository.Record, error)
	BookingRequestFromSummary(customerID, contact, summary string) (*model.BookingRequest, error)
	Customer(id string) (*model.Customer, bool)
}

// roomLedger holds the active reservations of one room across all customers.
type roomLedger struct {
	mu     sync.Mutex
	active []*model.Reservation
}

func (l *roomLedger) conflict(r *model.Reservation) *model.Reservation {
	for _, existing := range l.active {
		if existing.Overlaps(r) {
			return existing
		}
	}
	return nil
}

type reservationService struct {
	hotel     *model.Hotel
	repo      repository.ReservationRepository
	publisher events.Publisher
	validator *validator.BookingRequestValidator
	parser    *dates.Parser
	cfg       *config.Config

	mu           sync.Mutex
	customers    map[string]*model.Customer
	ledgers      map[*model.Room]*roomLedger
	reservations map[string]*model.Reservation
}

func NewReservationService(
	hotel *model.Hotel,
	repo repository.ReservationRepository,
	publisher events.Publisher,
	validator *validator.BookingRequestValidator,
	parser *dates.Parser,
	cfg *config.Config,
) ReservationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &reservationService{
		hotel:        hotel,
		repo:         repo,
		publisher:    publisher,
		validator:    validator,
		parser:       parser,
		cfg:          cfg,
		customers:    make(map[string]*model.Customer),
		ledgers:      make(map[*model.Room]*roomLedger),
		reservations: make(map[string]*model.Reservation),
	}
}

// NewHotel builds the registry from the configured inventory.
func NewHotel(cfg *config.Config) (*model.Hotel, error) {
	hotel, err := model.NewHotel(cfg.HotelName, cfg.HotelAddress)
	if err != nil {
		return nil, err
	}
	for _, spec := range cfg.HotelRooms {
		room, err := model.NewRoom(spec.Number, spec.Type, spec.Price)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", spec.Number, err)
		}
		hotel.AddRoom(room)
	}
	return hotel, nil
}

func (s *reservationService) ExtractDateRange(text string) (dates.Range, error) {
	return s.parser.Parse(text)
}

func (s *reservationService) FindRooms(roomType string) []*model.Room {
	return s.hotel.FindRoomsByType(sanitizer.NormalizeLabel(roomType))
}

// BookRoom books the first room of the requested type for the customer. The
// booking only lives in memory until PersistReservation stores it.
func (s *reservationService) BookRoom(ctx context.Context, req *model.BookingRequest) (*model.Reservation, error) {
	req = s.sanitize(req)
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Booking request validation failed",
			"customer_id", req.CustomerID,
			"room_type", req.RoomType,
			"error", err,
		)
		return nil, err
	}

	rooms := s.hotel.FindRoomsByType(req.RoomType)
	if len(rooms) == 0 {
		s.cfg.Log.Warn("No room matches the requested type",
			"customer_id", req.CustomerID,
			"room_type", req.RoomType,
		)
		return nil, fmt.Errorf("%w: %q", apperrors.ErrNoMatchingRoom, req.RoomType)
	}
	room := rooms[0]

	customer, err := s.registerCustomer(req)
	if err != nil {
		return nil, err
	}

	r, err := model.NewReservation(room, customer, req.StartDate, req.EndDate, req.NumPeople)
	if err != nil {
		s.cfg.Log.Warn("Reservation rejected",
			"customer_id", customer.ID,
			"room", room.Number,
			"error", err,
		)
		return nil, err
	}

	if err := s.commit(r); err != nil {
		s.cfg.Log.Warn("Room unavailable",
			"customer_id", customer.ID,
			"room", room.Number,
			"start_date", req.StartDate,
			"end_date", req.EndDate,
			"error", err,
		)
		return nil, err
	}

	s.publish(ctx, events.EventReservationCreated, r)

	s.cfg.Log.Info("Room booked successfully",
		"id", r.ID,
		"customer_id", customer.ID,
		"room", room.Number,
		"room_type", room.Type,
		"start_date", r.StartDate(),
		"end_date", r.EndDate(),
		"num_people", r.NumPeople,
		"total_cost", r.TotalCost(),
	)
	return r, nil
}

// Reserve books and persists in one step. A booking that cannot be stored is
// cancelled again so memory and store agree.
func (s *reservationService) Reserve(ctx context.Context, req *model.BookingRequest) (*model.Reservation, error) {
	r, err := s.BookRoom(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.PersistReservation(ctx, r); err != nil {
		s.CancelRoom(ctx, r.Customer, r)
		return nil, err
	}
	return r, nil
}

// commit runs the customer invariant and, when enforced, the cross-customer
// room ledger under the room's lock.
func (s *reservationService) commit(r *model.Reservation) error {
	ledger := s.ledgerFor(r.Room)
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	if s.cfg.RoomLedgerEnforced {
		if existing := ledger.conflict(r); existing != nil {
			return fmt.Errorf("%w: room %d is already booked from %s to %s",
				apperrors.ErrRoomUnavailable, r.Room.Number, existing.StartDate(), existing.EndDate())
		}
	}

	if err := r.Customer.MakeReservation(r); err != nil {
		return err
	}
	ledger.active = append(ledger.active, r)

	s.mu.Lock()
	s.reservations[r.ID] = r
	s.mu.Unlock()
	return nil
}

// CancelRoom withdraws r from customer. It reports whether anything was
// cancelled; repeating the call is a no-op.
func (s *reservationService) CancelRoom(ctx context.Context, customer *model.Customer, r *model.Reservation) bool {
	if customer == nil || r == nil {
		return false
	}

	ledger := s.ledgerFor(r.Room)
	ledger.mu.Lock()
	if !customer.CancelReservation(r) {
		ledger.mu.Unlock()
		return false
	}
	if i := slices.Index(ledger.active, r); i >= 0 {
		ledger.active = slices.Delete(ledger.active, i, i+1)
	}
	if len(ledger.active) > 0 {
		r.Room.SetAvailability(false)
	}
	ledger.mu.Unlock()

	s.mu.Lock()
	delete(s.reservations, r.ID)
	s.mu.Unlock()

	s.publish(ctx, events.EventReservationCancelled, r)

	s.cfg.Log.Info("Reservation cancelled successfully",
		"id", r.ID,
		"customer_id", customer.ID,
		"room", r.Room.Number,
		"room_available", r.Room.Available(),
	)
	return true
}

func (s *reservationService) CancelByID(ctx context.Context, id string) (*model.Reservation, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.CancelRoom(ctx, r.Customer, r) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrReservationNotFound, id)
	}
	return r, nil
}

func (s *reservationService) PersistReservation(ctx context.Context, r *model.Reservation) error {
	if err := s.repo.Append(ctx, r); err != nil {
		s.cfg.Log.Error("Failed to persist reservation",
			"id", r.ID,
			"customer_id", r.Customer.ID,
			"error", err,
		)
		return err
	}

	s.cfg.Log.Info("Reservation persisted successfully",
		"id", r.ID,
		"customer_id", r.Customer.ID,
		"room", r.Room.Number,
	)
	return nil
}

func (s *reservationService) GetByID(_ context.Context, id string) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	s.mu.Lock()
	r, ok := s.reservations[id]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrReservationNotFound, id)
	}
	return r, nil
}

func (s *reservationService) ListReservations(ctx context.Context, day time.Time) ([]repository.Record, error) {
	records, err := s.repo.List(ctx, day)
	if err != nil {
		s.cfg.Log.Error("Failed to list reservations",
			"day", dates.FormatISODate(day),
			"error", err,
		)
		return nil, err
	}
	return records, nil
}

func (s *reservationService) Customer(id string) (*model.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[sanitizer.CleanText(id)]
	return c, ok
}

// registerCustomer returns the customer already known under req.CustomerID or
// registers a new one. The name given on first contact is kept.
func (s *reservationService) registerCustomer(req *model.BookingRequest) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.customers[req.CustomerID]; ok {
		return c, nil
	}
	c, err := model.NewCustomer(req.CustomerID, req.CustomerName, req.CustomerContact)
	if err != nil {
		return nil, err
	}
	s.customers[c.ID] = c
	return c, nil
}

func (s *reservationService) ledgerFor(room *model.Room) *roomLedger {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.ledgers[room]
	if !ok {
		l = &roomLedger{}
		s.ledgers[room] = l
	}
	return l
}

// sanitize returns a cleaned copy of req; the caller's value is left untouched.
func (s *reservationService) sanitize(req *model.BookingRequest) *model.BookingRequest {
	return &model.BookingRequest{
		CustomerID:      sanitizer.CleanText(req.CustomerID),
		CustomerName:    sanitizer.NormalizeName(req.CustomerName),
		CustomerContact: sanitizer.NormalizeContact(req.CustomerContact, s.cfg.PhoneRegions),
		RoomType:        sanitizer.NormalizeLabel(req.RoomType),
		StartDate:       sanitizer.CleanText(req.StartDate),
		EndDate:         sanitizer.CleanText(req.EndDate),
		NumPeople:       req.NumPeople,
	}
}

func (s *reservationService) publish(ctx context.Context, eventType string, r *model.Reservation) {
	if err := s.publisher.Publish(ctx, eventType, r); err != nil {
		s.cfg.Log.Warn("Failed to publish reservation event",
			"event_type", eventType,
			"id", r.ID,
			"error", err,
		)
	}
}
