package main

import (
	"context"

	"cocoresort/internal/reservations/events"
	"cocoresort/internal/reservations/handler"
	"cocoresort/internal/reservations/repository"
	"cocoresort/internal/reservations/service"
	"cocoresort/internal/reservations/validator"
	"cocoresort/pkg/app"
	"cocoresort/pkg/config"
	"cocoresort/pkg/dates"
	"cocoresort/pkg/kafka"
	kafka_middleware "cocoresort/pkg/kafka/middleware"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Reservations service")
	repo := initRepository(cfg)
	reservationService := initServices(cfg, repo)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewReservationHandler(reservationService, cfg.Log),
		handler.NewHealthHandler(repo, cfg.Log),
	)
	serverApp.Run()
}

func initRepository(cfg *config.Config) repository.ReservationRepository {
	switch cfg.StoreBackend {
	case config.StoreBackendMongo:
		cfg.SetMongo()
		repo := repository.NewMongoRepository(
			cfg.Client.Mongo.Database(cfg.MongoDatabaseName),
			cfg.ReadTimeout,
			cfg.WriteTimeout,
			cfg.Log,
		)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
		defer cancel()
		if err := repo.EnsureIndexes(ctx); err != nil {
			cfg.Log.Fatal("Failed to create reservation indexes", "error", err)
		}
		cfg.Log.Info("Reservation store initialized", "backend", cfg.StoreBackend, "database", cfg.MongoDatabaseName)
		return repo
	default:
		repo, err := repository.NewCSVRepository(cfg.ReservationsDir, cfg.ReservationsFilePrefix, cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to initialize reservation store", "error", err)
		}
		cfg.Log.Info("Reservation store initialized", "backend", cfg.StoreBackend, "dir", cfg.ReservationsDir)
		return repo
	}
}

func initPublisher(cfg *config.Config) events.Publisher {
	if cfg.Kafka == nil || !cfg.Kafka.Enabled() {
		cfg.Log.Info("Kafka disabled, reservation events will not be published")
		return events.NopPublisher{}
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Kafka.ReservationsTopic, cfg.Kafka.ReservationsDLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if cfg.Kafka.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}
	cfg.Client.SetProducer(producer)

	cfg.Log.Info("Reservation events enabled", "topic", producer.Topic())
	return events.NewKafkaPublisher(producer, cfg.Log)
}

func initServices(cfg *config.Config, repo repository.ReservationRepository) service.ReservationService {
	hotel, err := service.NewHotel(cfg)
	if err != nil {
		cfg.Log.Fatal("Invalid hotel inventory", "error", err)
	}

	reservationService := service.NewReservationService(
		hotel,
		repo,
		initPublisher(cfg),
		validator.NewBookingRequestValidator(cfg.Log),
		dates.NewParser(cfg.Log),
		cfg,
	)

	cfg.Log.Info("Reservation service initialized",
		"hotel", hotel.Name,
		"rooms", len(hotel.Rooms()),
		"room_ledger_enforced", cfg.RoomLedgerEnforced,
	)
	return reservationService
}
