package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cocoresort/pkg/client"
	kafka_config "cocoresort/pkg/kafka/config"
	"cocoresort/pkg/logger"
)

// RoomSpec is one entry of the hotel inventory.
type RoomSpec struct {
	Number int
	Type   string
	Price  float64
}

type Config struct {
	Port     string
	LogLevel string

	StoreBackend           string
	ReservationsDir        string
	ReservationsFilePrefix string

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	HotelName          string
	HotelAddress       string
	HotelRooms         []RoomSpec
	RoomLedgerEnforced bool
	PhoneRegions       []string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Kafka *kafka_config.Config

	Log    *logger.Logger
	Client *client.Client

	loadErrors []string
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		StoreBackend:           strings.ToLower(getEnvStr(EnvStoreBackend, DefaultStoreBackend)),
		ReservationsDir:        getEnvStr(EnvReservationsDir, DefaultReservationsDir),
		ReservationsFilePrefix: getEnvStr(EnvReservationsFilePrefix, DefaultReservationsFilePrefix),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		HotelName:          getEnvStr(EnvHotelName, DefaultHotelName),
		HotelAddress:       getEnvStr(EnvHotelAddress, DefaultHotelAddress),
		RoomLedgerEnforced: getEnvBool(EnvRoomLedgerEnforced, DefaultRoomLedgerEnforced),
		PhoneRegions:       splitList(getEnvStr(EnvPhoneRegions, DefaultPhoneRegions)),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Client: client.NewClient(),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})

	rooms, err := ParseRooms(getEnvStr(EnvHotelRooms, DefaultHotelRooms))
	if err != nil {
		cfg.loadErrors = append(cfg.loadErrors, err.Error())
	}
	cfg.HotelRooms = rooms

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.loadErrors = append(cfg.loadErrors, err.Error())
	}
	cfg.Kafka = kafkaCfg

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Validate() error {
	errors := append([]string{}, cfg.loadErrors...)

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch cfg.StoreBackend {
	case StoreBackendCSV:
		if cfg.ReservationsDir == "" {
			errors = append(errors, "ReservationsDir cannot be empty")
		}
		if cfg.ReservationsFilePrefix == "" || strings.ContainsAny(cfg.ReservationsFilePrefix, `/\`) {
			errors = append(errors, fmt.Sprintf("ReservationsFilePrefix must be a plain file name prefix, got: %q", cfg.ReservationsFilePrefix))
		}
	case StoreBackendMongo:
		if cfg.MongoURI == "" {
			errors = append(errors, "MongoURI cannot be empty")
		} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	default:
		errors = append(errors, fmt.Sprintf("StoreBackend must be one of [csv, mongo], got: %s", cfg.StoreBackend))
	}

	if strings.TrimSpace(cfg.HotelName) == "" {
		errors = append(errors, "HotelName cannot be empty")
	}
	if strings.TrimSpace(cfg.HotelAddress) == "" {
		errors = append(errors, "HotelAddress cannot be empty")
	}
	if len(cfg.HotelRooms) == 0 && len(cfg.loadErrors) == 0 {
		errors = append(errors, "HotelRooms must list at least one room")
	}
	if len(cfg.PhoneRegions) == 0 {
		errors = append(errors, "PhoneRegions must list at least one region")
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"store_backend", cfg.StoreBackend,
		"reservations_dir", cfg.ReservationsDir,
		"reservations_file_prefix", cfg.ReservationsFilePrefix,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"hotel_name", cfg.HotelName,
		"hotel_rooms", len(cfg.HotelRooms),
		"room_ledger_enforced", cfg.RoomLedgerEnforced,
		"phone_regions", cfg.PhoneRegions,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
	if cfg.Kafka != nil {
		cfg.Kafka.LogConfiguration(cfg.Log.Info)
	}
}

// ParseRooms reads an inventory written as "number|type|price" entries
// separated by ';'.
func ParseRooms(raw string) ([]RoomSpec, error) {
	var rooms []RoomSpec
	for i, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("HotelRooms entry %d must be number|type|price, got: %q", i+1, entry)
		}
		number, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("HotelRooms entry %d has an invalid room number: %q", i+1, parts[0])
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("HotelRooms entry %d has an invalid price: %q", i+1, parts[2])
		}
		rooms = append(rooms, RoomSpec{
			Number: number,
			Type:   strings.TrimSpace(parts[1]),
			Price:  price,
		})
	}
	return rooms, nil
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, strings.ToUpper(item))
		}
	}
	return out
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}
