package config

import "time"

const (
	StoreBackendCSV   = "csv"
	StoreBackendMongo = "mongo"
)

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultStoreBackend           = StoreBackendCSV
	DefaultReservationsDir        = "data"
	DefaultReservationsFilePrefix = "reservations"

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "cocoresort"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultHotelName    = "Coco Resort"
	DefaultHotelAddress = "123 Beach Avenue"
	// number|type|nightly price, separated by ';'
	DefaultHotelRooms = "101|1 Room, 1 Bathroom Apartment|1100;" +
		"102|2 Rooms, 2 Bathrooms Villa|2200;" +
		"103|3 Rooms, 3 Bathrooms Villa|3300;" +
		"104|4 Rooms, 4 Bathrooms Villa|4400"
	DefaultRoomLedgerEnforced = true
	DefaultPhoneRegions       = "MX,US,ES"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
