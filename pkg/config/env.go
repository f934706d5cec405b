package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvStoreBackend           = "STORE_BACKEND"
	EnvReservationsDir        = "RESERVATIONS_DIR"
	EnvReservationsFilePrefix = "RESERVATIONS_FILE_PREFIX"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvHotelName          = "HOTEL_NAME"
	EnvHotelAddress       = "HOTEL_ADDRESS"
	EnvHotelRooms         = "HOTEL_ROOMS"
	EnvRoomLedgerEnforced = "ROOM_LEDGER_ENFORCED"
	EnvPhoneRegions       = "PHONE_REGIONS"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
