package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Services ServicesConfig
	Trips    TripsConfig
	Places   PlacesConfig
	Logger   LoggerConfig
}

// ServicesConfig contains URLs for the other services a binary talks to
type ServicesConfig struct {
	PlacesServiceURL string
	PlannerURL       string
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TripsConfig contains trip service specific configuration
type TripsConfig struct {
	// Storage selects the persistence backend for trips: "postgres" or "local".
	Storage string
}

// PlacesConfig contains place catalog specific configuration
type PlacesConfig struct {
	SeedCatalog    bool
	GeoSetKey      string  // Redis geo set holding place coordinates
	NearbyRadiusKm float64 // default radius for nearby search
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level string
}
