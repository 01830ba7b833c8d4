package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Booking  BookingConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresConfig struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string

	// AdminName is the maintenance database used when the target
	// database itself has to be created.
	AdminName string
}

// DSN builds the connection string for the target database.
func (c PostgresConfig) DSN() string {
	return c.dsn(c.Name)
}

// AdminDSN builds the connection string for the maintenance database.
func (c PostgresConfig) AdminDSN() string {
	return c.dsn(c.AdminName)
}

func (c PostgresConfig) dsn(dbName string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, dbName, c.SSLMode,
	)
}

type BookingConfig struct {
	// BusinessMultiplier scales the flight base price for business
	// class tickets. Economy always pays the base price.
	BusinessMultiplier   float64
	MaxReferenceAttempts int
}

type AdminConfig struct {
	Token string
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	requestTimeout := 5 * time.Second
	if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
		requestTimeout, err = time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid REQUEST_TIMEOUT: %w", op, err)
		}
	}

	serverCfg := ServerConfig{
		Host:           serverHost,
		Port:           serverPort,
		RequestTimeout: requestTimeout,
	}

	postgresHost := os.Getenv("POSTGRES_HOST")
	if postgresHost == "" {
		postgresHost = "localhost"
	}

	postgresPortStr := os.Getenv("POSTGRES_PORT")
	if postgresPortStr == "" {
		postgresPortStr = "5432"
	}

	postgresPort, err := strconv.Atoi(postgresPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid POSTGRES_PORT: %w", op, err)
	}

	postgresUser := os.Getenv("POSTGRES_USER")
	if postgresUser == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_USER", op)
	}

	postgresPassword := os.Getenv("POSTGRES_PASSWORD")
	if postgresPassword == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_PASSWORD", op)
	}

	postgresDB := os.Getenv("POSTGRES_DB")
	if postgresDB == "" {
		postgresDB = "skybook"
	}

	postgresAdminDB := os.Getenv("POSTGRES_ADMIN_DB")
	if postgresAdminDB == "" {
		postgresAdminDB = "postgres"
	}

	postgresSSLMode := os.Getenv("POSTGRES_SSLMODE")
	if postgresSSLMode == "" {
		postgresSSLMode = "disable"
	}

	postgresCfg := PostgresConfig{
		User:      postgresUser,
		Password:  postgresPassword,
		Name:      postgresDB,
		Host:      postgresHost,
		Port:      postgresPort,
		SSLMode:   postgresSSLMode,
		AdminName: postgresAdminDB,
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisCfg := RedisConfig{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	}

	businessMultiplier := 1.5
	if s := os.Getenv("BUSINESS_CLASS_MULTIPLIER"); s != "" {
		businessMultiplier, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid BUSINESS_CLASS_MULTIPLIER: %w", op, err)
		}
		if businessMultiplier < 1 {
			return nil, fmt.Errorf("%s: BUSINESS_CLASS_MULTIPLIER must be >= 1", op)
		}
	}

	bookingCfg := BookingConfig{
		BusinessMultiplier:   businessMultiplier,
		MaxReferenceAttempts: 5,
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		return nil, fmt.Errorf("%s: missing ADMIN_TOKEN", op)
	}

	return &Config{
		Server:   serverCfg,
		Postgres: postgresCfg,
		Redis:    redisCfg,
		Booking:  bookingCfg,
		Admin:    AdminConfig{Token: adminToken},
	}, nil
}
