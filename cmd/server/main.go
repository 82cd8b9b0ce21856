package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/offerresolver/internal/handler"
	"github.com/dharmasatrya/offerresolver/internal/ratelimit"
	"github.com/dharmasatrya/offerresolver/internal/store"
)

type Config struct {
	Port             string
	StoreBackend     string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	DocumentTTL      time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
	RateLimitIdle    time.Duration
	MaxDocumentBytes int64
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limiter := ratelimit.NewClientLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
		IdleTimeout:       cfg.RateLimitIdle,
	})

	documentStore, err := initializeStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	defer documentStore.Close()

	offersHandler := handler.NewOffersHandler(documentStore, cfg.MaxDocumentBytes)

	api := e.Group("/api/v1", limiter.Middleware())
	offersHandler.Register(api)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting offer resolver server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initializeStore(cfg Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		redisStore, err := store.NewRedisStore(store.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.DocumentTTL,
		})
		if err != nil {
			return nil, err
		}
		log.Printf("Redis document store enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.DocumentTTL)
		return redisStore, nil
	default:
		log.Printf("In-memory document store enabled (TTL: %v)", cfg.DocumentTTL)
		return store.NewMemoryStore(cfg.DocumentTTL), nil
	}
}

func loadConfig() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		StoreBackend:     getEnv("STORE_BACKEND", "memory"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		DocumentTTL:      getEnvDuration("DOCUMENT_TTL", 30*time.Minute),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", ratelimit.DefaultConfig().RequestsPerSecond),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", ratelimit.DefaultConfig().BurstSize),
		RateLimitIdle:    getEnvDuration("RATE_LIMIT_IDLE_TIMEOUT", ratelimit.DefaultConfig().IdleTimeout),
		MaxDocumentBytes: int64(getEnvInt("MAX_DOCUMENT_BYTES", handler.DefaultMaxDocumentBytes)),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
