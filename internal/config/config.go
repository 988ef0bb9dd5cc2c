package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	RedisAddress     string
	ImageHostAddress string
	ImageHostKey     string
	JWTSecret        string
	DeliveryInterval time.Duration
	// DeliveryAfter is how long a shipped order ripens before the worker
	// confirms delivery automatically.
	DeliveryAfter   time.Duration
	WorkerPoolSize  int
	DeliveryBatch   int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultRedisAddress     = "localhost:6379"
	defaultImageHost        = "https://api.imgbb.com"
	defaultJWTSecret        = "change-me-in-production"
	defaultDeliveryInterval = time.Minute
	defaultDeliveryAfter    = 72 * time.Hour
	defaultWorkerPoolSize   = 4
	defaultDeliveryBatch    = 32
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		RedisAddress:     getString(lookup, "REDIS_ADDRESS", defaultRedisAddress),
		ImageHostAddress: getString(lookup, "IMAGE_HOST_ADDRESS", defaultImageHost),
		ImageHostKey:     getString(lookup, "IMAGE_HOST_KEY", ""),
		JWTSecret:        getString(lookup, "JWT_SECRET", defaultJWTSecret),
		DeliveryInterval: getDuration(lookup, "DELIVERY_POLL_INTERVAL", defaultDeliveryInterval),
		DeliveryAfter:    getDuration(lookup, "DELIVERY_AFTER", defaultDeliveryAfter),
		WorkerPoolSize:   getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		DeliveryBatch:    getInt(lookup, "DELIVERY_BATCH_SIZE", defaultDeliveryBatch),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		deliveryIntervalStr = cfg.DeliveryInterval.String()
		deliveryAfterStr    = cfg.DeliveryAfter.String()
		shutdownTimeoutStr  = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis address for read-model events")
	fs.StringVar(&cfg.ImageHostAddress, "image-host", cfg.ImageHostAddress, "Image host base URL")
	fs.StringVar(&cfg.ImageHostKey, "image-host-key", cfg.ImageHostKey, "Image host API key")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent delivery workers")
	fs.StringVar(&deliveryIntervalStr, "delivery-interval", deliveryIntervalStr, "Interval between delivery sweeps")
	fs.StringVar(&deliveryAfterStr, "delivery-after", deliveryAfterStr, "Age at which shipped orders auto-deliver")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.DeliveryBatch, "delivery-batch", cfg.DeliveryBatch, "Maximum orders per delivery sweep")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.DeliveryInterval, err = time.ParseDuration(deliveryIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid delivery interval: %w", err)
	}

	if cfg.DeliveryAfter, err = time.ParseDuration(deliveryAfterStr); err != nil {
		return nil, fmt.Errorf("invalid delivery-after duration: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.DeliveryBatch <= 0 {
		cfg.DeliveryBatch = defaultDeliveryBatch
	}

	if cfg.DeliveryInterval <= 0 {
		cfg.DeliveryInterval = defaultDeliveryInterval
	}

	if cfg.DeliveryAfter <= 0 {
		cfg.DeliveryAfter = defaultDeliveryAfter
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
