package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wordscore/internal/dependencies/clock"
	"github.com/mcoot/wordscore/internal/dependencies/random"
	"github.com/mcoot/wordscore/internal/services/board"
	"github.com/mcoot/wordscore/internal/services/placement"
	"github.com/mcoot/wordscore/internal/storage"
	"github.com/mcoot/wordscore/internal/storage/memory"
	redisstorage "github.com/mcoot/wordscore/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Engine       *placement.Engine
	BoardService *board.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	logger.Info("storage configured", slog.String("type", storageType))

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// Close releases the storage backend's connections, if it holds any
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	engine := placement.New()
	boardService := board.New(store, engine, clk, rnd, logger)

	return &App{
		Storage:      store,
		Clock:        clk,
		Random:       rnd,
		Engine:       engine,
		BoardService: boardService,
	}
}
