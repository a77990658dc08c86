package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordscore/internal/model"
	"github.com/mcoot/wordscore/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Boards are kept in their text form so they can be inspected with redis-cli.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Board operations

func (s *Storage) SaveBoard(ctx context.Context, board *model.Board) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, boardKey(board.ID), board.String(), s.cfg.BoardTTL)
	if s.cfg.BoardTTL > 0 {
		// Keep history alive as long as the board
		pipe.Expire(ctx, playsKey(board.ID), s.cfg.BoardTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error) {
	text, err := s.client.Get(ctx, boardKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBoardNotFound
		}
		return nil, err
	}

	board, err := model.ParseBoard(text)
	if err != nil {
		return nil, fmt.Errorf("stored board %s: %w", id, err)
	}
	board.ID = id
	return board, nil
}

func (s *Storage) DeleteBoard(ctx context.Context, id model.BoardID) error {
	return s.client.Del(ctx, boardKey(id), playsKey(id)).Err()
}

func (s *Storage) BoardExists(ctx context.Context, id model.BoardID) (bool, error) {
	exists, err := s.client.Exists(ctx, boardKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Play history operations

// SavePlay writes the board and appends the record in one MULTI/EXEC
func (s *Storage) SavePlay(ctx context.Context, board *model.Board, record model.PlayRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := playsKey(board.ID)
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, boardKey(board.ID), board.String(), s.cfg.BoardTTL)
	pipe.RPush(ctx, key, data)
	if s.cfg.BoardTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.BoardTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlays(ctx context.Context, id model.BoardID) ([]model.PlayRecord, error) {
	items, err := s.client.LRange(ctx, playsKey(id), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	plays := make([]model.PlayRecord, 0, len(items))
	for _, item := range items {
		var record model.PlayRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, err
		}
		plays = append(plays, record)
	}
	return plays, nil
}
