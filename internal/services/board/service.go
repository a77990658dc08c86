package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/wordscore/internal/dependencies/clock"
	"github.com/mcoot/wordscore/internal/dependencies/random"
	"github.com/mcoot/wordscore/internal/model"
	"github.com/mcoot/wordscore/internal/services/placement"
	"github.com/mcoot/wordscore/internal/storage"
)

// BoardIDLength is the length of generated board IDs
const BoardIDLength = 10

// PlayOutcome is the result of committing a move to a stored board
type PlayOutcome struct {
	Board  *model.Board
	Result placement.Result
	Record model.PlayRecord
}

// Service manages stored boards and applies moves to them.
//
// Plays are made against a copy of the stored board and only saved if the
// engine succeeds, so a failed move never leaves a half-placed word in
// storage. Plays and deletes against the same board are serialised.
type Service struct {
	storage storage.Storage
	engine  *placement.Engine
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[model.BoardID]*boardLock
}

// boardLock serialises work on one board. refs counts the callers holding or
// waiting on it; the entry leaves the map only when nobody does.
type boardLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a new board Service
func New(
	storage storage.Storage,
	engine *placement.Engine,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		engine:  engine,
		clock:   clock,
		random:  random,
		logger:  logger,
		locks:   make(map[model.BoardID]*boardLock),
	}
}

// CreateBoard stores a new empty board
func (s *Service) CreateBoard(ctx context.Context) (*model.Board, error) {
	return s.saveNew(ctx, model.NewBoard())
}

// ImportBoard stores a board parsed from its text form
func (s *Service) ImportBoard(ctx context.Context, text string) (*model.Board, error) {
	board, err := model.ParseBoard(text)
	if err != nil {
		return nil, err
	}
	return s.saveNew(ctx, board)
}

func (s *Service) saveNew(ctx context.Context, board *model.Board) (*model.Board, error) {
	// Generate unique board ID
	for {
		board.ID = model.BoardID(s.random.String(BoardIDLength, random.IDAlphabet))
		exists, err := s.storage.BoardExists(ctx, board.ID)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	if err := s.storage.SaveBoard(ctx, board); err != nil {
		s.logger.Error("failed to save board",
			slog.String("board_id", string(board.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("board created",
		slog.String("board_id", string(board.ID)),
		slog.Int("tiles", board.TileCount()),
	)
	return board, nil
}

// GetBoard retrieves a stored board
func (s *Service) GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error) {
	return s.storage.GetBoard(ctx, id)
}

// DeleteBoard removes a board and its play history. It waits for any play in
// progress on the board to finish.
func (s *Service) DeleteBoard(ctx context.Context, id model.BoardID) error {
	unlock := s.lock(id)
	defer unlock()

	exists, err := s.storage.BoardExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrBoardNotFound
	}

	if err := s.storage.DeleteBoard(ctx, id); err != nil {
		return err
	}

	s.logger.Info("board deleted", slog.String("board_id", string(id)))
	return nil
}

// ScoreMove returns what a move would earn on a stored board without saving anything
func (s *Service) ScoreMove(ctx context.Context, id model.BoardID, move model.Move) (placement.Result, error) {
	board, err := s.storage.GetBoard(ctx, id)
	if err != nil {
		return placement.Result{}, err
	}
	return s.engine.Evaluate(board, move)
}

// Evaluate scores a move against a board that is not stored
func (s *Service) Evaluate(board *model.Board, move model.Move) (placement.Result, error) {
	return s.engine.Evaluate(board, move)
}

// PlayMove commits a move to a stored board and records it in the history
func (s *Service) PlayMove(ctx context.Context, id model.BoardID, move model.Move) (*PlayOutcome, error) {
	unlock := s.lock(id)
	defer unlock()

	stored, err := s.storage.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	board := stored.Clone()
	result, err := s.engine.Play(board, move)
	if err != nil {
		s.logger.Warn("move rejected",
			slog.String("board_id", string(id)),
			slog.String("move", move.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	record := model.PlayRecord{
		BoardID:   id,
		X:         move.X,
		Y:         move.Y,
		Direction: move.Direction,
		Tiles:     move.Tiles,
		Score:     result.Score,
		PlayedAt:  s.clock.Now(),
	}
	if err := s.storage.SavePlay(ctx, board, record); err != nil {
		return nil, fmt.Errorf("saving play on %s: %w", id, err)
	}

	s.logger.Info("move played",
		slog.String("board_id", string(id)),
		slog.String("move", move.String()),
		slog.Int("score", result.Score),
		slog.Int("cross_words", result.CrossWords),
		slog.Bool("attached", result.Attached),
	)
	if !result.Attached && stored.TileCount() > 0 {
		s.logger.Debug("move does not touch existing tiles",
			slog.String("board_id", string(id)),
		)
	}

	return &PlayOutcome{Board: board, Result: result, Record: record}, nil
}

// History returns the plays made on a board, oldest first
func (s *Service) History(ctx context.Context, id model.BoardID) ([]model.PlayRecord, error) {
	exists, err := s.storage.BoardExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrBoardNotFound
	}
	return s.storage.GetPlays(ctx, id)
}

// lock blocks until the caller holds the board's lock and returns the release func
func (s *Service) lock(id model.BoardID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &boardLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(ctx context.Context) (*model.Board, error)
	ImportBoard(ctx context.Context, text string) (*model.Board, error)
	GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error)
	DeleteBoard(ctx context.Context, id model.BoardID) error
	ScoreMove(ctx context.Context, id model.BoardID, move model.Move) (placement.Result, error)
	Evaluate(board *model.Board, move model.Move) (placement.Result, error)
	PlayMove(ctx context.Context, id model.BoardID, move model.Move) (*PlayOutcome, error)
	History(ctx context.Context, id model.BoardID) ([]model.PlayRecord, error)
}

var _ ServiceInterface = (*Service)(nil)
