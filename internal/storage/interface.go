package storage

import (
	"context"

	"github.com/mcoot/wordscore/internal/model"
)

// Storage defines the interface for board persistence
type Storage interface {
	// Board operations
	SaveBoard(ctx context.Context, board *model.Board) error
	GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error)
	DeleteBoard(ctx context.Context, id model.BoardID) error
	BoardExists(ctx context.Context, id model.BoardID) (bool, error)

	// Play history operations

	// SavePlay stores the board as it stands after a play together with the
	// play's record. Either both are written or neither is.
	SavePlay(ctx context.Context, board *model.Board, record model.PlayRecord) error
	GetPlays(ctx context.Context, id model.BoardID) ([]model.PlayRecord, error)
}
