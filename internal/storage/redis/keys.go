package redis

import (
	"fmt"

	"github.com/mcoot/wordscore/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "wordscore"

// boardKey returns the Redis key holding a board's text form
func boardKey(id model.BoardID) string {
	return fmt.Sprintf("%s:board:%s", keyPrefix, id)
}

// playsKey returns the Redis key for the LIST of plays made on a board
func playsKey(id model.BoardID) string {
	return fmt.Sprintf("%s:plays:%s", keyPrefix, id)
}
