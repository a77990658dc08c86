package model

import (
	"fmt"
	"strings"
	"time"
)

// Direction is the axis a run of tiles is laid along
type Direction string

const (
	Across Direction = "across" // increasing column (x)
	Down   Direction = "down"   // increasing row (y)
)

// ParseDirection accepts "across"/"down" and the short forms "r"/"d"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "across", "r":
		return Across, nil
	case "down", "d":
		return Down, nil
	default:
		return "", fmt.Errorf("%w: expected %q or %q, got %q", ErrInvalidDirection, Across, Down, s)
	}
}

// Valid reports whether d is one of the two recognised axes
func (d Direction) Valid() bool {
	return d == Across || d == Down
}

// Step returns the x and y increments for one square along the axis
func (d Direction) Step() (dx, dy int) {
	if d == Across {
		return 1, 0
	}
	return 0, 1
}

// Perpendicular returns the opposite axis
func (d Direction) Perpendicular() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// Move is a request to lay Tiles, in reading order, starting at (X, Y)
type Move struct {
	X         int
	Y         int
	Direction Direction
	Tiles     string
}

func (m Move) String() string {
	return fmt.Sprintf("%s at (%d,%d) %s", m.Tiles, m.X, m.Y, m.Direction)
}

// PlayRecord is a committed move and the score it earned
type PlayRecord struct {
	BoardID   BoardID   `json:"board_id"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Direction Direction `json:"direction"`
	Tiles     string    `json:"tiles"`
	Score     int       `json:"score"`
	PlayedAt  time.Time `json:"played_at"`
}

// Move returns the move this record was created from
func (r PlayRecord) Move() Move {
	return Move{X: r.X, Y: r.Y, Direction: r.Direction, Tiles: r.Tiles}
}
