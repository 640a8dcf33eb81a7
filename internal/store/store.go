// internal/store/store.go
//
// Persistence gateway for the Bingo domain.
// Defines:
//   - One interface per entity (statuses, games, gamers, boards, moves).
//   - Store, the union the service layer depends on.
//   - Sentinel errors shared by every backend.
//
// Backends: memory.go (process-local maps) and sql.go (sqlite or postgres
// through database/sql and squirrel).
//
// Reads of games and gamers come back hydrated: a Game carries its Status,
// Gamers (each with Status and Board) and Moves ordered by id.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReferenced is returned when deleting a row other rows still point at.
	ErrReferenced = errors.New("still referenced")
)

type StatusStore interface {
	ListStatuses(ctx context.Context) ([]bingo.Status, error)
	GetStatus(ctx context.Context, id int64) (bingo.Status, error)
	CreateStatus(ctx context.Context, s *bingo.Status) error
	UpdateStatus(ctx context.Context, s bingo.Status) error
	// DeleteStatus fails with ErrReferenced while a game or gamer uses it.
	DeleteStatus(ctx context.Context, id int64) error
}

type GameStore interface {
	ListGames(ctx context.Context) ([]bingo.Game, error)
	GetGame(ctx context.Context, id int64) (bingo.Game, error)
	GameExists(ctx context.Context, id int64) (bool, error)
	CreateGame(ctx context.Context, g *bingo.Game) error
	// UpdateGame writes winner, status and update timestamp.
	UpdateGame(ctx context.Context, g bingo.Game) error
	// SetGameStatus writes the status reference and the timestamp together.
	SetGameStatus(ctx context.Context, id, statusID int64, at time.Time) error
	SetGameWinner(ctx context.Context, id int64, winner string, at time.Time) error
	// DeleteGame removes the game with its gamers, their boards and its moves.
	DeleteGame(ctx context.Context, id int64) error
}

type GamerStore interface {
	ListGamers(ctx context.Context) ([]bingo.Gamer, error)
	GetGamer(ctx context.Context, id int64) (bingo.Gamer, error)
	// FindGamerByUser returns the most recently created gamer with that name.
	FindGamerByUser(ctx context.Context, user string) (bingo.Gamer, error)
	CreateGamer(ctx context.Context, g *bingo.Gamer) error
	// UpdateGamer writes user, status, board, game and update timestamp.
	UpdateGamer(ctx context.Context, g bingo.Gamer) error
	SetGamerStatus(ctx context.Context, id, statusID int64, at time.Time) error
	SetGamerBoard(ctx context.Context, id, boardID int64, at time.Time) error
	SetGamerGame(ctx context.Context, id, gameID int64, at time.Time) error
	// DeleteGamer removes the gamer and the board it owns.
	DeleteGamer(ctx context.Context, id int64) error
}

type BoardStore interface {
	ListBoards(ctx context.Context) ([]bingo.Board, error)
	GetBoard(ctx context.Context, id int64) (bingo.Board, error)
	CreateBoard(ctx context.Context, b *bingo.Board) error
	UpdateBoard(ctx context.Context, b bingo.Board) error
	// DeleteBoard clears the owning gamer's board reference.
	DeleteBoard(ctx context.Context, id int64) error
}

type MoveStore interface {
	ListMoves(ctx context.Context) ([]bingo.Move, error)
	GetMove(ctx context.Context, id int64) (bingo.Move, error)
	ListGameMoves(ctx context.Context, gameID int64) ([]bingo.Move, error)
	CreateMove(ctx context.Context, m *bingo.Move) error
	UpdateMove(ctx context.Context, m bingo.Move) error
	DeleteMove(ctx context.Context, id int64) error
}

// Store is everything the service layer persists through.
type Store interface {
	StatusStore
	GameStore
	GamerStore
	BoardStore
	MoveStore
	Close() error
}
