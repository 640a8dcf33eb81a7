// internal/bingo/types.go
//
// Core type definitions for the Bingo domain.
// Defines:
//   - Status: administered reference data for game and gamer lifecycles.
//   - Game: one match, owning its gamers and called moves.
//   - Gamer: a participant owning one board; points back to its game by id.
//   - Board: a 5x5 card (see board.go).
//   - Move: one called number with its derived letter.
//
// JSON names follow the wire shape the web client already speaks
// (idGame, statusGame, creationAt, ...).

package bingo

import "time"

// Status is a lifecycle stage attached to a Game or a Gamer.
type Status struct {
	ID          int64  `json:"idStatus"`
	Name        string `json:"statusName"`
	Description string `json:"statusDescription"`
}

// Game holds a single Bingo match.
// Gamers and Moves are owned: deleting the game deletes them.
type Game struct {
	ID        int64      `json:"idGame"`
	Winner    *string    `json:"winner"`
	CreatedAt time.Time  `json:"creationAt"`
	UpdatedAt *time.Time `json:"updateAt"`
	StatusID  int64      `json:"-"`
	Status    *Status    `json:"statusGame"`
	Gamers    []Gamer    `json:"gamers"`
	Moves     []Move     `json:"moves"`
}

// CalledNumbers returns the set of numbers already drawn in the game.
func (g *Game) CalledNumbers() map[int]bool {
	called := make(map[int]bool, len(g.Moves))
	for _, m := range g.Moves {
		called[m.Number] = true
	}
	return called
}

// Gamer is a participant. GameID stays nil until the gamer joins a game.
type Gamer struct {
	ID        int64      `json:"idGamer"`
	CreatedAt time.Time  `json:"creationAt"`
	UpdatedAt *time.Time `json:"updateAt"`
	User      string     `json:"user"`
	StatusID  int64      `json:"-"`
	Status    *Status    `json:"statusGamer"`
	BoardID   *int64     `json:"-"`
	Board     *Board     `json:"board"`
	GameID    *int64     `json:"gameId"`
}

// Move is a single call: a number in [1,75] and its column letter.
type Move struct {
	ID     int64  `json:"idMove"`
	Letter string `json:"letter"`
	Number int    `json:"number"`
	GameID int64  `json:"gameId"`
}

// DefaultStatuses is the reference data seeded into an empty store.
// Ids 2 and 7 are the defaults for new games and new gamers.
func DefaultStatuses() []Status {
	return []Status{
		{ID: 1, Name: "created", Description: "Game created, waiting for gamers"},
		{ID: 2, Name: "in_progress", Description: "Game in progress"},
		{ID: 3, Name: "finished", Description: "Game finished"},
		{ID: 4, Name: "active", Description: "Gamer playing"},
		{ID: 5, Name: "won", Description: "Gamer won the game"},
		{ID: 6, Name: "lost", Description: "Gamer lost the game"},
		{ID: 7, Name: "registered", Description: "Gamer registered, waiting for a game"},
	}
}
