// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used for tests and for STORE_DRIVER=memory when durability is not needed.
//
// Characteristics:
//   - One map per entity keyed by id, with a per-table id counter.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Rows are stored flat; reads hydrate games and gamers on the way out.
//   - Seeded with bingo.DefaultStatuses().
//   - State is lost when the process restarts.

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex // guards everything below
	statuses map[int64]bingo.Status
	games    map[int64]bingo.Game
	gamers   map[int64]bingo.Gamer
	boards   map[int64]bingo.Board
	moves    map[int64]bingo.Move
	nextID   map[string]int64 // keyed by table name
}

// NewMemoryStore constructs a new in-memory Store holding the default statuses.
func NewMemoryStore() Store {
	m := &memory{
		statuses: make(map[int64]bingo.Status),
		games:    make(map[int64]bingo.Game),
		gamers:   make(map[int64]bingo.Gamer),
		boards:   make(map[int64]bingo.Board),
		moves:    make(map[int64]bingo.Move),
		nextID:   make(map[string]int64),
	}
	for _, s := range bingo.DefaultStatuses() {
		m.statuses[s.ID] = s
		if s.ID > m.nextID["statuses"] {
			m.nextID["statuses"] = s.ID
		}
	}
	return m
}

func (m *memory) Close() error { return nil }

// id hands out the next id for table. Caller holds the write lock.
func (m *memory) id(table string) int64 {
	m.nextID[table]++
	return m.nextID[table]
}

func sortedIDs[V any](rows map[int64]V) []int64 {
	ids := make([]int64, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func ptr[T any](v T) *T { return &v }

/* ------------------------------ statuses ------------------------------ */

func (m *memory) ListStatuses(ctx context.Context) ([]bingo.Status, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bingo.Status, 0, len(m.statuses))
	for _, id := range sortedIDs(m.statuses) {
		out = append(out, m.statuses[id])
	}
	return out, nil
}

func (m *memory) GetStatus(ctx context.Context, id int64) (bingo.Status, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.statuses[id]; ok {
		return s, nil
	}
	return bingo.Status{}, ErrNotFound
}

func (m *memory) CreateStatus(ctx context.Context, s *bingo.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.id("statuses")
	m.statuses[s.ID] = *s
	return nil
}

func (m *memory) UpdateStatus(ctx context.Context, s bingo.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.statuses[s.ID]; !ok {
		return ErrNotFound
	}
	m.statuses[s.ID] = s
	return nil
}

func (m *memory) DeleteStatus(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.statuses[id]; !ok {
		return ErrNotFound
	}
	for _, g := range m.games {
		if g.StatusID == id {
			return ErrReferenced
		}
	}
	for _, g := range m.gamers {
		if g.StatusID == id {
			return ErrReferenced
		}
	}
	delete(m.statuses, id)
	return nil
}

/* -------------------------------- games ------------------------------- */

// hydrateGame attaches status, gamers and moves. Caller holds a lock.
func (m *memory) hydrateGame(g bingo.Game) bingo.Game {
	if s, ok := m.statuses[g.StatusID]; ok {
		g.Status = &s
	}
	g.Gamers = []bingo.Gamer{}
	for _, id := range sortedIDs(m.gamers) {
		if gm := m.gamers[id]; gm.GameID != nil && *gm.GameID == g.ID {
			g.Gamers = append(g.Gamers, m.hydrateGamer(gm))
		}
	}
	g.Moves = []bingo.Move{}
	for _, id := range sortedIDs(m.moves) {
		if mv := m.moves[id]; mv.GameID == g.ID {
			g.Moves = append(g.Moves, mv)
		}
	}
	return g
}

func (m *memory) ListGames(ctx context.Context) ([]bingo.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bingo.Game, 0, len(m.games))
	for _, id := range sortedIDs(m.games) {
		out = append(out, m.hydrateGame(m.games[id]))
	}
	return out, nil
}

func (m *memory) GetGame(ctx context.Context, id int64) (bingo.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return bingo.Game{}, ErrNotFound
	}
	return m.hydrateGame(g), nil
}

func (m *memory) GameExists(ctx context.Context, id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.games[id]
	return ok, nil
}

func (m *memory) CreateGame(ctx context.Context, g *bingo.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.ID = m.id("games")
	row := *g
	row.Status, row.Gamers, row.Moves = nil, nil, nil
	m.games[g.ID] = row
	return nil
}

func (m *memory) UpdateGame(ctx context.Context, g bingo.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.games[g.ID]
	if !ok {
		return ErrNotFound
	}
	row.Winner = g.Winner
	row.StatusID = g.StatusID
	row.UpdatedAt = g.UpdatedAt
	m.games[g.ID] = row
	return nil
}

func (m *memory) SetGameStatus(ctx context.Context, id, statusID int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	row.StatusID = statusID
	row.UpdatedAt = ptr(at)
	m.games[id] = row
	return nil
}

func (m *memory) SetGameWinner(ctx context.Context, id int64, winner string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	row.Winner = ptr(winner)
	row.UpdatedAt = ptr(at)
	m.games[id] = row
	return nil
}

func (m *memory) DeleteGame(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	for gid, gm := range m.gamers {
		if gm.GameID != nil && *gm.GameID == id {
			m.dropGamer(gid)
		}
	}
	for mid, mv := range m.moves {
		if mv.GameID == id {
			delete(m.moves, mid)
		}
	}
	delete(m.games, id)
	return nil
}

/* ------------------------------- gamers ------------------------------- */

// hydrateGamer attaches status and board. Caller holds a lock.
func (m *memory) hydrateGamer(g bingo.Gamer) bingo.Gamer {
	if s, ok := m.statuses[g.StatusID]; ok {
		g.Status = &s
	}
	if g.BoardID != nil {
		if b, ok := m.boards[*g.BoardID]; ok {
			g.Board = &b
		}
	}
	return g
}

// dropGamer deletes a gamer and every board it owns, clearing other gamers'
// links to those boards. Caller holds the write lock.
func (m *memory) dropGamer(id int64) {
	delete(m.gamers, id)
	for bid, b := range m.boards {
		if b.GamerID == id {
			m.unlinkBoard(bid)
			delete(m.boards, bid)
		}
	}
}

// unlinkBoard clears every gamer's link to board bid. Caller holds the write lock.
func (m *memory) unlinkBoard(bid int64) {
	for gid, g := range m.gamers {
		if g.BoardID != nil && *g.BoardID == bid {
			g.BoardID = nil
			m.gamers[gid] = g
		}
	}
}

func (m *memory) ListGamers(ctx context.Context) ([]bingo.Gamer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bingo.Gamer, 0, len(m.gamers))
	for _, id := range sortedIDs(m.gamers) {
		out = append(out, m.hydrateGamer(m.gamers[id]))
	}
	return out, nil
}

func (m *memory) GetGamer(ctx context.Context, id int64) (bingo.Gamer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.gamers[id]
	if !ok {
		return bingo.Gamer{}, ErrNotFound
	}
	return m.hydrateGamer(g), nil
}

func (m *memory) FindGamerByUser(ctx context.Context, user string) (bingo.Gamer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := sortedIDs(m.gamers)
	for i := len(ids) - 1; i >= 0; i-- {
		if g := m.gamers[ids[i]]; g.User == user {
			return m.hydrateGamer(g), nil
		}
	}
	return bingo.Gamer{}, ErrNotFound
}

func (m *memory) CreateGamer(ctx context.Context, g *bingo.Gamer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.ID = m.id("gamers")
	row := *g
	row.Status, row.Board = nil, nil
	m.gamers[g.ID] = row
	return nil
}

func (m *memory) UpdateGamer(ctx context.Context, g bingo.Gamer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.gamers[g.ID]
	if !ok {
		return ErrNotFound
	}
	row.User = g.User
	row.StatusID = g.StatusID
	row.BoardID = g.BoardID
	row.GameID = g.GameID
	row.UpdatedAt = g.UpdatedAt
	m.gamers[g.ID] = row
	return nil
}

func (m *memory) setGamer(id int64, at time.Time, apply func(*bingo.Gamer)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.gamers[id]
	if !ok {
		return ErrNotFound
	}
	apply(&row)
	row.UpdatedAt = ptr(at)
	m.gamers[id] = row
	return nil
}

func (m *memory) SetGamerStatus(ctx context.Context, id, statusID int64, at time.Time) error {
	return m.setGamer(id, at, func(g *bingo.Gamer) { g.StatusID = statusID })
}

func (m *memory) SetGamerBoard(ctx context.Context, id, boardID int64, at time.Time) error {
	return m.setGamer(id, at, func(g *bingo.Gamer) { g.BoardID = ptr(boardID) })
}

func (m *memory) SetGamerGame(ctx context.Context, id, gameID int64, at time.Time) error {
	return m.setGamer(id, at, func(g *bingo.Gamer) { g.GameID = ptr(gameID) })
}

func (m *memory) DeleteGamer(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.gamers[id]; !ok {
		return ErrNotFound
	}
	m.dropGamer(id)
	return nil
}

/* ------------------------------- boards ------------------------------- */

func (m *memory) ListBoards(ctx context.Context) ([]bingo.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bingo.Board, 0, len(m.boards))
	for _, id := range sortedIDs(m.boards) {
		out = append(out, m.boards[id])
	}
	return out, nil
}

func (m *memory) GetBoard(ctx context.Context, id int64) (bingo.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.boards[id]; ok {
		return b, nil
	}
	return bingo.Board{}, ErrNotFound
}

func (m *memory) CreateBoard(ctx context.Context, b *bingo.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = m.id("boards")
	m.boards[b.ID] = *b
	return nil
}

func (m *memory) UpdateBoard(ctx context.Context, b bingo.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boards[b.ID]; !ok {
		return ErrNotFound
	}
	m.boards[b.ID] = b
	return nil
}

func (m *memory) DeleteBoard(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boards[id]; !ok {
		return ErrNotFound
	}
	m.unlinkBoard(id)
	delete(m.boards, id)
	return nil
}

/* -------------------------------- moves ------------------------------- */

func (m *memory) ListMoves(ctx context.Context) ([]bingo.Move, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bingo.Move, 0, len(m.moves))
	for _, id := range sortedIDs(m.moves) {
		out = append(out, m.moves[id])
	}
	return out, nil
}

func (m *memory) GetMove(ctx context.Context, id int64) (bingo.Move, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mv, ok := m.moves[id]; ok {
		return mv, nil
	}
	return bingo.Move{}, ErrNotFound
}

func (m *memory) ListGameMoves(ctx context.Context, gameID int64) ([]bingo.Move, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []bingo.Move{}
	for _, id := range sortedIDs(m.moves) {
		if mv := m.moves[id]; mv.GameID == gameID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *memory) CreateMove(ctx context.Context, mv *bingo.Move) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv.ID = m.id("moves")
	m.moves[mv.ID] = *mv
	return nil
}

func (m *memory) UpdateMove(ctx context.Context, mv bingo.Move) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.moves[mv.ID]; !ok {
		return ErrNotFound
	}
	m.moves[mv.ID] = mv
	return nil
}

func (m *memory) DeleteMove(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.moves[id]; !ok {
		return ErrNotFound
	}
	delete(m.moves, id)
	return nil
}
