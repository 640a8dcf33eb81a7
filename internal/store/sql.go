// internal/store/sql.go
//
// SQL implementation of the Store interface over database/sql.
// Responsibilities:
//   - Open sqlite (mattn/go-sqlite3) or postgres (pgx stdlib) with safe defaults.
//   - Apply the embedded migrations for the chosen dialect.
//   - Build every statement with squirrel, using the dialect's placeholders.
//   - Hydrate games and gamers with batched IN queries.
//
// Result sets are always drained and closed before the next statement, so the
// sqlite pool can run with a single connection.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

// Dialect ties a database/sql driver to its placeholder style and migrations.
type Dialect struct {
	Name        string
	Driver      string
	Placeholder sq.PlaceholderFormat
}

var (
	SQLite   = Dialect{Name: "sqlite", Driver: "sqlite3", Placeholder: sq.Question}
	Postgres = Dialect{Name: "postgres", Driver: "pgx", Placeholder: sq.Dollar}
)

// SQLStore is a Store backed by a relational database.
type SQLStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

var _ Store = (*SQLStore)(nil)

// Open connects, applies migrations and returns a ready store.
func Open(ctx context.Context, d Dialect, dsn string) (*SQLStore, error) {
	db, err := openDB(d, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name, err)
	}
	files, err := Migrations(d)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := Migrate(ctx, db, files, d.Placeholder); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLStore{db: db, sb: sq.StatementBuilder.PlaceholderFormat(d.Placeholder)}, nil
}

func openDB(d Dialect, dsn string) (*sql.DB, error) {
	if d.Name != SQLite.Name {
		return sql.Open(d.Driver, dsn)
	}
	// Ensure directory exists for ./data/bingo.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open(d.Driver, dsn+sep+"_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func (s *SQLStore) Close() error { return s.db.Close() }

/* ------------------------- squirrel helpers ------------------------- */

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func qExec(ctx context.Context, db queryer, q sq.Sqlizer) (sql.Result, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return db.ExecContext(ctx, query, args...)
}

func qQuery(ctx context.Context, db queryer, q sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return db.QueryContext(ctx, query, args...)
}

func qScan(ctx context.Context, db queryer, q sq.Sqlizer, dest ...any) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	return db.QueryRowContext(ctx, query, args...).Scan(dest...)
}

// affected turns a zero-row write into ErrNotFound.
func affected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *SQLStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

// collect drains rows through scan and closes them.
func collect[T any](rows *sql.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func nullInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

/* ------------------------------ statuses ------------------------------ */

var statusCols = []string{"id", "name", "description"}

func scanStatus(r scanner) (bingo.Status, error) {
	var st bingo.Status
	err := r.Scan(&st.ID, &st.Name, &st.Description)
	return st, err
}

func (s *SQLStore) ListStatuses(ctx context.Context) ([]bingo.Status, error) {
	rows, err := qQuery(ctx, s.db, s.sb.Select(statusCols...).From("statuses").OrderBy("id"))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanStatus)
}

func (s *SQLStore) statusMap(ctx context.Context) (map[int64]bingo.Status, error) {
	list, err := s.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]bingo.Status, len(list))
	for _, st := range list {
		out[st.ID] = st
	}
	return out, nil
}

func (s *SQLStore) GetStatus(ctx context.Context, id int64) (bingo.Status, error) {
	var st bingo.Status
	err := qScan(ctx, s.db, s.sb.Select(statusCols...).From("statuses").Where(sq.Eq{"id": id}),
		&st.ID, &st.Name, &st.Description)
	return st, notFound(err)
}

func (s *SQLStore) CreateStatus(ctx context.Context, st *bingo.Status) error {
	q := s.sb.Insert("statuses").Columns("name", "description").
		Values(st.Name, st.Description).Suffix("RETURNING id")
	return qScan(ctx, s.db, q, &st.ID)
}

func (s *SQLStore) UpdateStatus(ctx context.Context, st bingo.Status) error {
	q := s.sb.Update("statuses").
		Set("name", st.Name).
		Set("description", st.Description).
		Where(sq.Eq{"id": st.ID})
	return affected(qExec(ctx, s.db, q))
}

func (s *SQLStore) DeleteStatus(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"games", "gamers"} {
			var n int
			if err := qScan(ctx, tx, s.sb.Select("COUNT(1)").From(table).Where(sq.Eq{"status_id": id}), &n); err != nil {
				return err
			}
			if n > 0 {
				var exists int
				if err := qScan(ctx, tx, s.sb.Select("1").From("statuses").Where(sq.Eq{"id": id}), &exists); err != nil {
					return notFound(err)
				}
				return ErrReferenced
			}
		}
		return affected(qExec(ctx, tx, s.sb.Delete("statuses").Where(sq.Eq{"id": id})))
	})
}

/* -------------------------------- games ------------------------------- */

var gameCols = []string{"id", "winner", "status_id", "created_at", "updated_at"}

func scanGame(r scanner) (bingo.Game, error) {
	var (
		g       bingo.Game
		winner  sql.NullString
		updated sql.NullTime
	)
	if err := r.Scan(&g.ID, &winner, &g.StatusID, &g.CreatedAt, &updated); err != nil {
		return bingo.Game{}, err
	}
	if winner.Valid {
		g.Winner = &winner.String
	}
	if updated.Valid {
		g.UpdatedAt = &updated.Time
	}
	return g, nil
}

// hydrateGames attaches status, gamers and moves to every game in place.
func (s *SQLStore) hydrateGames(ctx context.Context, games []bingo.Game) error {
	if len(games) == 0 {
		return nil
	}
	statuses, err := s.statusMap(ctx)
	if err != nil {
		return err
	}
	ids := make([]int64, len(games))
	index := make(map[int64]int, len(games))
	for i := range games {
		ids[i] = games[i].ID
		index[games[i].ID] = i
		games[i].Gamers = []bingo.Gamer{}
		games[i].Moves = []bingo.Move{}
		if st, ok := statuses[games[i].StatusID]; ok {
			games[i].Status = &st
		}
	}

	rows, err := qQuery(ctx, s.db, s.sb.Select(gamerCols...).From("gamers").
		Where(sq.Eq{"game_id": ids}).OrderBy("id"))
	if err != nil {
		return err
	}
	gamers, err := collect(rows, scanGamer)
	if err != nil {
		return err
	}
	if err := s.hydrateGamers(ctx, gamers, statuses); err != nil {
		return err
	}
	for _, gm := range gamers {
		i := index[*gm.GameID]
		games[i].Gamers = append(games[i].Gamers, gm)
	}

	rows, err = qQuery(ctx, s.db, s.sb.Select(moveCols...).From("moves").
		Where(sq.Eq{"game_id": ids}).OrderBy("id"))
	if err != nil {
		return err
	}
	moves, err := collect(rows, scanMove)
	if err != nil {
		return err
	}
	for _, mv := range moves {
		i := index[mv.GameID]
		games[i].Moves = append(games[i].Moves, mv)
	}
	return nil
}

func (s *SQLStore) ListGames(ctx context.Context) ([]bingo.Game, error) {
	rows, err := qQuery(ctx, s.db, s.sb.Select(gameCols...).From("games").OrderBy("id"))
	if err != nil {
		return nil, err
	}
	games, err := collect(rows, scanGame)
	if err != nil {
		return nil, err
	}
	if err := s.hydrateGames(ctx, games); err != nil {
		return nil, err
	}
	return games, nil
}

func (s *SQLStore) GetGame(ctx context.Context, id int64) (bingo.Game, error) {
	q := s.sb.Select(gameCols...).From("games").Where(sq.Eq{"id": id})
	query, args, err := q.ToSql()
	if err != nil {
		return bingo.Game{}, err
	}
	g, err := scanGame(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return bingo.Game{}, notFound(err)
	}
	games := []bingo.Game{g}
	if err := s.hydrateGames(ctx, games); err != nil {
		return bingo.Game{}, err
	}
	return games[0], nil
}

func (s *SQLStore) GameExists(ctx context.Context, id int64) (bool, error) {
	var n int
	if err := qScan(ctx, s.db, s.sb.Select("COUNT(1)").From("games").Where(sq.Eq{"id": id}), &n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLStore) CreateGame(ctx context.Context, g *bingo.Game) error {
	q := s.sb.Insert("games").
		Columns("winner", "status_id", "created_at", "updated_at").
		Values(nullString(g.Winner), g.StatusID, g.CreatedAt.UTC(), nullTime(g.UpdatedAt)).
		Suffix("RETURNING id")
	return qScan(ctx, s.db, q, &g.ID)
}

func (s *SQLStore) UpdateGame(ctx context.Context, g bingo.Game) error {
	q := s.sb.Update("games").
		Set("winner", nullString(g.Winner)).
		Set("status_id", g.StatusID).
		Set("updated_at", nullTime(g.UpdatedAt)).
		Where(sq.Eq{"id": g.ID})
	return affected(qExec(ctx, s.db, q))
}

func (s *SQLStore) SetGameStatus(ctx context.Context, id, statusID int64, at time.Time) error {
	q := s.sb.Update("games").
		Set("status_id", statusID).
		Set("updated_at", at.UTC()).
		Where(sq.Eq{"id": id})
	return affected(qExec(ctx, s.db, q))
}

func (s *SQLStore) SetGameWinner(ctx context.Context, id int64, winner string, at time.Time) error {
	q := s.sb.Update("games").
		Set("winner", winner).
		Set("updated_at", at.UTC()).
		Where(sq.Eq{"id": id})
	return affected(qExec(ctx, s.db, q))
}

func (s *SQLStore) DeleteGame(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		steps := []sq.Sqlizer{
			s.sb.Delete("boards").Where(sq.Expr("gamer_id IN (SELECT id FROM gamers WHERE game_id = ?)", id)),
			s.sb.Delete("gamers").Where(sq.Eq{"game_id": id}),
			s.sb.Delete("moves").Where(sq.Eq{"game_id": id}),
		}
		for _, q := range steps {
			if _, err := qExec(ctx, tx, q); err != nil {
				return err
			}
		}
		return affected(qExec(ctx, tx, s.sb.Delete("games").Where(sq.Eq{"id": id})))
	})
}

/* ------------------------------- gamers ------------------------------- */

var gamerCols = []string{"id", "user_name", "status_id", "board_id", "game_id", "created_at", "updated_at"}

func scanGamer(r scanner) (bingo.Gamer, error) {
	var (
		g       bingo.Gamer
		boardID sql.NullInt64
		gameID  sql.NullInt64
		updated sql.NullTime
	)
	if err := r.Scan(&g.ID, &g.User, &g.StatusID, &boardID, &gameID, &g.CreatedAt, &updated); err != nil {
		return bingo.Gamer{}, err
	}
	if boardID.Valid {
		g.BoardID = &boardID.Int64
	}
	if gameID.Valid {
		g.GameID = &gameID.Int64
	}
	if updated.Valid {
		g.UpdatedAt = &updated.Time
	}
	return g, nil
}

// hydrateGamers attaches status and board to every gamer in place.
// statuses may be nil, in which case they are loaded.
func (s *SQLStore) hydrateGamers(ctx context.Context, gamers []bingo.Gamer, statuses map[int64]bingo.Status) error {
	if len(gamers) == 0 {
		return nil
	}
	if statuses == nil {
		var err error
		if statuses, err = s.statusMap(ctx); err != nil {
			return err
		}
	}
	var boardIDs []int64
	for i := range gamers {
		if st, ok := statuses[gamers[i].StatusID]; ok {
			gamers[i].Status = &st
		}
		if gamers[i].BoardID != nil {
			boardIDs = append(boardIDs, *gamers[i].BoardID)
		}
	}
	if len(boardIDs) == 0 {
		return nil
	}
	rows, err := qQuery(ctx, s.db, s.sb.Select(boardCols()...).From("boards").Where(sq.Eq{"id": boardIDs}))
	if err != nil {
		return err
	}
	boards, err := collect(rows, scanBoard)
	if err != nil {
		return err
	}
	byID := make(map[int64]bingo.Board, len(boards))
	for _, b := range boards {
		byID[b.ID] = b
	}
	for i := range gamers {
		if gamers[i].BoardID == nil {
			continue
		}
		if b, ok := byID[*gamers[i].BoardID]; ok {
			gamers[i].Board = &b
		}
	}
	return nil
}

func (s *SQLStore) queryGamers(ctx context.Context, q sq.SelectBuilder) ([]bingo.Gamer, error) {
	rows, err := qQuery(ctx, s.db, q)
	if err != nil {
		return nil, err
	}
	gamers, err := collect(rows, scanGamer)
	if err != nil {
		return nil, err
	}
	if err := s.hydrateGamers(ctx, gamers, nil); err != nil {
		return nil, err
	}
	return gamers, nil
}

func (s *SQLStore) ListGamers(ctx context.Context) ([]bingo.Gamer, error) {
	return s.queryGamers(ctx, s.sb.Select(gamerCols...).From("gamers").OrderBy("id"))
}

func (s *SQLStore) GetGamer(ctx context.Context, id int64) (bingo.Gamer, error) {
	gamers, err := s.queryGamers(ctx, s.sb.Select(gamerCols...).From("gamers").Where(sq.Eq{"id": id}))
	if err != nil {
		return bingo.Gamer{}, err
	}
	if len(gamers) == 0 {
		return bingo.Gamer{}, ErrNotFound
	}
	return gamers[0], nil
}

func (s *SQLStore) FindGamerByUser(ctx context.Context, user string) (bingo.Gamer, error) {
	gamers, err := s.queryGamers(ctx, s.sb.Select(gamerCols...).From("gamers").
		Where(sq.Eq{"user_name": user}).OrderBy("id DESC").Limit(1))
	if err != nil {
		return bingo.Gamer{}, err
	}
	if len(gamers) == 0 {
		return bingo.Gamer{}, ErrNotFound
	}
	return gamers[0], nil
}

func (s *SQLStore) CreateGamer(ctx context.Context, g *bingo.Gamer) error {
	q := s.sb.Insert("gamers").
		Columns("user_name", "status_id", "board_id", "game_id", "created_at", "updated_at").
		Values(g.User, g.StatusID, nullInt(g.BoardID), nullInt(g.GameID), g.CreatedAt.UTC(), nullTime(g.UpdatedAt)).
		Suffix("RETURNING id")
	return qScan(ctx, s.db, q, &g.ID)
}

func (s *SQLStore) UpdateGamer(ctx context.Context, g bingo.Gamer) error {
	q := s.sb.Update("gamers").
		Set("user_name", g.User).
		Set("status_id", g.StatusID).
		Set("board_id", nullInt(g.BoardID)).
		Set("game_id", nullInt(g.GameID)).
		Set("updated_at", nullTime(g.UpdatedAt)).
		Where(sq.Eq{"id": g.ID})
	return affected(qExec(ctx, s.db, q))
}

func (s *SQLStore) setGamer(ctx context.Context, id int64, column string, value any, at time.Time) error {
	q := s.sb.Update("gamers").
		Set(column, value).
		Set("updated_at", at.UTC()).
		Where(sq.Eq{"id": id})
	return affected(qExec(ctx, s.db, q))
}

func (s *SQLStore) SetGamerStatus(ctx context.Context, id, statusID int64, at time.Time) error {
	return s.setGamer(ctx, id, "status_id", statusID, at)
}

func (s *SQLStore) SetGamerBoard(ctx context.Context, id, boardID int64, at time.Time) error {
	return s.setGamer(ctx, id, "board_id", boardID, at)
}

func (s *SQLStore) SetGamerGame(ctx context.Context, id, gameID int64, at time.Time) error {
	return s.setGamer(ctx, id, "game_id", gameID, at)
}

func (s *SQLStore) DeleteGamer(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := qExec(ctx, tx, s.sb.Delete("boards").Where(sq.Eq{"gamer_id": id})); err != nil {
			return err
		}
		return affected(qExec(ctx, tx, s.sb.Delete("gamers").Where(sq.Eq{"id": id})))
	})
}

/* ------------------------------- boards ------------------------------- */

// boardCols lists id, gamer_id and the 25 cells column by column
// (number_b1..number_b5, number_i1, ...).
func boardCols() []string {
	cols := []string{"id", "gamer_id"}
	for k := 0; k < bingo.ColumnSize; k++ {
		for r := 0; r < bingo.ColumnSize; r++ {
			cols = append(cols, cellColumn(r, k))
		}
	}
	return cols
}

func cellColumn(r, k int) string {
	return fmt.Sprintf("number_%c%d", strings.ToLower(bingo.Letters)[k], r+1)
}

func scanBoard(r scanner) (bingo.Board, error) {
	var b bingo.Board
	dest := []any{&b.ID, &b.GamerID}
	for k := 0; k < bingo.ColumnSize; k++ {
		for row := 0; row < bingo.ColumnSize; row++ {
			dest = append(dest, &b.Cells[row][k])
		}
	}
	err := r.Scan(dest...)
	return b, err
}

func boardCells(b bingo.Board) []any {
	vals := make([]any, 0, bingo.ColumnSize*bingo.ColumnSize)
	for k := 0; k < bingo.ColumnSize; k++ {
		for r := 0; r < bingo.ColumnSize; r++ {
			vals = append(vals, b.Cells[r][k])
		}
	}
	return vals
}

func (s *SQLStore) ListBoards(ctx context.Context) ([]bingo.Board, error) {
	rows, err := qQuery(ctx, s.db, s.sb.Select(boardCols()...).From("boards").OrderBy("id"))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBoard)
}

func (s *SQLStore) GetBoard(ctx context.Context, id int64) (bingo.Board, error) {
	q := s.sb.Select(boardCols()...).From("boards").Where(sq.Eq{"id": id})
	query, args, err := q.ToSql()
	if err != nil {
		return bingo.Board{}, err
	}
	b, err := scanBoard(s.db.QueryRowContext(ctx, query, args...))
	return b, notFound(err)
}

func (s *SQLStore) CreateBoard(ctx context.Context, b *bingo.Board) error {
	cols := boardCols()[1:]
	vals := append([]any{b.GamerID}, boardCells(*b)...)
	q := s.sb.Insert("boards").Columns(cols...).Values(vals...).Suffix("RETURNING id")
	return qScan(ctx, s.db, q, &b.ID)
}

func (s *SQLStore) UpdateBoard(ctx context.Context, b bingo.Board) error {
	cols := boardCols()[2:]
	q := s.sb.Update("boards").Set("gamer_id", b.GamerID)
	for i, v := range boardCells(b) {
		q = q.Set(cols[i], v)
	}
	return affected(qExec(ctx, s.db, q.Where(sq.Eq{"id": b.ID})))
}

func (s *SQLStore) DeleteBoard(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := qExec(ctx, tx, s.sb.Update("gamers").Set("board_id", nil).Where(sq.Eq{"board_id": id})); err != nil {
			return err
		}
		return affected(qExec(ctx, tx, s.sb.Delete("boards").Where(sq.Eq{"id": id})))
	})
}

/* -------------------------------- moves ------------------------------- */

var moveCols = []string{"id", "letter", "number", "game_id"}

func scanMove(r scanner) (bingo.Move, error) {
	var m bingo.Move
	err := r.Scan(&m.ID, &m.Letter, &m.Number, &m.GameID)
	return m, err
}

func (s *SQLStore) ListMoves(ctx context.Context) ([]bingo.Move, error) {
	rows, err := qQuery(ctx, s.db, s.sb.Select(moveCols...).From("moves").OrderBy("id"))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanMove)
}

func (s *SQLStore) GetMove(ctx context.Context, id int64) (bingo.Move, error) {
	var m bingo.Move
	err := qScan(ctx, s.db, s.sb.Select(moveCols...).From("moves").Where(sq.Eq{"id": id}),
		&m.ID, &m.Letter, &m.Number, &m.GameID)
	return m, notFound(err)
}

func (s *SQLStore) ListGameMoves(ctx context.Context, gameID int64) ([]bingo.Move, error) {
	rows, err := qQuery(ctx, s.db, s.sb.Select(moveCols...).From("moves").
		Where(sq.Eq{"game_id": gameID}).OrderBy("id"))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanMove)
}

func (s *SQLStore) CreateMove(ctx context.Context, m *bingo.Move) error {
	q := s.sb.Insert("moves").Columns("letter", "number", "game_id").
		Values(m.Letter, m.Number, m.GameID).Suffix("RETURNING id")
	return qScan(ctx, s.db, q, &m.ID)
}

func (s *SQLStore) UpdateMove(ctx context.Context, m bingo.Move) error {
	q := s.sb.Update("moves").
		Set("letter", m.Letter).
		Set("number", m.Number).
		Set("game_id", m.GameID).
		Where(sq.Eq{"id": m.ID})
	return affected(qExec(ctx, s.db, q))
}

func (s *SQLStore) DeleteMove(ctx context.Context, id int64) error {
	return affected(qExec(ctx, s.db, s.sb.Delete("moves").Where(sq.Eq{"id": id})))
}
