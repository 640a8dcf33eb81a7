package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	s, err := Open(context.Background(), SQLite, filepath.Join(t.TempDir(), "bingo.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newMemory(t *testing.T) Store {
	t.Helper()
	return NewMemoryStore()
}

// newPostgresStore opens a store in a fresh schema of the database named by
// TEST_POSTGRES_URL and drops the schema afterwards.
func newPostgresStore(t *testing.T) Store {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_URL")
	ctx := context.Background()
	admin, err := sql.Open(Postgres.Driver, dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { _ = admin.Close() })

	schema := fmt.Sprintf("bingo_test_%d", time.Now().UnixNano())
	if _, err := admin.ExecContext(ctx, "CREATE SCHEMA "+schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _, _ = admin.ExecContext(ctx, "DROP SCHEMA "+schema+" CASCADE") })

	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("TEST_POSTGRES_URL must be a URL: %v", err)
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()

	s, err := Open(ctx, Postgres, u.String())
	if err != nil {
		t.Fatalf("open postgres store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// backends runs fn once per Store implementation. Postgres joins when
// TEST_POSTGRES_URL is set.
func backends(t *testing.T, fn func(t *testing.T, s Store)) {
	open := map[string]func(*testing.T) Store{
		"memory": newMemory,
		"sqlite": newSQLiteStore,
	}
	if os.Getenv("TEST_POSTGRES_URL") != "" {
		open["postgres"] = newPostgresStore
	}
	for name, o := range open {
		t.Run(name, func(t *testing.T) { fn(t, o(t)) })
	}
}

func testBoard(gamerID int64) bingo.Board {
	b := bingo.Board{GamerID: gamerID}
	for r := 0; r < bingo.ColumnSize; r++ {
		for k := 0; k < bingo.ColumnSize; k++ {
			b.Cells[r][k] = bingo.ColumnBases[k] + r
		}
	}
	return b
}

func mustGame(t *testing.T, s Store) bingo.Game {
	t.Helper()
	g := bingo.Game{StatusID: 2, CreatedAt: t0}
	if err := s.CreateGame(context.Background(), &g); err != nil {
		t.Fatalf("create game: %v", err)
	}
	return g
}

func mustGamer(t *testing.T, s Store, user string) bingo.Gamer {
	t.Helper()
	gm := bingo.Gamer{User: user, StatusID: 7, CreatedAt: t0}
	if err := s.CreateGamer(context.Background(), &gm); err != nil {
		t.Fatalf("create gamer: %v", err)
	}
	return gm
}

func TestSeededStatuses(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		list, err := s.ListStatuses(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != len(bingo.DefaultStatuses()) {
			t.Fatalf("expected %d statuses, got %d", len(bingo.DefaultStatuses()), len(list))
		}
		st, err := s.GetStatus(ctx, 2)
		if err != nil || st.Name != "in_progress" {
			t.Fatalf("status 2 = %+v, %v", st, err)
		}
		if _, err := s.GetStatus(ctx, 99); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestStatusLifecycle(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		st := bingo.Status{Name: "paused", Description: "on hold"}
		if err := s.CreateStatus(ctx, &st); err != nil {
			t.Fatalf("create: %v", err)
		}
		if st.ID <= 7 {
			t.Fatalf("expected id after the seeded rows, got %d", st.ID)
		}
		st.Description = "temporarily on hold"
		if err := s.UpdateStatus(ctx, st); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := s.GetStatus(ctx, st.ID)
		if got.Description != "temporarily on hold" {
			t.Fatalf("update not stored: %+v", got)
		}
		if err := s.UpdateStatus(ctx, bingo.Status{ID: 500, Name: "x"}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}

		mustGame(t, s)
		if err := s.DeleteStatus(ctx, 2); !errors.Is(err, ErrReferenced) {
			t.Fatalf("expected ErrReferenced, got %v", err)
		}
		if err := s.DeleteStatus(ctx, st.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := s.DeleteStatus(ctx, st.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestGamePartialUpdates(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		g := mustGame(t, s)

		got, err := s.GetGame(ctx, g.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status == nil || got.Status.ID != 2 || got.Winner != nil || got.UpdatedAt != nil {
			t.Fatalf("unexpected fresh game: %+v", got)
		}
		if got.Gamers == nil || got.Moves == nil {
			t.Fatal("expected empty, non-nil gamers and moves")
		}

		at := t0.Add(time.Minute)
		if err := s.SetGameStatus(ctx, g.ID, 3, at); err != nil {
			t.Fatalf("set status: %v", err)
		}
		if err := s.SetGameWinner(ctx, g.ID, "ana", at); err != nil {
			t.Fatalf("set winner: %v", err)
		}
		got, _ = s.GetGame(ctx, g.ID)
		if got.StatusID != 3 || got.Status.Name != "finished" {
			t.Fatalf("status not applied: %+v", got)
		}
		if got.Winner == nil || *got.Winner != "ana" {
			t.Fatalf("winner not applied: %+v", got.Winner)
		}
		if got.UpdatedAt == nil || !got.UpdatedAt.Equal(at) {
			t.Fatalf("updated at = %v, want %v", got.UpdatedAt, at)
		}
		if !got.CreatedAt.Equal(t0) {
			t.Fatalf("created at changed: %v", got.CreatedAt)
		}

		if err := s.SetGameWinner(ctx, 404, "ana", at); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if ok, _ := s.GameExists(ctx, g.ID); !ok {
			t.Fatal("expected game to exist")
		}
		if ok, _ := s.GameExists(ctx, 404); ok {
			t.Fatal("expected game 404 to be missing")
		}
	})
}

func TestUpdateGameClearsWinner(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		g := mustGame(t, s)
		_ = s.SetGameWinner(ctx, g.ID, "bo", t0)

		at := t0.Add(time.Hour)
		g.Winner = nil
		g.StatusID = 1
		g.UpdatedAt = &at
		if err := s.UpdateGame(ctx, g); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := s.GetGame(ctx, g.ID)
		if got.Winner != nil || got.StatusID != 1 {
			t.Fatalf("unexpected game: %+v", got)
		}
	})
}

func TestGamerBoardAndGameLinks(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		g := mustGame(t, s)
		gm := mustGamer(t, s, "ana")

		b := testBoard(gm.ID)
		if err := s.CreateBoard(ctx, &b); err != nil {
			t.Fatalf("create board: %v", err)
		}
		if err := s.SetGamerBoard(ctx, gm.ID, b.ID, t0); err != nil {
			t.Fatalf("set board: %v", err)
		}
		if err := s.SetGamerGame(ctx, gm.ID, g.ID, t0); err != nil {
			t.Fatalf("set game: %v", err)
		}

		got, err := s.GetGamer(ctx, gm.ID)
		if err != nil {
			t.Fatalf("get gamer: %v", err)
		}
		if got.Board == nil || got.Board.Cells != b.Cells {
			t.Fatalf("board not hydrated: %+v", got.Board)
		}
		if got.GameID == nil || *got.GameID != g.ID {
			t.Fatalf("game link = %v", got.GameID)
		}
		if got.Status == nil || got.Status.Name != "registered" {
			t.Fatalf("status not hydrated: %+v", got.Status)
		}

		game, _ := s.GetGame(ctx, g.ID)
		if len(game.Gamers) != 1 || game.Gamers[0].Board == nil {
			t.Fatalf("game gamers not hydrated: %+v", game.Gamers)
		}
	})
}

func TestFindGamerByUserReturnsLatest(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		mustGamer(t, s, "ana")
		mustGamer(t, s, "bo")
		latest := mustGamer(t, s, "ana")

		got, err := s.FindGamerByUser(ctx, "ana")
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if got.ID != latest.ID {
			t.Fatalf("found gamer %d, want %d", got.ID, latest.ID)
		}
		if _, err := s.FindGamerByUser(ctx, "cy"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteGameCascades(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		g := mustGame(t, s)
		other := mustGame(t, s)
		gm := mustGamer(t, s, "ana")
		b := testBoard(gm.ID)
		_ = s.CreateBoard(ctx, &b)
		_ = s.SetGamerBoard(ctx, gm.ID, b.ID, t0)
		_ = s.SetGamerGame(ctx, gm.ID, g.ID, t0)
		mv := bingo.Move{Letter: "B", Number: 7, GameID: g.ID}
		_ = s.CreateMove(ctx, &mv)
		kept := bingo.Move{Letter: "O", Number: 70, GameID: other.ID}
		_ = s.CreateMove(ctx, &kept)

		if err := s.DeleteGame(ctx, g.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := s.GetGame(ctx, g.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("game still there: %v", err)
		}
		if _, err := s.GetGamer(ctx, gm.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("gamer still there: %v", err)
		}
		if _, err := s.GetBoard(ctx, b.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("board still there: %v", err)
		}
		if _, err := s.GetMove(ctx, mv.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("move still there: %v", err)
		}
		if _, err := s.GetMove(ctx, kept.ID); err != nil {
			t.Fatalf("other game's move removed: %v", err)
		}
		if err := s.DeleteGame(ctx, g.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteGamerRemovesBoard(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		gm := mustGamer(t, s, "ana")
		b := testBoard(gm.ID)
		_ = s.CreateBoard(ctx, &b)
		_ = s.SetGamerBoard(ctx, gm.ID, b.ID, t0)

		if err := s.DeleteGamer(ctx, gm.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := s.GetBoard(ctx, b.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("board still there: %v", err)
		}
	})
}

func TestDeleteGamerKeepsBoardsOfOthers(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		ana := mustGamer(t, s, "ana")
		bob := mustGamer(t, s, "bob")
		b := testBoard(bob.ID)
		if err := s.CreateBoard(ctx, &b); err != nil {
			t.Fatalf("create board: %v", err)
		}
		_ = s.SetGamerBoard(ctx, bob.ID, b.ID, t0)
		_ = s.SetGamerBoard(ctx, ana.ID, b.ID, t0)

		if err := s.DeleteGamer(ctx, ana.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := s.GetBoard(ctx, b.ID); err != nil {
			t.Fatalf("board of bob removed: %v", err)
		}
		got, err := s.GetGamer(ctx, bob.ID)
		if err != nil {
			t.Fatalf("get bob: %v", err)
		}
		if got.Board == nil || got.Board.ID != b.ID {
			t.Fatalf("bob unlinked: %+v", got)
		}
	})
}

func TestDeleteGamerClearsLinksToItsBoards(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		ana := mustGamer(t, s, "ana")
		bob := mustGamer(t, s, "bob")
		b := testBoard(ana.ID)
		if err := s.CreateBoard(ctx, &b); err != nil {
			t.Fatalf("create board: %v", err)
		}
		_ = s.SetGamerBoard(ctx, bob.ID, b.ID, t0)

		if err := s.DeleteGamer(ctx, ana.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		got, err := s.GetGamer(ctx, bob.ID)
		if err != nil {
			t.Fatalf("get bob: %v", err)
		}
		if got.BoardID != nil || got.Board != nil {
			t.Fatalf("dangling board link: %+v", got)
		}
	})
}

func TestDeleteBoardClearsGamerLink(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		gm := mustGamer(t, s, "ana")
		b := testBoard(gm.ID)
		_ = s.CreateBoard(ctx, &b)
		_ = s.SetGamerBoard(ctx, gm.ID, b.ID, t0)

		if err := s.DeleteBoard(ctx, b.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		got, err := s.GetGamer(ctx, gm.ID)
		if err != nil {
			t.Fatalf("get gamer: %v", err)
		}
		if got.BoardID != nil || got.Board != nil {
			t.Fatalf("board link kept: %+v", got)
		}
	})
}

func TestBoardReplace(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		gm := mustGamer(t, s, "ana")
		b := testBoard(gm.ID)
		_ = s.CreateBoard(ctx, &b)

		b.Cells[0][0], b.Cells[4][4] = 15, 75
		if err := s.UpdateBoard(ctx, b); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := s.GetBoard(ctx, b.ID)
		if got != b {
			t.Fatalf("board = %+v, want %+v", got, b)
		}
		list, _ := s.ListBoards(ctx)
		if len(list) != 1 {
			t.Fatalf("expected 1 board, got %d", len(list))
		}
	})
}

func TestMoves(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		g := mustGame(t, s)
		for _, n := range []int{5, 20, 65} {
			mv := bingo.Move{Letter: bingo.Letter(n), Number: n, GameID: g.ID}
			if err := s.CreateMove(ctx, &mv); err != nil {
				t.Fatalf("create move: %v", err)
			}
		}
		moves, err := s.ListGameMoves(ctx, g.ID)
		if err != nil || len(moves) != 3 {
			t.Fatalf("list game moves = %v, %v", moves, err)
		}
		if moves[0].Number != 5 || moves[2].Letter != "O" {
			t.Fatalf("unexpected order: %+v", moves)
		}

		first := moves[0]
		first.Number, first.Letter = 50, "G"
		if err := s.UpdateMove(ctx, first); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := s.GetMove(ctx, first.ID)
		if got != first {
			t.Fatalf("move = %+v, want %+v", got, first)
		}
		if err := s.DeleteMove(ctx, first.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		all, _ := s.ListMoves(ctx)
		if len(all) != 2 {
			t.Fatalf("expected 2 moves, got %d", len(all))
		}
		if err := s.DeleteMove(ctx, first.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
