package service

import (
	"context"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/bingo"
)

func (s *Service) ListBoards(ctx context.Context) ([]bingo.Board, error) {
	boards, err := s.store.ListBoards(ctx)
	return boards, translate(err, "list boards")
}

func (s *Service) GetBoard(ctx context.Context, id int64) (bingo.Board, error) {
	b, err := s.store.GetBoard(ctx, id)
	return b, translate(err, "board %d", id)
}

// CreateBoard deals a new board for an existing gamer. The gamer's current
// board link is left alone.
func (s *Service) CreateBoard(ctx context.Context, gamerID int64) (bingo.Board, error) {
	if gamerID <= 0 {
		return bingo.Board{}, apperr.Invalid("gamerId is required")
	}
	if _, err := s.GetGamer(ctx, gamerID); err != nil {
		return bingo.Board{}, err
	}
	return s.dealBoard(ctx, gamerID)
}

// ReplaceBoard overwrites every cell of board id. The new cells must form a
// valid card. A board never changes owner: a gamer id other than the current
// one is a conflict, zero keeps it.
func (s *Service) ReplaceBoard(ctx context.Context, id int64, in bingo.Board) (bingo.Board, error) {
	if err := bingo.ValidateBoard(in); err != nil {
		return bingo.Board{}, apperr.Wrap(apperr.KindInvalid, err, "board %d", id)
	}
	cur, err := s.GetBoard(ctx, id)
	if err != nil {
		return bingo.Board{}, err
	}
	if in.GamerID != 0 && in.GamerID != cur.GamerID {
		return bingo.Board{}, apperr.Conflict("board %d belongs to gamer %d", id, cur.GamerID)
	}
	next := bingo.Board{ID: id, GamerID: cur.GamerID, Cells: in.Cells}
	if err := s.store.UpdateBoard(ctx, next); err != nil {
		return bingo.Board{}, translate(err, "board %d", id)
	}
	return next, nil
}

func (s *Service) DeleteBoard(ctx context.Context, id int64) error {
	return translate(s.store.DeleteBoard(ctx, id), "board %d", id)
}
