package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/bingo"
	"github.com/robalobadob/bingo-server/internal/feed"
)

func (s *Service) ListMoves(ctx context.Context) ([]bingo.Move, error) {
	moves, err := s.store.ListMoves(ctx)
	return moves, translate(err, "list moves")
}

func (s *Service) GetMove(ctx context.Context, id int64) (bingo.Move, error) {
	m, err := s.store.GetMove(ctx, id)
	return m, translate(err, "move %d", id)
}

// calledNumbers loads the numbers already drawn in gameID. Caller holds the game lock.
func (s *Service) calledNumbers(ctx context.Context, gameID int64) (map[int]bool, []bingo.Move, error) {
	moves, err := s.store.ListGameMoves(ctx, gameID)
	if err != nil {
		return nil, nil, translate(err, "moves of game %d", gameID)
	}
	called := make(map[int]bool, len(moves))
	for _, m := range moves {
		called[m.Number] = true
	}
	return called, moves, nil
}

// DrawMove calls the next number for gameID. With unique moves enabled the
// draw skips numbers already called and fails once all 75 are out.
func (s *Service) DrawMove(ctx context.Context, gameID int64) (bingo.Move, error) {
	unlock := s.games.lock(gameID)
	defer unlock()

	if err := s.requireGame(ctx, gameID); err != nil {
		return bingo.Move{}, err
	}
	called, _, err := s.calledNumbers(ctx, gameID)
	if err != nil {
		return bingo.Move{}, err
	}
	m, err := s.gen.Move(gameID, called, s.opts.UniqueMoves)
	if errors.Is(err, bingo.ErrNumbersExhausted) {
		return bingo.Move{}, apperr.Wrap(apperr.KindConflict, err, "game %d", gameID)
	}
	if err != nil {
		return bingo.Move{}, apperr.Wrap(apperr.KindInternal, err, "draw for game %d", gameID)
	}
	if err := s.store.CreateMove(ctx, &m); err != nil {
		return bingo.Move{}, translate(err, "create move")
	}
	log.Info().Int64("game_id", gameID).Int64("move_id", m.ID).Int("number", m.Number).Str("letter", m.Letter).Msg("move drawn")
	s.pub.Publish(feed.Event{Type: feed.EventMove, GameID: gameID, Move: &m})
	return m, nil
}

// UpdateMove replaces the number (and game) of a move. The letter is derived
// again from the number; a zero game id keeps the current game.
func (s *Service) UpdateMove(ctx context.Context, id int64, in bingo.Move) (bingo.Move, error) {
	if !bingo.ValidNumber(in.Number) {
		return bingo.Move{}, apperr.Invalid("number must be in [1,%d], got %d", bingo.MaxNumber, in.Number)
	}
	cur, err := s.GetMove(ctx, id)
	if err != nil {
		return bingo.Move{}, err
	}
	gameID := cur.GameID
	if in.GameID != 0 {
		gameID = in.GameID
	}

	unlock := s.games.lock(gameID)
	defer unlock()

	if err := s.requireGame(ctx, gameID); err != nil {
		return bingo.Move{}, err
	}
	if s.opts.UniqueMoves {
		_, moves, err := s.calledNumbers(ctx, gameID)
		if err != nil {
			return bingo.Move{}, err
		}
		for _, m := range moves {
			if m.ID != id && m.Number == in.Number {
				return bingo.Move{}, apperr.Conflict("number %d already called in game %d", in.Number, gameID)
			}
		}
	}
	next := bingo.Move{ID: id, Letter: bingo.Letter(in.Number), Number: in.Number, GameID: gameID}
	if err := s.store.UpdateMove(ctx, next); err != nil {
		return bingo.Move{}, translate(err, "move %d", id)
	}
	return next, nil
}

func (s *Service) DeleteMove(ctx context.Context, id int64) error {
	return translate(s.store.DeleteMove(ctx, id), "move %d", id)
}
