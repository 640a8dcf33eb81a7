package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/bingo"
	"github.com/robalobadob/bingo-server/internal/feed"
)

func (s *Service) ListGames(ctx context.Context) ([]bingo.Game, error) {
	games, err := s.store.ListGames(ctx)
	return games, translate(err, "list games")
}

// GetGame returns the game with its status, gamers and moves.
func (s *Service) GetGame(ctx context.Context, id int64) (bingo.Game, error) {
	g, err := s.store.GetGame(ctx, id)
	return g, translate(err, "game %d", id)
}

// CreateGame stores a new game stamped with the current time. Without a
// status in the payload it gets the configured default.
func (s *Service) CreateGame(ctx context.Context, in bingo.Game) (bingo.Game, error) {
	g := bingo.Game{
		Winner:    in.Winner,
		StatusID:  statusRef(in.Status, in.StatusID, s.opts.DefaultGameStatusID),
		CreatedAt: s.now(),
	}
	if err := s.requireStatus(ctx, g.StatusID); err != nil {
		return bingo.Game{}, err
	}
	if err := s.store.CreateGame(ctx, &g); err != nil {
		return bingo.Game{}, translate(err, "create game")
	}
	log.Info().Int64("game_id", g.ID).Int64("status_id", g.StatusID).Msg("game created")
	return s.GetGame(ctx, g.ID)
}

// UpdateGame replaces winner and status. The payload must name a status.
func (s *Service) UpdateGame(ctx context.Context, id int64, in bingo.Game) (bingo.Game, error) {
	unlock := s.games.lock(id)
	defer unlock()

	cur, err := s.GetGame(ctx, id)
	if err != nil {
		return bingo.Game{}, err
	}
	statusID := statusRef(in.Status, in.StatusID, 0)
	if err := s.requireStatus(ctx, statusID); err != nil {
		return bingo.Game{}, err
	}
	now := s.now()
	next := bingo.Game{ID: id, Winner: in.Winner, StatusID: statusID, UpdatedAt: &now}
	if err := s.store.UpdateGame(ctx, next); err != nil {
		return bingo.Game{}, translate(err, "game %d", id)
	}

	if cur.StatusID != statusID {
		s.pub.Publish(feed.Event{Type: feed.EventStatus, GameID: id, StatusID: statusID})
	}
	if in.Winner != nil && (cur.Winner == nil || *cur.Winner != *in.Winner) {
		s.pub.Publish(feed.Event{Type: feed.EventWinner, GameID: id, Winner: *in.Winner})
	}
	return s.GetGame(ctx, id)
}

// UpdateGameStatus moves the game to statusID and stamps the update time in
// the same write.
func (s *Service) UpdateGameStatus(ctx context.Context, id, statusID int64) (bingo.Game, error) {
	if err := s.requireStatus(ctx, statusID); err != nil {
		return bingo.Game{}, err
	}
	if err := s.store.SetGameStatus(ctx, id, statusID, s.now()); err != nil {
		return bingo.Game{}, translate(err, "game %d", id)
	}
	log.Info().Int64("game_id", id).Int64("status_id", statusID).Msg("game status changed")
	s.pub.Publish(feed.Event{Type: feed.EventStatus, GameID: id, StatusID: statusID})
	return s.GetGame(ctx, id)
}

// UpdateGameWinner records the winner. Setting the current winner again
// changes nothing.
func (s *Service) UpdateGameWinner(ctx context.Context, id int64, winner string) (bingo.Game, error) {
	winner, err := required("winner", winner)
	if err != nil {
		return bingo.Game{}, err
	}
	unlock := s.games.lock(id)
	defer unlock()
	return s.setWinner(ctx, id, winner)
}

// setWinner writes winner unless it is already recorded. Caller holds the game lock.
func (s *Service) setWinner(ctx context.Context, id int64, winner string) (bingo.Game, error) {
	cur, err := s.GetGame(ctx, id)
	if err != nil {
		return bingo.Game{}, err
	}
	if cur.Winner != nil && *cur.Winner == winner {
		return cur, nil
	}
	if err := s.store.SetGameWinner(ctx, id, winner, s.now()); err != nil {
		return bingo.Game{}, translate(err, "game %d", id)
	}
	log.Info().Int64("game_id", id).Str("winner", winner).Msg("winner recorded")
	s.pub.Publish(feed.Event{Type: feed.EventWinner, GameID: id, Winner: winner})
	return s.GetGame(ctx, id)
}

// DeleteGame removes the game together with its gamers, their boards and its moves.
func (s *Service) DeleteGame(ctx context.Context, id int64) error {
	unlock := s.games.lock(id)
	defer unlock()
	if err := s.store.DeleteGame(ctx, id); err != nil {
		return translate(err, "game %d", id)
	}
	log.Info().Int64("game_id", id).Msg("game deleted")
	return nil
}

// ensureWinnerFree reports a conflict when someone other than user already won.
func ensureWinnerFree(g bingo.Game, user string) error {
	if g.Winner != nil && *g.Winner != user {
		return apperr.Conflict("game %d already won by %s", g.ID, *g.Winner)
	}
	return nil
}
