package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/bingo"
)

func (s *Service) ListGamers(ctx context.Context) ([]bingo.Gamer, error) {
	gamers, err := s.store.ListGamers(ctx)
	return gamers, translate(err, "list gamers")
}

// GetGamer returns the gamer with its status and board.
func (s *Service) GetGamer(ctx context.Context, id int64) (bingo.Gamer, error) {
	g, err := s.store.GetGamer(ctx, id)
	return g, translate(err, "gamer %d", id)
}

// FindGamerByUser returns the latest gamer registered under user.
func (s *Service) FindGamerByUser(ctx context.Context, user string) (bingo.Gamer, error) {
	user, err := required("user", user)
	if err != nil {
		return bingo.Gamer{}, err
	}
	g, err := s.store.FindGamerByUser(ctx, user)
	return g, translate(err, "gamer %q", user)
}

// RegisterGamer stores a new gamer and deals its board. A payload game id
// joins the gamer to that game straight away.
func (s *Service) RegisterGamer(ctx context.Context, in bingo.Gamer) (bingo.Gamer, error) {
	user, err := required("user", in.User)
	if err != nil {
		return bingo.Gamer{}, err
	}
	g := bingo.Gamer{
		User:      user,
		StatusID:  statusRef(in.Status, in.StatusID, s.opts.DefaultGamerStatusID),
		GameID:    in.GameID,
		CreatedAt: s.now(),
	}
	if err := s.requireStatus(ctx, g.StatusID); err != nil {
		return bingo.Gamer{}, err
	}
	if g.GameID != nil {
		if err := s.requireGame(ctx, *g.GameID); err != nil {
			return bingo.Gamer{}, err
		}
	}
	if err := s.store.CreateGamer(ctx, &g); err != nil {
		return bingo.Gamer{}, translate(err, "create gamer")
	}

	board, err := s.dealBoard(ctx, g.ID)
	if err != nil {
		s.abandonGamer(ctx, g.ID)
		return bingo.Gamer{}, err
	}
	if err := s.store.SetGamerBoard(ctx, g.ID, board.ID, g.CreatedAt); err != nil {
		s.abandonGamer(ctx, g.ID)
		return bingo.Gamer{}, translate(err, "gamer %d", g.ID)
	}
	log.Info().Int64("gamer_id", g.ID).Int64("board_id", board.ID).Str("user", user).Msg("gamer registered")
	return s.GetGamer(ctx, g.ID)
}

// abandonGamer removes a half-registered gamer along with any board dealt to it.
func (s *Service) abandonGamer(ctx context.Context, id int64) {
	if err := s.store.DeleteGamer(ctx, id); err != nil {
		log.Error().Err(err).Int64("gamer_id", id).Msg("remove gamer after failed registration")
	}
}

// UpdateGamer replaces user, status, board and game. A missing board or game
// keeps the current link; a gamer already in a game cannot switch games.
func (s *Service) UpdateGamer(ctx context.Context, id int64, in bingo.Gamer) (bingo.Gamer, error) {
	cur, err := s.GetGamer(ctx, id)
	if err != nil {
		return bingo.Gamer{}, err
	}
	user, err := required("user", in.User)
	if err != nil {
		return bingo.Gamer{}, err
	}
	statusID := statusRef(in.Status, in.StatusID, 0)
	if err := s.requireStatus(ctx, statusID); err != nil {
		return bingo.Gamer{}, err
	}

	now := s.now()
	next := bingo.Gamer{ID: id, User: user, StatusID: statusID, BoardID: cur.BoardID, GameID: cur.GameID, UpdatedAt: &now}
	if boardID := boardRef(in); boardID != nil {
		if err := s.requireOwnBoard(ctx, id, *boardID); err != nil {
			return bingo.Gamer{}, err
		}
		next.BoardID = boardID
	}
	if in.GameID != nil {
		if err := s.checkJoin(ctx, cur, *in.GameID); err != nil {
			return bingo.Gamer{}, err
		}
		next.GameID = in.GameID
	}
	if err := s.store.UpdateGamer(ctx, next); err != nil {
		return bingo.Gamer{}, translate(err, "gamer %d", id)
	}
	return s.GetGamer(ctx, id)
}

func boardRef(in bingo.Gamer) *int64 {
	if in.Board != nil && in.Board.ID > 0 {
		return &in.Board.ID
	}
	return in.BoardID
}

// UpdateGamerStatus moves the gamer to statusID.
func (s *Service) UpdateGamerStatus(ctx context.Context, id, statusID int64) (bingo.Gamer, error) {
	if err := s.requireStatus(ctx, statusID); err != nil {
		return bingo.Gamer{}, err
	}
	if err := s.store.SetGamerStatus(ctx, id, statusID, s.now()); err != nil {
		return bingo.Gamer{}, translate(err, "gamer %d", id)
	}
	return s.GetGamer(ctx, id)
}

// UpdateGamerBoard points the gamer at one of its own boards.
func (s *Service) UpdateGamerBoard(ctx context.Context, id, boardID int64) (bingo.Gamer, error) {
	if _, err := s.GetGamer(ctx, id); err != nil {
		return bingo.Gamer{}, err
	}
	if err := s.requireOwnBoard(ctx, id, boardID); err != nil {
		return bingo.Gamer{}, err
	}
	if err := s.store.SetGamerBoard(ctx, id, boardID, s.now()); err != nil {
		return bingo.Gamer{}, translate(err, "gamer %d", id)
	}
	return s.GetGamer(ctx, id)
}

func (s *Service) requireOwnBoard(ctx context.Context, gamerID, boardID int64) error {
	b, err := s.store.GetBoard(ctx, boardID)
	if err != nil {
		return translate(err, "board %d", boardID)
	}
	if b.GamerID != gamerID {
		return apperr.Conflict("board %d belongs to gamer %d", boardID, b.GamerID)
	}
	return nil
}

// AssignGamerGame joins the gamer to gameID. Joining the same game twice is a
// no-op; joining a second game is a conflict.
func (s *Service) AssignGamerGame(ctx context.Context, id, gameID int64) (bingo.Gamer, error) {
	cur, err := s.GetGamer(ctx, id)
	if err != nil {
		return bingo.Gamer{}, err
	}
	if err := s.checkJoin(ctx, cur, gameID); err != nil {
		return bingo.Gamer{}, err
	}
	if cur.GameID != nil {
		return cur, nil
	}
	if err := s.store.SetGamerGame(ctx, id, gameID, s.now()); err != nil {
		return bingo.Gamer{}, translate(err, "gamer %d", id)
	}
	log.Info().Int64("gamer_id", id).Int64("game_id", gameID).Msg("gamer joined game")
	return s.GetGamer(ctx, id)
}

func (s *Service) checkJoin(ctx context.Context, g bingo.Gamer, gameID int64) error {
	if g.GameID != nil && *g.GameID != gameID {
		return apperr.Conflict("gamer %d already belongs to game %d", g.ID, *g.GameID)
	}
	return s.requireGame(ctx, gameID)
}

// DeleteGamer removes the gamer and the board it owns.
func (s *Service) DeleteGamer(ctx context.Context, id int64) error {
	return translate(s.store.DeleteGamer(ctx, id), "gamer %d", id)
}

// Claim is the outcome of a bingo claim.
type Claim struct {
	GamerID int64  `json:"gamerId"`
	GameID  int64  `json:"gameId"`
	Won     bool   `json:"won"`
	Line    string `json:"line,omitempty"`
	Winner  string `json:"winner,omitempty"`
}

// ClaimBingo checks the gamer's board against the numbers called in its game.
// A completed row, column or diagonal records the gamer as winner.
func (s *Service) ClaimBingo(ctx context.Context, gamerID int64) (Claim, error) {
	g, err := s.GetGamer(ctx, gamerID)
	if err != nil {
		return Claim{}, err
	}
	if g.GameID == nil {
		return Claim{}, apperr.Conflict("gamer %d has not joined a game", gamerID)
	}
	if g.Board == nil {
		return Claim{}, apperr.Conflict("gamer %d has no board", gamerID)
	}

	unlock := s.games.lock(*g.GameID)
	defer unlock()

	game, err := s.GetGame(ctx, *g.GameID)
	if err != nil {
		return Claim{}, err
	}
	claim := Claim{GamerID: gamerID, GameID: game.ID}
	if err := ensureWinnerFree(game, g.User); err != nil {
		return Claim{}, err
	}
	line, ok := bingo.WinningLine(*g.Board, game.CalledNumbers())
	if !ok {
		return claim, nil
	}
	if _, err := s.setWinner(ctx, game.ID, g.User); err != nil {
		return Claim{}, err
	}
	claim.Won, claim.Line, claim.Winner = true, line.String(), g.User
	return claim, nil
}

// dealBoard assembles and stores a fresh board for gamerID.
func (s *Service) dealBoard(ctx context.Context, gamerID int64) (bingo.Board, error) {
	b, err := s.gen.Board(gamerID)
	if err != nil {
		return bingo.Board{}, apperr.Wrap(apperr.KindInternal, err, "deal board for gamer %d", gamerID)
	}
	if err := s.store.CreateBoard(ctx, &b); err != nil {
		return bingo.Board{}, translate(err, "create board")
	}
	return b, nil
}
