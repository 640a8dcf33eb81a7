// internal/service/service.go
//
// Domain operations over the persistence gateway.
// Responsibilities:
//   - Enforce the relationship invariants between games, gamers, boards,
//     moves and statuses before anything is written.
//   - Translate store and generator failures into apperr kinds.
//   - Serialize move draws per game so called numbers stay unique.
//   - Publish game events (moves, winners, status changes) to the feed.
//
// One file per entity: statuses.go, games.go, gamers.go, boards.go, moves.go.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/bingo"
	"github.com/robalobadob/bingo-server/internal/feed"
	"github.com/robalobadob/bingo-server/internal/store"
)

// Publisher receives game events. *feed.Hub satisfies it.
type Publisher interface {
	Publish(e feed.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(feed.Event) {}

// Options carries the configurable defaults.
type Options struct {
	DefaultGameStatusID  int64
	DefaultGamerStatusID int64
	UniqueMoves          bool
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Service implements every domain operation.
type Service struct {
	store store.Store
	gen   *bingo.Generator
	pub   Publisher
	opts  Options
	games gameLocks
}

// New wires a Service. pub may be nil.
func New(st store.Store, gen *bingo.Generator, pub Publisher, opts Options) *Service {
	if pub == nil {
		pub = nopPublisher{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Service{store: st, gen: gen, pub: pub, opts: opts}
}

func (s *Service) now() time.Time { return s.opts.Clock().UTC() }

// translate maps a store error onto an apperr kind, naming the entity.
func translate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	what := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperr.Wrap(apperr.KindNotFound, err, "%s", what)
	case errors.Is(err, store.ErrReferenced):
		return apperr.Wrap(apperr.KindConflict, err, "%s", what)
	default:
		return apperr.Wrap(apperr.KindInternal, err, "%s", what)
	}
}

func required(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperr.Invalid("%s is required", field)
	}
	return v, nil
}

// statusRef resolves the status id a payload refers to, falling back to def.
// A nested status object wins over a bare id.
func statusRef(nested *bingo.Status, id, def int64) int64 {
	if nested != nil && nested.ID > 0 {
		return nested.ID
	}
	if id > 0 {
		return id
	}
	return def
}

func (s *Service) requireStatus(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Invalid("status is required")
	}
	if _, err := s.store.GetStatus(ctx, id); err != nil {
		return translate(err, "status %d", id)
	}
	return nil
}

func (s *Service) requireGame(ctx context.Context, id int64) error {
	ok, err := s.store.GameExists(ctx, id)
	if err != nil {
		return translate(err, "game %d", id)
	}
	if !ok {
		return apperr.NotFound("game %d not found", id)
	}
	return nil
}

// gameLocks is a refcounted mutex per game id.
type gameLocks struct {
	mu    sync.Mutex
	locks map[int64]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int
}

func (l *gameLocks) lock(id int64) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[int64]*gameLock)
	}
	e, ok := l.locks[id]
	if !ok {
		e = &gameLock{}
		l.locks[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
