package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

func (s *Service) ListStatuses(ctx context.Context) ([]bingo.Status, error) {
	list, err := s.store.ListStatuses(ctx)
	return list, translate(err, "list statuses")
}

func (s *Service) GetStatus(ctx context.Context, id int64) (bingo.Status, error) {
	st, err := s.store.GetStatus(ctx, id)
	return st, translate(err, "status %d", id)
}

// CreateStatus stores a new status. The id is always assigned by the store.
func (s *Service) CreateStatus(ctx context.Context, in bingo.Status) (bingo.Status, error) {
	name, err := required("statusName", in.Name)
	if err != nil {
		return bingo.Status{}, err
	}
	st := bingo.Status{Name: name, Description: in.Description}
	if err := s.store.CreateStatus(ctx, &st); err != nil {
		return bingo.Status{}, translate(err, "create status")
	}
	log.Info().Int64("status_id", st.ID).Str("name", st.Name).Msg("status created")
	return st, nil
}

// UpdateStatus replaces name and description of status id.
func (s *Service) UpdateStatus(ctx context.Context, id int64, in bingo.Status) (bingo.Status, error) {
	name, err := required("statusName", in.Name)
	if err != nil {
		return bingo.Status{}, err
	}
	st := bingo.Status{ID: id, Name: name, Description: in.Description}
	if err := s.store.UpdateStatus(ctx, st); err != nil {
		return bingo.Status{}, translate(err, "status %d", id)
	}
	return st, nil
}

// DeleteStatus removes a status nothing refers to.
func (s *Service) DeleteStatus(ctx context.Context, id int64) error {
	return translate(s.store.DeleteStatus(ctx, id), "status %d", id)
}
