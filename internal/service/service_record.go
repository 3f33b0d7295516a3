package service

import (
	"context"
	"fmt"

	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/models"
)

// recordService is the concrete implementation of RecordService.
// Every mutation follows the same shape: fetch the target row, run the
// ownership guard against its owner reference, then write.
type recordService struct {
	records store.RecordRepository
	logger  *logger.Logger
}

// NewRecordService constructs a RecordService over the given repository.
func NewRecordService(records store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		records: records,
		logger:  logger,
	}
}

// Create persists a new record owned by the principal. The owner reference
// is forced to the principal's id regardless of anything in the request.
// An empty state defaults to draft.
func (s *recordService) Create(ctx context.Context, principal models.Account, req models.RecordRequest) (models.Record, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" {
		return models.Record{}, ErrInvalidDataProvided
	}

	state := req.State
	if state == "" {
		state = models.StateDraft
	}
	if !state.Valid() {
		return models.Record{}, ErrInvalidDataProvided
	}

	created, err := s.records.Insert(ctx, models.Record{
		OwnerID:     principal.ID,
		Title:       req.Title,
		Description: req.Description,
		State:       state,
	})
	if err != nil {
		log.Err(err).Msg("record creation ended with error")
		return models.Record{}, fmt.Errorf("record creation ended with error: %w", err)
	}

	return created, nil
}

// List returns the principal's records matching filter. The owner
// restriction always wins over whatever the caller put in the filter.
func (s *recordService) List(ctx context.Context, principal models.Account, filter store.RecordFilter) ([]models.Record, error) {
	if filter.State != "" && !filter.State.Valid() {
		return nil, ErrInvalidDataProvided
	}

	filter.OwnerID = principal.ID
	return s.records.List(ctx, filter)
}

// Get returns the record with the given id. A record owned by a different
// account is rejected with ErrForbidden; an absent one with
// store.ErrRecordNotFound.
func (s *recordService) Get(ctx context.Context, principal models.Account, id int64) (models.Record, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return models.Record{}, err
	}

	if err := Authorize(principal, record.OwnerID); err != nil {
		return models.Record{}, err
	}

	return record, nil
}

// Update replaces the mutable fields of an owned record (title, description,
// state). The target is fetched first so that the guard runs against the
// stored owner reference, not anything the caller supplied.
func (s *recordService) Update(ctx context.Context, principal models.Account, id int64, req models.RecordRequest) (models.Record, error) {
	log := logger.FromContext(ctx)

	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return models.Record{}, err
	}

	if err := Authorize(principal, record.OwnerID); err != nil {
		log.Debug().Int64("principal", principal.ID).Int64("owner", record.OwnerID).Msg("record update denied")
		return models.Record{}, err
	}

	if req.Title == "" {
		return models.Record{}, ErrInvalidDataProvided
	}
	state := req.State
	if state == "" {
		state = record.State
	}
	if !state.Valid() {
		return models.Record{}, ErrInvalidDataProvided
	}

	record.Title = req.Title
	record.Description = req.Description
	record.State = state

	updated, err := s.records.Update(ctx, record)
	if err != nil {
		log.Err(err).Msg("record update ended with error")
		return models.Record{}, fmt.Errorf("record update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes an owned record after the ownership guard passes.
func (s *recordService) Delete(ctx context.Context, principal models.Account, id int64) error {
	log := logger.FromContext(ctx)

	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := Authorize(principal, record.OwnerID); err != nil {
		log.Debug().Int64("principal", principal.ID).Int64("owner", record.OwnerID).Msg("record delete denied")
		return err
	}

	return s.records.Delete(ctx, record)
}
