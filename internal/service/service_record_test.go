package service

import (
	"context"
	"testing"

	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecordService(records *mockRecordRepository) *recordService {
	return NewRecordService(records, logger.Nop()).(*recordService)
}

func TestRecordService_Create_Success(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		insertFunc: func(_ context.Context, record models.Record) (models.Record, error) {
			assert.Equal(t, int64(1), record.OwnerID)
			assert.Equal(t, "buy milk", record.Title)
			assert.Equal(t, models.StateTodo, record.State)

			record.ID = 10
			return record, nil
		},
	}
	svc := newTestRecordService(records)

	created, err := svc.Create(context.Background(), principal, models.RecordRequest{
		Title: "buy milk",
		State: models.StateTodo,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestRecordService_Create_EmptyStateDefaultsToDraft(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		insertFunc: func(_ context.Context, record models.Record) (models.Record, error) {
			assert.Equal(t, models.StateDraft, record.State)
			return record, nil
		},
	}
	svc := newTestRecordService(records)

	_, err := svc.Create(context.Background(), principal, models.RecordRequest{Title: "buy milk"})
	require.NoError(t, err)
}

func TestRecordService_Create_OwnerForcedToPrincipal(t *testing.T) {
	principal := models.Account{ID: 42}

	records := &mockRecordRepository{
		insertFunc: func(_ context.Context, record models.Record) (models.Record, error) {
			assert.Equal(t, int64(42), record.OwnerID)
			return record, nil
		},
	}
	svc := newTestRecordService(records)

	_, err := svc.Create(context.Background(), principal, models.RecordRequest{Title: "x"})
	require.NoError(t, err)
}

func TestRecordService_Create_InvalidInput(t *testing.T) {
	svc := newTestRecordService(&mockRecordRepository{})
	principal := models.Account{ID: 1}

	_, err := svc.Create(context.Background(), principal, models.RecordRequest{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), principal, models.RecordRequest{Title: "x", State: "flying"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRecordService_List_ScopedToPrincipal(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		listFunc: func(_ context.Context, filter store.RecordFilter) ([]models.Record, error) {
			assert.Equal(t, int64(1), filter.OwnerID)
			assert.Equal(t, models.StateTodo, filter.State)
			return []models.Record{{ID: 1, OwnerID: 1}}, nil
		},
	}
	svc := newTestRecordService(records)

	// A caller-supplied owner restriction is overwritten with the principal's id.
	got, err := svc.List(context.Background(), principal, store.RecordFilter{OwnerID: 99, State: models.StateTodo})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestRecordService_List_InvalidStateFilter(t *testing.T) {
	svc := newTestRecordService(&mockRecordRepository{})

	_, err := svc.List(context.Background(), models.Account{ID: 1}, store.RecordFilter{State: "flying"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRecordService_Get_Success(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, id int64) (models.Record, error) {
			return models.Record{ID: id, OwnerID: 1, Title: "buy milk"}, nil
		},
	}
	svc := newTestRecordService(records)

	record, err := svc.Get(context.Background(), principal, 5)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", record.Title)
}

func TestRecordService_Get_ForeignRecordDenied(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, id int64) (models.Record, error) {
			return models.Record{ID: id, OwnerID: 2}, nil
		},
	}
	svc := newTestRecordService(records)

	_, err := svc.Get(context.Background(), principal, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRecordService_Get_NotFound(t *testing.T) {
	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, _ int64) (models.Record, error) {
			return models.Record{}, store.ErrRecordNotFound
		},
	}
	svc := newTestRecordService(records)

	_, err := svc.Get(context.Background(), models.Account{ID: 1}, 404)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestRecordService_Update_Success(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, id int64) (models.Record, error) {
			return models.Record{ID: id, OwnerID: 1, Title: "old", State: models.StateTodo}, nil
		},
		updateFunc: func(_ context.Context, record models.Record) (models.Record, error) {
			assert.Equal(t, "new title", record.Title)
			assert.Equal(t, models.StateDone, record.State)
			return record, nil
		},
	}
	svc := newTestRecordService(records)

	updated, err := svc.Update(context.Background(), principal, 5, models.RecordRequest{
		Title: "new title",
		State: models.StateDone,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
}

func TestRecordService_Update_EmptyStateKeepsStored(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, id int64) (models.Record, error) {
			return models.Record{ID: id, OwnerID: 1, Title: "old", State: models.StateDoing}, nil
		},
		updateFunc: func(_ context.Context, record models.Record) (models.Record, error) {
			assert.Equal(t, models.StateDoing, record.State)
			return record, nil
		},
	}
	svc := newTestRecordService(records)

	_, err := svc.Update(context.Background(), principal, 5, models.RecordRequest{Title: "new title"})
	require.NoError(t, err)
}

func TestRecordService_Update_ForeignRecordDenied(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, id int64) (models.Record, error) {
			return models.Record{ID: id, OwnerID: 2}, nil
		},
	}
	svc := newTestRecordService(records)

	_, err := svc.Update(context.Background(), principal, 5, models.RecordRequest{Title: "new title"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRecordService_Update_NotFound(t *testing.T) {
	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, _ int64) (models.Record, error) {
			return models.Record{}, store.ErrRecordNotFound
		},
	}
	svc := newTestRecordService(records)

	_, err := svc.Update(context.Background(), models.Account{ID: 1}, 404, models.RecordRequest{Title: "x"})
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestRecordService_Update_InvalidInput(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, id int64) (models.Record, error) {
			return models.Record{ID: id, OwnerID: 1, State: models.StateTodo}, nil
		},
	}
	svc := newTestRecordService(records)

	_, err := svc.Update(context.Background(), principal, 5, models.RecordRequest{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Update(context.Background(), principal, 5, models.RecordRequest{Title: "x", State: "flying"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRecordService_Delete_Success(t *testing.T) {
	principal := models.Account{ID: 1}

	var deletedID int64
	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, id int64) (models.Record, error) {
			return models.Record{ID: id, OwnerID: 1}, nil
		},
		deleteFunc: func(_ context.Context, record models.Record) error {
			deletedID = record.ID
			return nil
		},
	}
	svc := newTestRecordService(records)

	require.NoError(t, svc.Delete(context.Background(), principal, 5))
	assert.Equal(t, int64(5), deletedID)
}

func TestRecordService_Delete_ForeignRecordDenied(t *testing.T) {
	principal := models.Account{ID: 1}

	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, id int64) (models.Record, error) {
			return models.Record{ID: id, OwnerID: 2}, nil
		},
	}
	svc := newTestRecordService(records)

	err := svc.Delete(context.Background(), principal, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRecordService_Delete_NotFound(t *testing.T) {
	records := &mockRecordRepository{
		findByIDFunc: func(_ context.Context, _ int64) (models.Record, error) {
			return models.Record{}, store.ErrRecordNotFound
		},
	}
	svc := newTestRecordService(records)

	err := svc.Delete(context.Background(), models.Account{ID: 1}, 404)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}
