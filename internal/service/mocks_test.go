package service

import (
	"context"

	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/models"
)

// mockAccountRepository implements store.AccountRepository via function
// fields so each test supplies only the behaviour it needs.
type mockAccountRepository struct {
	findByHandleOrContactFunc func(ctx context.Context, handle, contact string) (models.Account, error)
	findByIDFunc              func(ctx context.Context, id int64) (models.Account, error)
	findByContactFunc         func(ctx context.Context, contact string) (models.Account, error)
	listFunc                  func(ctx context.Context, offset, limit uint64) ([]models.Account, error)
	insertFunc                func(ctx context.Context, account models.Account) (models.Account, error)
	updateFunc                func(ctx context.Context, account models.Account) (models.Account, error)
	deleteFunc                func(ctx context.Context, account models.Account) error
}

func (m *mockAccountRepository) FindByHandleOrContact(ctx context.Context, handle, contact string) (models.Account, error) {
	return m.findByHandleOrContactFunc(ctx, handle, contact)
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockAccountRepository) FindByContact(ctx context.Context, contact string) (models.Account, error) {
	return m.findByContactFunc(ctx, contact)
}

func (m *mockAccountRepository) List(ctx context.Context, offset, limit uint64) ([]models.Account, error) {
	return m.listFunc(ctx, offset, limit)
}

func (m *mockAccountRepository) Insert(ctx context.Context, account models.Account) (models.Account, error) {
	return m.insertFunc(ctx, account)
}

func (m *mockAccountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	return m.updateFunc(ctx, account)
}

func (m *mockAccountRepository) Delete(ctx context.Context, account models.Account) error {
	return m.deleteFunc(ctx, account)
}

// mockRecordRepository implements store.RecordRepository via function fields.
type mockRecordRepository struct {
	insertFunc   func(ctx context.Context, record models.Record) (models.Record, error)
	findByIDFunc func(ctx context.Context, id int64) (models.Record, error)
	listFunc     func(ctx context.Context, filter store.RecordFilter) ([]models.Record, error)
	updateFunc   func(ctx context.Context, record models.Record) (models.Record, error)
	deleteFunc   func(ctx context.Context, record models.Record) error
}

func (m *mockRecordRepository) Insert(ctx context.Context, record models.Record) (models.Record, error) {
	return m.insertFunc(ctx, record)
}

func (m *mockRecordRepository) FindByID(ctx context.Context, id int64) (models.Record, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockRecordRepository) List(ctx context.Context, filter store.RecordFilter) ([]models.Record, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockRecordRepository) Update(ctx context.Context, record models.Record) (models.Record, error) {
	return m.updateFunc(ctx, record)
}

func (m *mockRecordRepository) Delete(ctx context.Context, record models.Record) error {
	return m.deleteFunc(ctx, record)
}
