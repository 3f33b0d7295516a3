package http

import (
	"context"
	"testing"

	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/service"
	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn      func(ctx context.Context, contact, password string) (models.Account, error)
	issueTokenFn func(ctx context.Context, account models.Account) (string, error)
	resolveFn    func(ctx context.Context, tokenString string) (models.Account, error)
}

func (m *mockAuthService) Login(ctx context.Context, contact, password string) (models.Account, error) {
	return m.loginFn(ctx, contact, password)
}

func (m *mockAuthService) IssueToken(ctx context.Context, account models.Account) (string, error) {
	return m.issueTokenFn(ctx, account)
}

func (m *mockAuthService) Resolve(ctx context.Context, tokenString string) (models.Account, error) {
	return m.resolveFn(ctx, tokenString)
}

// mockAccountService implements service.AccountService for unit tests.
type mockAccountService struct {
	registerFn func(ctx context.Context, req models.AccountRequest) (models.Account, error)
	listFn     func(ctx context.Context, offset, limit uint64) ([]models.Account, error)
	getFn      func(ctx context.Context, id int64) (models.Account, error)
	updateFn   func(ctx context.Context, principal models.Account, id int64, req models.AccountRequest) (models.Account, error)
	deleteFn   func(ctx context.Context, principal models.Account, id int64) error
}

func (m *mockAccountService) Register(ctx context.Context, req models.AccountRequest) (models.Account, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAccountService) List(ctx context.Context, offset, limit uint64) ([]models.Account, error) {
	return m.listFn(ctx, offset, limit)
}

func (m *mockAccountService) Get(ctx context.Context, id int64) (models.Account, error) {
	return m.getFn(ctx, id)
}

func (m *mockAccountService) Update(ctx context.Context, principal models.Account, id int64, req models.AccountRequest) (models.Account, error) {
	return m.updateFn(ctx, principal, id, req)
}

func (m *mockAccountService) Delete(ctx context.Context, principal models.Account, id int64) error {
	return m.deleteFn(ctx, principal, id)
}

// mockRecordService implements service.RecordService for unit tests.
type mockRecordService struct {
	createFn func(ctx context.Context, principal models.Account, req models.RecordRequest) (models.Record, error)
	listFn   func(ctx context.Context, principal models.Account, filter store.RecordFilter) ([]models.Record, error)
	getFn    func(ctx context.Context, principal models.Account, id int64) (models.Record, error)
	updateFn func(ctx context.Context, principal models.Account, id int64, req models.RecordRequest) (models.Record, error)
	deleteFn func(ctx context.Context, principal models.Account, id int64) error
}

func (m *mockRecordService) Create(ctx context.Context, principal models.Account, req models.RecordRequest) (models.Record, error) {
	return m.createFn(ctx, principal, req)
}

func (m *mockRecordService) List(ctx context.Context, principal models.Account, filter store.RecordFilter) ([]models.Record, error) {
	return m.listFn(ctx, principal, filter)
}

func (m *mockRecordService) Get(ctx context.Context, principal models.Account, id int64) (models.Record, error) {
	return m.getFn(ctx, principal, id)
}

func (m *mockRecordService) Update(ctx context.Context, principal models.Account, id int64, req models.RecordRequest) (models.Record, error) {
	return m.updateFn(ctx, principal, id, req)
}

func (m *mockRecordService) Delete(ctx context.Context, principal models.Account, id int64) error {
	return m.deleteFn(ctx, principal, id)
}

// newTestHandler builds a Handler over the given service mocks. Nil mocks are
// fine as long as the exercised route never reaches them.
func newTestHandler(t *testing.T, auth service.AuthService, accounts service.AccountService, records service.RecordService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		Auth:     auth,
		Accounts: accounts,
		Records:  records,
	}, logger.Nop())
}

// authAccepting returns an AuthService mock whose Resolve always yields
// principal, regardless of the token string. Used to get write routes past
// the auth middleware.
func authAccepting(principal models.Account) *mockAuthService {
	return &mockAuthService{
		resolveFn: func(_ context.Context, _ string) (models.Account, error) {
			return principal, nil
		},
	}
}
