package service

import (
	"github.com/mlevashov/taskdesk/internal/config"
	"github.com/mlevashov/taskdesk/internal/crypto"
	"github.com/mlevashov/taskdesk/internal/logger"
	"github.com/mlevashov/taskdesk/internal/store"
	"github.com/mlevashov/taskdesk/internal/token"
)

// Services aggregates all application services.
type Services struct {
	Auth     AuthService
	Accounts AccountService
	Records  RecordService
}

// NewServices constructs the service layer over the given repositories,
// building the password hasher and the token codec from cfg. The token
// signing key lives only inside the codec; no package-level key state
// exists.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) (*Services, error) {
	codec, err := token.NewCodec(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher()

	return &Services{
		Auth:     NewAuthService(repositories.Accounts, hasher, codec, logger),
		Accounts: NewAccountService(repositories.Accounts, hasher, logger),
		Records:  NewRecordService(repositories.Records, logger),
	}, nil
}
