package store

import "github.com/mlevashov/taskdesk/internal/logger"

// Repositories aggregates all persistence-layer repositories wired to a
// single database connection.
type Repositories struct {
	Accounts AccountRepository
	Records  RecordRepository
}

// NewRepositories constructs all repositories over the given connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(db, logger),
		Records:  NewRecordRepository(db, logger),
	}
}
