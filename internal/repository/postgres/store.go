package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fleetflow/internal/repository"
)

// Store is the gorm-backed implementation of repository.Store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Vehicles() repository.VehicleRepository { return &VehicleRepository{db: s.db} }

func (s *Store) Drivers() repository.DriverRepository { return &DriverRepository{db: s.db} }

func (s *Store) Trips() repository.TripRepository { return &TripRepository{db: s.db} }

func (s *Store) FuelLogs() repository.FuelLogRepository { return &FuelLogRepository{db: s.db} }

func (s *Store) ServiceLogs() repository.ServiceLogRepository { return &ServiceLogRepository{db: s.db} }

func (s *Store) Users() repository.UserRepository { return &UserRepository{db: s.db} }

func (s *Store) Transact(ctx context.Context, fn func(repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// translate maps gorm errors to the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return repository.ErrReferenced
	default:
		return err
	}
}
