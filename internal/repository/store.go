package repository

import "context"

// Store bundles the repositories behind one handle. Transact runs fn against
// a store whose writes commit or roll back together; trip transitions use it
// so the trip update and the vehicle/driver side effects land atomically.
type Store interface {
	Vehicles() VehicleRepository
	Drivers() DriverRepository
	Trips() TripRepository
	FuelLogs() FuelLogRepository
	ServiceLogs() ServiceLogRepository
	Users() UserRepository

	Transact(ctx context.Context, fn func(Store) error) error
}
