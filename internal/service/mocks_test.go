package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"
)

// mockStore is an in-memory repository.Store. Transact runs the callback
// against the same store; the tests that exercise transitions only assert on
// the final state, not on rollback behavior.
type mockStore struct {
	vehicles    *mockVehicleRepo
	drivers     *mockDriverRepo
	trips       *mockTripRepo
	fuelLogs    *mockFuelLogRepo
	serviceLogs *mockServiceLogRepo
	users       *mockUserRepo
}

func newMockStore() *mockStore {
	s := &mockStore{
		fuelLogs:    &mockFuelLogRepo{items: map[uuid.UUID]*model.FuelLog{}},
		serviceLogs: &mockServiceLogRepo{items: map[uuid.UUID]*model.ServiceLog{}},
		users:       &mockUserRepo{items: map[uuid.UUID]*model.User{}},
	}
	s.vehicles = &mockVehicleRepo{items: map[uuid.UUID]*model.Vehicle{}, store: s}
	s.drivers = &mockDriverRepo{items: map[uuid.UUID]*model.Driver{}, store: s}
	s.trips = &mockTripRepo{items: map[uuid.UUID]*model.Trip{}, store: s}
	return s
}

func (s *mockStore) Vehicles() repository.VehicleRepository       { return s.vehicles }
func (s *mockStore) Drivers() repository.DriverRepository         { return s.drivers }
func (s *mockStore) Trips() repository.TripRepository             { return s.trips }
func (s *mockStore) FuelLogs() repository.FuelLogRepository       { return s.fuelLogs }
func (s *mockStore) ServiceLogs() repository.ServiceLogRepository { return s.serviceLogs }
func (s *mockStore) Users() repository.UserRepository             { return s.users }

func (s *mockStore) Transact(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

type mockVehicleRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Vehicle
	order []uuid.UUID
	store *mockStore
}

func (r *mockVehicleRepo) List(ctx context.Context, filter repository.VehicleFilter) ([]model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Vehicle
	for _, id := range r.order {
		v := r.items[id]
		if filter.VehicleType != nil && v.VehicleType != *filter.VehicleType {
			continue
		}
		if filter.Status != nil && v.Status != *filter.Status {
			continue
		}
		if filter.Region != "" && !strings.Contains(strings.ToLower(v.Region), strings.ToLower(filter.Region)) {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *mockVehicleRepo) ListAvailable(ctx context.Context) ([]model.Vehicle, error) {
	available := model.VehicleStatusAvailable
	return r.List(ctx, repository.VehicleFilter{Status: &available})
}

func (r *mockVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *mockVehicleRepo) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.LicensePlate == plate {
			clone := *v
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockVehicleRepo) Create(ctx context.Context, vehicle *model.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.LicensePlate == vehicle.LicensePlate {
			return repository.ErrDuplicate
		}
	}
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	clone := *vehicle
	r.items[vehicle.ID] = &clone
	r.order = append(r.order, vehicle.ID)
	return nil
}

func (r *mockVehicleRepo) Save(ctx context.Context, vehicle *model.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[vehicle.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, v := range r.items {
		if id != vehicle.ID && v.LicensePlate == vehicle.LicensePlate {
			return repository.ErrDuplicate
		}
	}
	clone := *vehicle
	r.items[vehicle.ID] = &clone
	return nil
}

func (r *mockVehicleRepo) SetStatus(ctx context.Context, id uuid.UUID, status model.VehicleStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.Status = status
	return nil
}

func (r *mockVehicleRepo) SetStatusFrom(ctx context.Context, id uuid.UUID, from, to model.VehicleStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok || v.Status != from {
		return false, nil
	}
	v.Status = to
	return true, nil
}

func (r *mockVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.store.trips.referencesVehicle(id) {
		return repository.ErrReferenced
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type mockDriverRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Driver
	order []uuid.UUID
	store *mockStore
}

func (r *mockDriverRepo) List(ctx context.Context, filter repository.DriverFilter) ([]model.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Driver
	for _, id := range r.order {
		d := r.items[id]
		if filter.Status != nil && d.Status != *filter.Status {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *mockDriverRepo) ListAvailable(ctx context.Context, now time.Time) ([]model.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Driver
	for _, id := range r.order {
		d := r.items[id]
		if d.Status == model.DriverStatusOffDuty && d.LicenseExpiryDate.After(now) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *mockDriverRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *mockDriverRepo) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.items {
		if d.LicenseNumber == licenseNumber {
			clone := *d
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockDriverRepo) Create(ctx context.Context, driver *model.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.items {
		if d.LicenseNumber == driver.LicenseNumber {
			return repository.ErrDuplicate
		}
	}
	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	clone := *driver
	r.items[driver.ID] = &clone
	r.order = append(r.order, driver.ID)
	return nil
}

func (r *mockDriverRepo) Save(ctx context.Context, driver *model.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[driver.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, d := range r.items {
		if id != driver.ID && d.LicenseNumber == driver.LicenseNumber {
			return repository.ErrDuplicate
		}
	}
	clone := *driver
	r.items[driver.ID] = &clone
	return nil
}

func (r *mockDriverRepo) SetStatus(ctx context.Context, id uuid.UUID, status model.DriverStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	d.Status = status
	return nil
}

func (r *mockDriverRepo) SetStatusFrom(ctx context.Context, id uuid.UUID, from, to model.DriverStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = to
	return true, nil
}

func (r *mockDriverRepo) IncrementTripsCompleted(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	d.TripsCompleted++
	return nil
}

func (r *mockDriverRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.store.trips.referencesDriver(id) {
		return repository.ErrReferenced
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type mockTripRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Trip
	order []uuid.UUID
	store *mockStore
}

// attach fills the vehicle and driver the same way the SQL layer preloads
// them.
func (r *mockTripRepo) attach(t model.Trip) model.Trip {
	if v, err := r.store.vehicles.GetByID(context.Background(), t.VehicleID); err == nil {
		t.Vehicle = v
	}
	if d, err := r.store.drivers.GetByID(context.Background(), t.DriverID); err == nil {
		t.Driver = d
	}
	return t
}

func (r *mockTripRepo) referencesVehicle(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.items {
		if t.VehicleID == id {
			return true
		}
	}
	return false
}

func (r *mockTripRepo) referencesDriver(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.items {
		if t.DriverID == id {
			return true
		}
	}
	return false
}

func (r *mockTripRepo) List(ctx context.Context, filter repository.TripFilter) ([]model.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Trip
	for _, id := range r.order {
		t := r.items[id]
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.VehicleID != nil && t.VehicleID != *filter.VehicleID {
			continue
		}
		if filter.DriverID != nil && t.DriverID != *filter.DriverID {
			continue
		}
		out = append(out, r.attach(*t))
	}
	return out, nil
}

func (r *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	attached := r.attach(*t)
	return &attached, nil
}

func (r *mockTripRepo) Create(ctx context.Context, trip *model.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	clone := *trip
	clone.Vehicle = nil
	clone.Driver = nil
	r.items[trip.ID] = &clone
	r.order = append(r.order, trip.ID)
	return nil
}

func (r *mockTripRepo) Save(ctx context.Context, trip *model.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[trip.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *trip
	clone.Vehicle = nil
	clone.Driver = nil
	r.items[trip.ID] = &clone
	return nil
}

func (r *mockTripRepo) CountByStatus(ctx context.Context, status model.TripStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, t := range r.items {
		if t.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type mockFuelLogRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.FuelLog
	order []uuid.UUID
}

func (r *mockFuelLogRepo) List(ctx context.Context, vehicleID *uuid.UUID) ([]model.FuelLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.FuelLog
	for i := len(r.order) - 1; i >= 0; i-- {
		l := r.items[r.order[i]]
		if vehicleID != nil && l.VehicleID != *vehicleID {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *mockFuelLogRepo) ListByVehicleAsc(ctx context.Context, vehicleID uuid.UUID) ([]model.FuelLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.FuelLog
	for _, id := range r.order {
		l := r.items[id]
		if l.VehicleID == vehicleID {
			out = append(out, *l)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Date.Before(out[j-1].Date); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *mockFuelLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.FuelLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *mockFuelLogRepo) Create(ctx context.Context, log *model.FuelLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	clone := *log
	r.items[log.ID] = &clone
	r.order = append(r.order, log.ID)
	return nil
}

func (r *mockFuelLogRepo) Save(ctx context.Context, log *model.FuelLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[log.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *log
	r.items[log.ID] = &clone
	return nil
}

func (r *mockFuelLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type mockServiceLogRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.ServiceLog
	order []uuid.UUID
}

func (r *mockServiceLogRepo) List(ctx context.Context, vehicleID *uuid.UUID) ([]model.ServiceLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ServiceLog
	for i := len(r.order) - 1; i >= 0; i-- {
		l := r.items[r.order[i]]
		if vehicleID != nil && l.VehicleID != *vehicleID {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *mockServiceLogRepo) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.ServiceLog, error) {
	return r.List(ctx, &vehicleID)
}

func (r *mockServiceLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ServiceLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *mockServiceLogRepo) Create(ctx context.Context, log *model.ServiceLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	clone := *log
	r.items[log.ID] = &clone
	r.order = append(r.order, log.ID)
	return nil
}

func (r *mockServiceLogRepo) Save(ctx context.Context, log *model.ServiceLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[log.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *log
	r.items[log.ID] = &clone
	return nil
}

func (r *mockServiceLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type mockUserRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.User
}

func (r *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockUserRepo) GetByResetTokenHash(ctx context.Context, tokenHash string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	r.items[user.ID] = &clone
	return nil
}

func (r *mockUserRepo) Save(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[user.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *user
	r.items[user.ID] = &clone
	return nil
}
