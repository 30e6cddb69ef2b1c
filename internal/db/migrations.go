package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_type') THEN
			CREATE TYPE vehicle_type AS ENUM ('Truck', 'Van', 'Bike');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_status') THEN
			CREATE TYPE vehicle_status AS ENUM ('Available', 'On Trip', 'In Shop', 'Out of Service');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'driver_status') THEN
			CREATE TYPE driver_status AS ENUM ('On Duty', 'Off Duty', 'Suspended');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_status') THEN
			CREATE TYPE trip_status AS ENUM ('Draft', 'Dispatched', 'Completed', 'Cancelled');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('Fleet Manager', 'Dispatcher', 'Safety Officer', 'Financial Analyst');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		model VARCHAR(255) NOT NULL DEFAULT '',
		license_plate VARCHAR(32) NOT NULL UNIQUE,
		vehicle_type vehicle_type NOT NULL,
		max_load_capacity DOUBLE PRECISION NOT NULL,
		odometer DOUBLE PRECISION NOT NULL DEFAULT 0,
		status vehicle_status NOT NULL DEFAULT 'Available',
		region VARCHAR(255) NOT NULL DEFAULT '',
		acquisition_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_status_type_region ON vehicles (status, vehicle_type, region);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		license_number VARCHAR(64) NOT NULL UNIQUE,
		license_expiry_date TIMESTAMPTZ NOT NULL,
		allowed_vehicle_type JSONB NOT NULL DEFAULT '[]',
		status driver_status NOT NULL DEFAULT 'Off Duty',
		safety_score DOUBLE PRECISION NOT NULL DEFAULT 100,
		trips_completed INTEGER NOT NULL DEFAULT 0,
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_status_expiry ON drivers (status, license_expiry_date);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		driver_id UUID NOT NULL REFERENCES drivers(id),
		cargo_weight DOUBLE PRECISION NOT NULL,
		origin VARCHAR(255) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
		distance DOUBLE PRECISION NOT NULL DEFAULT 0,
		status trip_status NOT NULL DEFAULT 'Draft',
		dispatched_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_status_vehicle_driver ON trips (status, vehicle_id, driver_id);`,
	`CREATE TABLE IF NOT EXISTS fuel_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		liters DOUBLE PRECISION NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		odometer_at_fill DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_logs_vehicle_date ON fuel_logs (vehicle_id, date);`,
	`CREATE TABLE IF NOT EXISTS service_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		service_type VARCHAR(255) NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_service_logs_vehicle_date ON service_logs (vehicle_id, date);`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role user_role NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		reset_token_hash VARCHAR(128),
		reset_token_expires TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_users_reset_token_hash ON users (reset_token_hash);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
