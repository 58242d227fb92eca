package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and applies the
// idempotent SQL schema. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey and can be mapped to conflict
// errors by the services.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("schema migration: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema as guarded DDL statements. Every statement
// uses IF NOT EXISTS / existence-check semantics so re-running on an already
// migrated database is a no-op. The UNIQUE constraints on roles.name and
// users.rut are the real enforcement behind the service-level uniqueness
// checks, which are advisory and racy on their own.
func RunMigrations(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"pgcrypto extension for gen_random_uuid()",
			`CREATE EXTENSION IF NOT EXISTS pgcrypto`},

		{"create roles", `
CREATE TABLE IF NOT EXISTS roles (
    id   uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name text
)`},

		{"create users", `
CREATE TABLE IF NOT EXISTS users (
    id       uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name     text NOT NULL,
    password text NOT NULL,
    email    text NOT NULL,
    rut      text NOT NULL,
    id_role  uuid REFERENCES roles(id) ON DELETE NO ACTION ON UPDATE NO ACTION
)`},

		{"unique roles.name", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint
                 WHERE conrelid = to_regclass('roles') AND conname = 'uni_roles_name') THEN
    ALTER TABLE roles ADD CONSTRAINT uni_roles_name UNIQUE (name);
  END IF;
END $$`},

		{"unique users.rut", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint
                 WHERE conrelid = to_regclass('users') AND conname = 'uni_users_rut') THEN
    ALTER TABLE users ADD CONSTRAINT uni_users_rut UNIQUE (rut);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
