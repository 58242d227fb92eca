package model

import (
	"github.com/google/uuid"
)

// Role is an authorization group a user belongs to (at most one per user).
// Name is nullable in the schema but required at creation time by the service;
// the UNIQUE constraint on name backs the service-level uniqueness check.
type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name *string   `gorm:"type:text;unique"`
}

func (Role) TableName() string { return "roles" }
