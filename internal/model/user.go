package model

import (
	"github.com/google/uuid"
)

// User stores an account holder identified by their RUT (national identity
// number, treated as an opaque unique string). Password holds only the bcrypt
// hash — the plaintext is never persisted. The role FK carries NO ACTION on
// delete/update, so deleting a role leaves users pointing at a missing row.
type User struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string     `gorm:"type:text;not null"`
	Password string     `gorm:"type:text;not null"`
	Email    string     `gorm:"type:text;not null"`
	Rut      string     `gorm:"type:text;not null;unique"`
	IDRole   *uuid.UUID `gorm:"type:uuid;column:id_role"`
	Role     *Role      `gorm:"foreignKey:IDRole;references:ID"`
}

func (User) TableName() string { return "users" }
