package repository

import (
	"context"

	"github.com/jpstorm21/graphql-api/internal/model"

	"gorm.io/gorm"
)

// UserRepository defines the data access contract for users. List and
// FindByRut preload the role relation: callers always see the composed
// User+Role shape, there is no lazy loading anywhere else.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	List(ctx context.Context) ([]model.User, error)
	FindByRut(ctx context.Context, rut string) (*model.User, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Preload("Role").Find(&users).Error
	return users, err
}

func (r *userRepo) FindByRut(ctx context.Context, rut string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Role").Where("rut = ?", rut).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
