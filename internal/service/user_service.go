package service

import (
	"context"
	"errors"

	"github.com/jpstorm21/graphql-api/internal/apierror"
	"github.com/jpstorm21/graphql-api/internal/dto"
	"github.com/jpstorm21/graphql-api/internal/hash"
	"github.com/jpstorm21/graphql-api/internal/model"
	"github.com/jpstorm21/graphql-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UserService defines the business operations for the user lifecycle.
// Users are only created and listed; there is no update or delete.
type UserService interface {
	GetUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUserByRut(ctx context.Context, rut string) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req dto.UserData) (*dto.UserResponse, error)
}

type userService struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
	hasher   hash.PasswordHasher
}

func NewUserService(repo repository.UserRepository, roleRepo repository.RoleRepository, hasher hash.PasswordHasher) UserService {
	return &userService{repo: repo, roleRepo: roleRepo, hasher: hasher}
}

func mapUser(u model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:       u.ID.String(),
		Name:     u.Name,
		Rut:      u.Rut,
		Password: u.Password,
		Email:    u.Email,
	}
	if u.Role != nil {
		role := mapRole(*u.Role)
		resp.Role = &role
	}
	return resp
}

func (s *userService) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	log.Debug().Msg("fetching users")
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, mapUser(u))
	}
	return resp, nil
}

// GetUserByRut returns nil without error when no user matches; storage
// failures propagate unchanged.
func (s *userService) GetUserByRut(ctx context.Context, rut string) (*dto.UserResponse, error) {
	user, err := s.repo.FindByRut(ctx, rut)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := mapUser(*user)
	return &resp, nil
}

// CreateUser validates field presence in a fixed order, enforces rut
// uniqueness, resolves the role, hashes the password once and persists.
// The returned user is re-fetched by rut so store-populated columns (the
// generated id) are visible to the caller.
func (s *userService) CreateUser(ctx context.Context, req dto.UserData) (*dto.UserResponse, error) {
	log.Debug().Str("rut", req.Rut).Msg("creating user")

	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"rut", req.Rut},
		{"password", req.Password},
		{"email", req.Email},
	} {
		if f.value == "" {
			return nil, apierror.Validationf("%s is undefined", f.name)
		}
	}

	existing, err := s.GetUserByRut(ctx, req.Rut)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflictf("user with rut %s exists", req.Rut)
	}

	roleID, err := uuid.Parse(req.IDRole)
	if err != nil {
		return nil, apierror.NotFoundf("role with id=%s does not exist", req.IDRole)
	}
	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFoundf("role with id=%s does not exist", req.IDRole)
		}
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Password: passwordHash,
		Email:    req.Email,
		Rut:      req.Rut,
		IDRole:   &role.ID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// Backstop for the advisory rut check: the UNIQUE constraint reports
		// a concurrent duplicate as the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflictf("user with rut %s exists", req.Rut)
		}
		return nil, err
	}

	return s.GetUserByRut(ctx, req.Rut)
}
