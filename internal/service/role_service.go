package service

import (
	"context"
	"errors"

	"github.com/jpstorm21/graphql-api/internal/apierror"
	"github.com/jpstorm21/graphql-api/internal/dto"
	"github.com/jpstorm21/graphql-api/internal/model"
	"github.com/jpstorm21/graphql-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService defines the business operations for the role lifecycle.
type RoleService interface {
	GetRoles(ctx context.Context) ([]dto.RoleResponse, error)
	GetRoleByID(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error)
	GetRoleByName(ctx context.Context, name string) (*dto.RoleResponse, error)
	CreateRole(ctx context.Context, req dto.RoleData) (*dto.RoleResponse, error)
	EditRole(ctx context.Context, id uuid.UUID, req dto.RoleData) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error)
}

type roleService struct {
	repo repository.RoleRepository
}

func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func mapRole(r model.Role) dto.RoleResponse {
	return dto.RoleResponse{ID: r.ID.String(), Name: r.Name}
}

func (s *roleService) GetRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, mapRole(r))
	}
	return resp, nil
}

// GetRoleByID returns nil without error when no role matches; storage
// failures propagate unchanged.
func (s *roleService) GetRoleByID(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := mapRole(*role)
	return &resp, nil
}

func (s *roleService) GetRoleByName(ctx context.Context, name string) (*dto.RoleResponse, error) {
	role, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := mapRole(*role)
	return &resp, nil
}

func (s *roleService) CreateRole(ctx context.Context, req dto.RoleData) (*dto.RoleResponse, error) {
	if req.Name == nil || *req.Name == "" {
		return nil, apierror.Validationf("name is undefined")
	}

	existing, err := s.repo.FindByName(ctx, *req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflictf("role with name %s exists", *req.Name)
	}

	role := &model.Role{Name: req.Name}
	if err := s.repo.Create(ctx, role); err != nil {
		// The advisory check above is racy; the UNIQUE constraint on name is
		// the real enforcement and its violation is reported the same way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflictf("role with name %s exists", *req.Name)
		}
		return nil, err
	}

	resp := mapRole(*role)
	return &resp, nil
}

func (s *roleService) EditRole(ctx context.Context, id uuid.UUID, req dto.RoleData) (*dto.RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFoundf("role with id=%s does not exist", id)
		}
		return nil, err
	}

	if req.Name == nil || *req.Name == "" {
		return nil, apierror.Validationf("name is undefined")
	}

	existing, err := s.repo.FindByName(ctx, *req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, apierror.Conflictf("role with name %s exists", *req.Name)
	}

	role.Name = req.Name
	if err := s.repo.Update(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflictf("role with name %s exists", *req.Name)
		}
		return nil, err
	}

	resp := mapRole(*role)
	return &resp, nil
}

// DeleteRole removes the role and returns the removed record. The users FK is
// NO ACTION, so deleting a role that users still reference fails at the store
// and surfaces as an opaque storage error.
func (s *roleService) DeleteRole(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFoundf("role with id=%s does not exist", id)
		}
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	resp := mapRole(*role)
	return &resp, nil
}
