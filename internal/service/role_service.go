package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blogapi/internal/apperrors"
	"blogapi/internal/cache"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/slugger"
)

const roleCacheTTL = 5 * time.Minute

// RoleService exposes role domain operations.
type RoleService interface {
	ListRoles(ctx context.Context) ([]model.Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (*model.Role, error)
	CreateRole(ctx context.Context, name string) (*model.Role, error)
	// UpdateRole returns (nil, nil) when no role matches id.
	UpdateRole(ctx context.Context, id uuid.UUID, name string) (*model.Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) (*model.Role, error)
}

type roleService struct {
	repo  repository.RoleRepository
	cache *cache.Client
}

// NewRoleService builds a RoleService with repository and cache.
func NewRoleService(repo repository.RoleRepository, cache *cache.Client) RoleService {
	return &roleService{repo: repo, cache: cache}
}

func (s *roleService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("role:%s", id)
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.repo.List(ctx)
}

func (s *roleService) GetRole(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Role
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(role); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, roleCacheTTL)
	}
	return role, nil
}

// CreateRole derives the slug from name and persists the role. The name
// pre-check gives the friendly duplicate error; the unique index settles races.
func (s *roleService) CreateRole(ctx context.Context, name string) (*model.Role, error) {
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, apperrors.ErrRoleNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check role existence: %w", err)
	}

	role := &model.Role{
		Name: name,
		Slug: slugger.Make(name),
	}

	if err := s.repo.Create(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrRoleNameTaken
		}
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

// UpdateRole overwrites name and the recomputed slug, returning the post-update
// record. An unknown id yields (nil, nil), not an error.
func (s *roleService) UpdateRole(ctx context.Context, id uuid.UUID, name string) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	role.Name = name
	role.Slug = slugger.Make(name)

	if err := s.repo.Save(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrRoleNameTaken
		}
		return nil, fmt.Errorf("update role: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return role, nil
}

// DeleteRole removes the role and returns the removed record. Users keep
// whatever role label they reference; nothing cascades.
func (s *roleService) DeleteRole(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete role: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return role, nil
}
