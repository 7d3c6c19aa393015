package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lokavera/catalog-admin/internal/dto"
	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/internal/repository"
	"github.com/lokavera/catalog-admin/pkg/apperror"
	"github.com/lokavera/catalog-admin/pkg/hash"
)

type UserService interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, req dto.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) FindAll(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

func (s *userService) FindOne(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("user with id %s not found", id))
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Update lets users edit their own record and admins edit anyone. A
// non-admin's roles field is dropped silently while the rest of the patch
// applies, so self-service updates can never grant new roles.
func (s *userService) Update(ctx context.Context, actor *model.User, id uuid.UUID, req dto.UpdateUserRequest) (*model.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, apperror.Forbidden("you can only update your own profile")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("user with id %s not found", id))
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, apperror.Conflict("email already in use")
		} else if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		digest, err := hash.Password(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = digest
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsActive != nil && actor.IsAdmin() {
		user.IsActive = *req.IsActive
	}
	if len(req.Roles) > 0 && actor.IsAdmin() {
		user.Roles = model.RoleList(req.Roles)
	}

	if err := s.repo.Save(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Conflict("email already in use")
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.NotFound(fmt.Sprintf("user with id %s not found", id))
		}
		return err
	}
	return nil
}
