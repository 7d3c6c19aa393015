package service

import (
	"context"
	"errors"

	"github.com/lokavera/catalog-admin/internal/dto"
	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/internal/repository"
	"github.com/lokavera/catalog-admin/pkg/apperror"
	"github.com/lokavera/catalog-admin/pkg/hash"
	"github.com/lokavera/catalog-admin/pkg/token"
)

// The same message covers unknown email and wrong password so a caller
// cannot probe which emails are registered.
const invalidCredentials = "invalid credentials"

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	repo   repository.UserRepository
	issuer *token.Issuer
}

func NewAuthService(repo repository.UserRepository, issuer *token.Issuer) AuthService {
	return &authService{repo: repo, issuer: issuer}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Conflict("user with this email already exists")
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	// Hashing happens here, not in a persistence hook, so the step is
	// visible and testable on its own.
	digest, err := hash.Password(req.Password)
	if err != nil {
		return nil, err
	}

	roles := model.RoleList(req.Roles)
	if len(roles) == 0 {
		roles = model.RoleList{model.RoleUser}
	}

	user := &model.User{
		Email:     req.Email,
		Password:  digest,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
		Roles:     roles,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Conflict("user with this email already exists")
		}
		return nil, err
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, err
	}

	if !hash.Verify(req.Password, user.Password) {
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	if !user.IsActive {
		return nil, apperror.Unauthorized("account is deactivated")
	}

	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *model.User) (*dto.AuthResponse, error) {
	signed, expiresAt, err := s.issuer.Issue(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, err
	}

	user.Password = ""

	return &dto.AuthResponse{
		User:        user,
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
	}, nil
}
