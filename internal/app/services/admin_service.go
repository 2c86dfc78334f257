package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
	"github.com/emre/schoolhub/internal/pkg/auth"
	"github.com/emre/schoolhub/internal/pkg/logger"
)

// AdminService handles school owner registration, login and lookup.
type AdminService struct {
	adminStore AdminStore
	jwtService *auth.JWTService
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminStore AdminStore, jwtService *auth.JWTService) *AdminService {
	return &AdminService{
		adminStore: adminStore,
		jwtService: jwtService,
	}
}

// Register creates a new admin account. Email and school name uniqueness
// are enforced by the store; the hashed password never leaves the service.
func (s *AdminService) Register(ctx context.Context, req *dto.AdminRegisterRequest) (*models.Admin, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.Admin{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		SchoolName: req.SchoolName,
		Role:       models.RoleAdmin,
	}

	if err := s.adminStore.Create(ctx, admin); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmailTaken):
			return nil, apperrors.NewDuplicateError("Email already exists")
		case errors.Is(err, apperrors.ErrSchoolNameTaken):
			return nil, apperrors.NewDuplicateError("School name already exists")
		default:
			logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create admin")
			return nil, err
		}
	}

	admin.Password = ""
	return admin, nil
}

// Login verifies the credentials and returns the account with a fresh
// access token.
func (s *AdminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	admin, err := s.adminStore.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error().Err(err).Str("email", req.Email).Msg("Failed to look up admin")
		return nil, err
	}
	if admin == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.NewInvalidCredentialsError("Invalid password")
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Role, admin.ID)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	admin.Password = ""
	return &dto.AdminLoginResponse{Admin: *admin, Token: token}, nil
}

// GetDetail retrieves one admin account without the password.
func (s *AdminService) GetDetail(ctx context.Context, id int64) (*models.Admin, error) {
	admin, err := s.adminStore.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("adminId", id).Msg("Failed to retrieve admin")
		return nil, err
	}
	if admin == nil {
		return nil, apperrors.NewNotFoundError("No admin found")
	}

	admin.Password = ""
	return admin, nil
}
