package services

import (
	"context"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
	"github.com/emre/schoolhub/internal/pkg/logger"
)

// ComplainService handles complaint submission and listing.
type ComplainService struct {
	complainStore ComplainStore
}

// NewComplainService creates a new complain service instance
func NewComplainService(complainStore ComplainStore) *ComplainService {
	return &ComplainService{complainStore: complainStore}
}

// Create records a complaint against the school.
func (s *ComplainService) Create(ctx context.Context, req *dto.ComplainCreateRequest) (*models.Complain, error) {
	complain := &models.Complain{
		UserID:      req.UserID,
		Date:        req.Date,
		Description: req.Description,
		SchoolID:    req.SchoolID,
	}

	if err := s.complainStore.Create(ctx, complain); err != nil {
		logger.Error().Err(err).Int64("schoolId", req.SchoolID).Msg("Failed to create complain")
		return nil, err
	}
	return complain, nil
}

// List retrieves all complaints of a school.
func (s *ComplainService) List(ctx context.Context, schoolID int64) ([]*models.Complain, error) {
	complains, err := s.complainStore.GetBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to list complains")
		return nil, err
	}
	if len(complains) == 0 {
		return nil, apperrors.NewNotFoundError("No complains found")
	}
	return complains, nil
}
