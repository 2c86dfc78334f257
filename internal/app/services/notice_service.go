package services

import (
	"context"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
	"github.com/emre/schoolhub/internal/pkg/logger"
)

// NoticeService handles school notice management.
type NoticeService struct {
	noticeStore NoticeStore
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(noticeStore NoticeStore) *NoticeService {
	return &NoticeService{noticeStore: noticeStore}
}

// Create adds a notice for the admin's school.
func (s *NoticeService) Create(ctx context.Context, req *dto.NoticeCreateRequest) (*models.Notice, error) {
	notice := &models.Notice{
		Title:    req.Title,
		Details:  req.Details,
		Date:     req.Date,
		SchoolID: req.AdminID,
	}

	if err := s.noticeStore.Create(ctx, notice); err != nil {
		logger.Error().Err(err).Int64("schoolId", req.AdminID).Msg("Failed to create notice")
		return nil, err
	}
	return notice, nil
}

// List retrieves all notices of a school.
func (s *NoticeService) List(ctx context.Context, schoolID int64) ([]*models.Notice, error) {
	notices, err := s.noticeStore.GetBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to list notices")
		return nil, err
	}
	if len(notices) == 0 {
		return nil, apperrors.NewNotFoundError("No notices found")
	}
	return notices, nil
}

// Update replaces the notice fields.
func (s *NoticeService) Update(ctx context.Context, id int64, req *dto.NoticeUpdateRequest) (*models.Notice, error) {
	notice := &models.Notice{
		ID:      id,
		Title:   req.Title,
		Details: req.Details,
		Date:    req.Date,
	}

	updated, err := s.noticeStore.Update(ctx, notice)
	if err != nil {
		logger.Error().Err(err).Int64("noticeId", id).Msg("Failed to update notice")
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewNotFoundError("Notice not found")
	}
	return updated, nil
}

// DeleteOne removes one notice.
func (s *NoticeService) DeleteOne(ctx context.Context, id int64) (*models.Notice, error) {
	deleted, err := s.noticeStore.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("noticeId", id).Msg("Failed to delete notice")
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFoundError("Notice not found")
	}
	return deleted, nil
}

// DeleteAllForSchool removes every notice of a school.
func (s *NoticeService) DeleteAllForSchool(ctx context.Context, schoolID int64) (int64, error) {
	deleted, err := s.noticeStore.DeleteBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to delete notices")
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.NewNotFoundError("No notices found to delete")
	}
	return deleted, nil
}
