package services

import (
	"context"
	"errors"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
	"github.com/emre/schoolhub/internal/pkg/logger"
)

// SubjectService handles subject management. Deletions keep attendance
// and exam history intact and only detach teacher assignments.
type SubjectService struct {
	subjectStore SubjectStore
	teacherStore TeacherStore
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectStore SubjectStore, teacherStore TeacherStore) *SubjectService {
	return &SubjectService{
		subjectStore: subjectStore,
		teacherStore: teacherStore,
	}
}

// CreateBatch inserts all subjects of the request atomically. A code
// collision with an existing subject of the school, or between two
// subjects inside the batch, rejects the whole batch.
func (s *SubjectService) CreateBatch(ctx context.Context, req *dto.SubjectCreateRequest) ([]*models.Subject, error) {
	subjects := make([]*models.Subject, 0, len(req.Subjects))
	for _, input := range req.Subjects {
		subjects = append(subjects, &models.Subject{
			SubName:  input.SubName,
			SubCode:  input.SubCode,
			Sessions: input.Sessions,
			SclassID: req.SclassID,
			SchoolID: req.AdminID,
		})
	}

	if err := s.subjectStore.CreateBatch(ctx, subjects); err != nil {
		if errors.Is(err, apperrors.ErrSubCodeTaken) {
			return nil, apperrors.NewDuplicateError("Sorry this subcode must be unique as it already exists")
		}
		logger.Error().Err(err).Int64("schoolId", req.AdminID).Msg("Failed to create subjects")
		return nil, err
	}

	return subjects, nil
}

// ListForSchool retrieves all subjects of a school.
func (s *SubjectService) ListForSchool(ctx context.Context, schoolID int64) ([]*models.Subject, error) {
	subjects, err := s.subjectStore.GetBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to list subjects")
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, apperrors.NewNotFoundError("No subjects found")
	}
	return subjects, nil
}

// ListForClass retrieves all subjects of a class.
func (s *SubjectService) ListForClass(ctx context.Context, classID int64) ([]*models.Subject, error) {
	subjects, err := s.subjectStore.GetByClassID(ctx, classID)
	if err != nil {
		logger.Error().Err(err).Int64("classId", classID).Msg("Failed to list class subjects")
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, apperrors.NewNotFoundError("No subjects found")
	}
	return subjects, nil
}

// ListFreeForClass retrieves the class subjects with no teacher assigned.
func (s *SubjectService) ListFreeForClass(ctx context.Context, classID int64) ([]*models.Subject, error) {
	subjects, err := s.subjectStore.GetFreeByClassID(ctx, classID)
	if err != nil {
		logger.Error().Err(err).Int64("classId", classID).Msg("Failed to list free class subjects")
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, apperrors.NewNotFoundError("No subjects found")
	}
	return subjects, nil
}

// GetDetail retrieves one subject with class and teacher resolved.
func (s *SubjectService) GetDetail(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectStore.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("subjectId", id).Msg("Failed to retrieve subject")
		return nil, err
	}
	if subject == nil {
		return nil, apperrors.NewNotFoundError("No subject found")
	}
	return subject, nil
}

// DeleteOne detaches the subject from any teacher teaching it, then
// removes it. Attendance and exam rows referencing it are left intact.
func (s *SubjectService) DeleteOne(ctx context.Context, id int64) (*models.Subject, error) {
	if _, err := s.teacherStore.UnassignSubject(ctx, id); err != nil {
		logger.Error().Err(err).Int64("subjectId", id).Msg("Failed to unassign subject from teachers")
		return nil, err
	}

	deleted, err := s.subjectStore.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("subjectId", id).Msg("Failed to delete subject")
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFoundError("Subject not found")
	}
	return deleted, nil
}

// DeleteAllForClass removes all subjects of a class after detaching their
// teachers.
func (s *SubjectService) DeleteAllForClass(ctx context.Context, classID int64) (int64, error) {
	if _, err := s.teacherStore.UnassignSubjectsByClass(ctx, classID); err != nil {
		logger.Error().Err(err).Int64("classId", classID).Msg("Failed to unassign class subjects from teachers")
		return 0, err
	}

	deleted, err := s.subjectStore.DeleteByClassID(ctx, classID)
	if err != nil {
		logger.Error().Err(err).Int64("classId", classID).Msg("Failed to delete class subjects")
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.NewNotFoundError("No subjects found to delete")
	}
	return deleted, nil
}

// DeleteAllForSchool removes all subjects of a school after detaching
// their teachers.
func (s *SubjectService) DeleteAllForSchool(ctx context.Context, schoolID int64) (int64, error) {
	if _, err := s.teacherStore.UnassignSubjectsBySchool(ctx, schoolID); err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to unassign school subjects from teachers")
		return 0, err
	}

	deleted, err := s.subjectStore.DeleteBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to delete school subjects")
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.NewNotFoundError("No subjects found to delete")
	}
	return deleted, nil
}
