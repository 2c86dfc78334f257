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

// TeacherService handles teacher accounts and the two-sided subject
// assignment.
type TeacherService struct {
	teacherStore TeacherStore
	subjectStore SubjectStore
	jwtService   *auth.JWTService
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherStore TeacherStore, subjectStore SubjectStore, jwtService *auth.JWTService) *TeacherService {
	return &TeacherService{
		teacherStore: teacherStore,
		subjectStore: subjectStore,
		jwtService:   jwtService,
	}
}

// Register creates a new teacher. Email uniqueness is store-enforced.
// When the request names a subject, both assignment sides are set in one
// transaction after the account exists.
func (s *TeacherService) Register(ctx context.Context, req *dto.TeacherRegisterRequest) (*models.Teacher, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	teacher := &models.Teacher{
		Name:          req.Name,
		Email:         req.Email,
		Password:      hashed,
		Role:          models.RoleTeacher,
		SchoolID:      req.SchoolID,
		TeachSclassID: req.TeachSclassID,
	}

	if err := s.teacherStore.Create(ctx, teacher); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return nil, apperrors.NewDuplicateError("Email already exists")
		}
		logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create teacher")
		return nil, err
	}

	if req.TeachSubjectID != nil {
		if err := s.teacherStore.AssignSubject(ctx, teacher.ID, *req.TeachSubjectID); err != nil {
			logger.Error().Err(err).Int64("teacherId", teacher.ID).Msg("Failed to assign subject at registration")
			return nil, err
		}
		teacher.TeachSubjectID = req.TeachSubjectID
	}

	teacher.Password = ""
	return teacher, nil
}

// Login verifies the credentials and returns the account with a fresh
// access token.
func (s *TeacherService) Login(ctx context.Context, req *dto.TeacherLoginRequest) (*dto.TeacherLoginResponse, error) {
	teacher, err := s.teacherStore.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error().Err(err).Str("email", req.Email).Msg("Failed to look up teacher")
		return nil, err
	}
	if teacher == nil {
		return nil, apperrors.NewNotFoundError("Teacher not found")
	}

	if !auth.CheckPassword(teacher.Password, req.Password) {
		return nil, apperrors.NewInvalidCredentialsError("Invalid password")
	}

	token, err := s.jwtService.GenerateToken(teacher.ID, teacher.Role, teacher.SchoolID)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	teacher.Password = ""
	return &dto.TeacherLoginResponse{Teacher: *teacher, Token: token}, nil
}

// List retrieves all teachers of a school without passwords.
func (s *TeacherService) List(ctx context.Context, schoolID int64) ([]*models.Teacher, error) {
	teachers, err := s.teacherStore.GetBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to list teachers")
		return nil, err
	}
	if len(teachers) == 0 {
		return nil, apperrors.NewNotFoundError("No teachers found")
	}
	for _, teacher := range teachers {
		teacher.Password = ""
	}
	return teachers, nil
}

// GetDetail retrieves one teacher with subject, class and school names
// resolved.
func (s *TeacherService) GetDetail(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherStore.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("teacherId", id).Msg("Failed to retrieve teacher")
		return nil, err
	}
	if teacher == nil {
		return nil, apperrors.NewNotFoundError("No teacher found")
	}

	teacher.Password = ""
	return teacher, nil
}

// AssignSubject sets the subject on the teacher and the teacher on the
// subject in one transaction.
func (s *TeacherService) AssignSubject(ctx context.Context, teacherID, subjectID int64) (*models.Teacher, error) {
	subject, err := s.subjectStore.GetByID(ctx, subjectID)
	if err != nil {
		logger.Error().Err(err).Int64("subjectId", subjectID).Msg("Failed to resolve subject for assignment")
		return nil, err
	}
	if subject == nil {
		return nil, apperrors.NewNotFoundError("No subject found")
	}

	if err := s.teacherStore.AssignSubject(ctx, teacherID, subjectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Teacher not found")
		}
		logger.Error().Err(err).Int64("teacherId", teacherID).Msg("Failed to assign subject")
		return nil, err
	}

	return s.GetDetail(ctx, teacherID)
}

// DeleteOne removes one teacher after detaching them from any subject
// they teach.
func (s *TeacherService) DeleteOne(ctx context.Context, id int64) (*models.Teacher, error) {
	if _, err := s.subjectStore.UnassignTeacher(ctx, id); err != nil {
		logger.Error().Err(err).Int64("teacherId", id).Msg("Failed to unassign teacher from subjects")
		return nil, err
	}

	deleted, err := s.teacherStore.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("teacherId", id).Msg("Failed to delete teacher")
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFoundError("Teacher not found")
	}
	return deleted, nil
}

// DeleteAllForSchool removes every teacher of a school after detaching
// them from their subjects.
func (s *TeacherService) DeleteAllForSchool(ctx context.Context, schoolID int64) (int64, error) {
	if _, err := s.subjectStore.UnassignTeachersBySchool(ctx, schoolID); err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to unassign school teachers from subjects")
		return 0, err
	}

	deleted, err := s.teacherStore.DeleteBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to delete school teachers")
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.NewNotFoundError("No teachers found to delete")
	}
	return deleted, nil
}

// DeleteAllForClass removes every teacher assigned to a class after
// detaching them from their subjects.
func (s *TeacherService) DeleteAllForClass(ctx context.Context, classID int64) (int64, error) {
	if _, err := s.subjectStore.UnassignTeachersByClass(ctx, classID); err != nil {
		logger.Error().Err(err).Int64("classId", classID).Msg("Failed to unassign class teachers from subjects")
		return 0, err
	}

	deleted, err := s.teacherStore.DeleteByClassID(ctx, classID)
	if err != nil {
		logger.Error().Err(err).Int64("classId", classID).Msg("Failed to delete class teachers")
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.NewNotFoundError("No teachers found to delete")
	}
	return deleted, nil
}
