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

// StudentService handles student accounts, attendance and exam results.
type StudentService struct {
	studentStore StudentStore
	jwtService   *auth.JWTService
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore, jwtService *auth.JWTService) *StudentService {
	return &StudentService{
		studentStore: studentStore,
		jwtService:   jwtService,
	}
}

// Register creates a new student. Roll number uniqueness within the
// school and class is enforced by the store.
func (s *StudentService) Register(ctx context.Context, req *dto.StudentRegisterRequest) (*models.Student, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:     req.Name,
		RollNum:  req.RollNum,
		Password: hashed,
		SclassID: req.SclassID,
		SchoolID: req.AdminID,
		Role:     models.RoleStudent,
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrRollNumTaken) {
			return nil, apperrors.NewDuplicateError("Roll Number already exists")
		}
		logger.Error().Err(err).Int64("schoolId", req.AdminID).Msg("Failed to create student")
		return nil, err
	}

	student.Password = ""
	return student, nil
}

// Login verifies roll number, name and password and returns the account
// with a fresh access token.
func (s *StudentService) Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentLoginResponse, error) {
	student, err := s.studentStore.GetByRollAndName(ctx, req.RollNum, req.StudentName)
	if err != nil {
		logger.Error().Err(err).Int("rollNum", req.RollNum).Msg("Failed to look up student")
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("Student not found")
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.NewInvalidCredentialsError("Invalid password")
	}

	token, err := s.jwtService.GenerateToken(student.ID, student.Role, student.SchoolID)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	student.Password = ""
	return &dto.StudentLoginResponse{Student: *student, Token: token}, nil
}

// ListForSchool retrieves all students of a school without passwords.
func (s *StudentService) ListForSchool(ctx context.Context, schoolID int64) ([]*models.Student, error) {
	students, err := s.studentStore.GetBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to list students")
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.NewNotFoundError("No students found")
	}
	for _, student := range students {
		student.Password = ""
	}
	return students, nil
}

// GetDetail retrieves one student with class, school, attendance and exam
// results resolved.
func (s *StudentService) GetDetail(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("studentId", id).Msg("Failed to retrieve student")
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("No student found")
	}

	student.Password = ""
	return student, nil
}

// Update applies a partial update. A changed roll number goes through the
// same store-enforced uniqueness as registration; a new password is
// re-hashed before storage.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.StudentUpdateRequest) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("studentId", id).Msg("Failed to resolve student for update")
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("Student not found")
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.RollNum != nil {
		student.RollNum = *req.RollNum
	}
	if req.SclassID != nil {
		student.SclassID = *req.SclassID
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		student.Password = hashed
	}

	if err := s.studentStore.Update(ctx, student); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRollNumTaken):
			return nil, apperrors.NewDuplicateError("Roll Number already exists")
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError("Student not found")
		default:
			logger.Error().Err(err).Int64("studentId", id).Msg("Failed to update student")
			return nil, err
		}
	}

	student.Password = ""
	return student, nil
}

// DeleteOne removes one student together with their attendance and exam
// rows (FK cascade on the student id).
func (s *StudentService) DeleteOne(ctx context.Context, id int64) (*models.Student, error) {
	deleted, err := s.studentStore.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("studentId", id).Msg("Failed to delete student")
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NewNotFoundError("No student found to delete")
	}
	return deleted, nil
}

// DeleteAllForSchool removes every student of a school.
func (s *StudentService) DeleteAllForSchool(ctx context.Context, schoolID int64) (int64, error) {
	deleted, err := s.studentStore.DeleteBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to delete school students")
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.NewNotFoundError("No students found to delete")
	}
	return deleted, nil
}

// DeleteAllForClass removes every student of a class.
func (s *StudentService) DeleteAllForClass(ctx context.Context, classID int64) (int64, error) {
	deleted, err := s.studentStore.DeleteByClassID(ctx, classID)
	if err != nil {
		logger.Error().Err(err).Int64("classId", classID).Msg("Failed to delete class students")
		return 0, err
	}
	if deleted == 0 {
		return 0, apperrors.NewNotFoundError("No students found to delete")
	}
	return deleted, nil
}

// RecordAttendance appends one attendance entry. A second entry for the
// same subject and date is rejected; entries for other dates accumulate
// as the subject's attendance history.
func (s *StudentService) RecordAttendance(ctx context.Context, studentID int64, req *dto.AttendanceRequest) (*models.AttendanceEntry, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to resolve student for attendance")
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("Student not found")
	}

	entry := &models.AttendanceEntry{
		StudentID: studentID,
		SubjectID: req.SubjectID,
		Date:      req.Date,
		Status:    req.Status,
	}
	if err := s.studentStore.AddAttendance(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrAttendanceExists) {
			return nil, apperrors.NewDuplicateError("Attendance already taken for this date")
		}
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to record attendance")
		return nil, err
	}

	return entry, nil
}

// UpdateExamResult records one exam mark. At most one result exists per
// subject; a repeated submission replaces the stored mark.
func (s *StudentService) UpdateExamResult(ctx context.Context, studentID int64, req *dto.ExamResultRequest) (*models.ExamResult, error) {
	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to resolve student for exam result")
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("Student not found")
	}

	result := &models.ExamResult{
		StudentID:     studentID,
		SubjectID:     req.SubjectID,
		MarksObtained: req.MarksObtained,
	}
	if err := s.studentStore.UpsertExamResult(ctx, result); err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to record exam result")
		return nil, err
	}

	return result, nil
}

// ClearAttendanceBySubject removes every attendance entry of one subject
// across the school. A zero count is a valid outcome.
func (s *StudentService) ClearAttendanceBySubject(ctx context.Context, subjectID int64) (int64, error) {
	modified, err := s.studentStore.ClearAttendanceBySubject(ctx, subjectID)
	if err != nil {
		logger.Error().Err(err).Int64("subjectId", subjectID).Msg("Failed to clear subject attendance")
		return 0, err
	}
	return modified, nil
}

// ClearAttendanceBySchool removes every attendance entry of a school's
// students.
func (s *StudentService) ClearAttendanceBySchool(ctx context.Context, schoolID int64) (int64, error) {
	modified, err := s.studentStore.ClearAttendanceBySchool(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to clear school attendance")
		return 0, err
	}
	return modified, nil
}

// RemoveAttendanceForSubject removes one student's attendance entries for
// one subject.
func (s *StudentService) RemoveAttendanceForSubject(ctx context.Context, studentID, subjectID int64) (int64, error) {
	modified, err := s.studentStore.RemoveAttendanceBySubject(ctx, studentID, subjectID)
	if err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to remove subject attendance")
		return 0, err
	}
	return modified, nil
}

// RemoveAttendanceAll removes one student's entire attendance history.
func (s *StudentService) RemoveAttendanceAll(ctx context.Context, studentID int64) (int64, error) {
	modified, err := s.studentStore.RemoveAttendance(ctx, studentID)
	if err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to remove attendance")
		return 0, err
	}
	return modified, nil
}
