package services

import (
	"context"
	"errors"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
	"github.com/emre/schoolhub/internal/pkg/logger"
)

// SclassService handles class management and the cascade teardown of a
// class's dependents (students, subjects, teachers).
type SclassService struct {
	sclassStore  SclassStore
	studentStore StudentStore
	subjectStore SubjectStore
	teacherStore TeacherStore
}

// NewSclassService creates a new class service instance
func NewSclassService(sclassStore SclassStore, studentStore StudentStore, subjectStore SubjectStore, teacherStore TeacherStore) *SclassService {
	return &SclassService{
		sclassStore:  sclassStore,
		studentStore: studentStore,
		subjectStore: subjectStore,
		teacherStore: teacherStore,
	}
}

// Create adds a class for the admin's school. The per-school name
// uniqueness is enforced by the store.
func (s *SclassService) Create(ctx context.Context, req *dto.SclassCreateRequest) (*models.Sclass, error) {
	sclass := &models.Sclass{
		SclassName: req.SclassName,
		SchoolID:   req.AdminID,
	}

	if err := s.sclassStore.Create(ctx, sclass); err != nil {
		if errors.Is(err, apperrors.ErrClassNameTaken) {
			return nil, apperrors.NewDuplicateError("Sorry this class name already exists")
		}
		logger.Error().Err(err).Int64("schoolId", req.AdminID).Msg("Failed to create class")
		return nil, err
	}

	return sclass, nil
}

// List retrieves all classes of a school with the owner name resolved.
func (s *SclassService) List(ctx context.Context, schoolID int64) ([]*models.Sclass, error) {
	sclasses, err := s.sclassStore.GetBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to list classes")
		return nil, err
	}
	if len(sclasses) == 0 {
		return nil, apperrors.NewNotFoundError("No sclasses found")
	}
	return sclasses, nil
}

// GetDetail retrieves one class.
func (s *SclassService) GetDetail(ctx context.Context, id int64) (*models.Sclass, error) {
	sclass, err := s.sclassStore.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("classId", id).Msg("Failed to retrieve class")
		return nil, err
	}
	if sclass == nil {
		return nil, apperrors.NewNotFoundError("No class found")
	}
	return sclass, nil
}

// ListStudents retrieves the students enrolled in one class.
func (s *SclassService) ListStudents(ctx context.Context, classID int64) ([]*models.Student, error) {
	students, err := s.studentStore.GetByClassID(ctx, classID)
	if err != nil {
		logger.Error().Err(err).Int64("classId", classID).Msg("Failed to list class students")
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

// DeleteOne resolves the class, tears down its dependents and finally
// removes the class row. An absent class performs no cascade. Dependent
// stores are torn down first so no row keeps a reference to the class.
func (s *SclassService) DeleteOne(ctx context.Context, id int64) (*models.Sclass, *CascadeOutcome, error) {
	sclass, err := s.sclassStore.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("classId", id).Msg("Failed to resolve class for deletion")
		return nil, nil, err
	}
	if sclass == nil {
		return nil, nil, apperrors.NewNotFoundError("Class not found")
	}

	outcome := &CascadeOutcome{}
	err = runCascade(outcome, []cascadeStep{
		{store: "students", count: &outcome.StudentsDeleted, run: func() (int64, error) {
			return s.studentStore.DeleteByClassID(ctx, id)
		}},
		{store: "teachers", run: func() (int64, error) {
			return s.teacherStore.UnassignSubjectsByClass(ctx, id)
		}},
		{store: "subjects", run: func() (int64, error) {
			return s.subjectStore.UnassignTeachersByClass(ctx, id)
		}},
		{store: "subjects", count: &outcome.SubjectsDeleted, run: func() (int64, error) {
			return s.subjectStore.DeleteByClassID(ctx, id)
		}},
		{store: "teachers", count: &outcome.TeachersDeleted, run: func() (int64, error) {
			return s.teacherStore.DeleteByClassID(ctx, id)
		}},
	})
	if err != nil {
		return nil, outcome, err
	}

	deleted, err := s.sclassStore.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("classId", id).Msg("Failed to delete class after cascade")
		return nil, outcome, err
	}
	if deleted == nil {
		return nil, outcome, apperrors.NewNotFoundError("Class not found")
	}

	logger.Info().Int64("classId", id).
		Int64("students", outcome.StudentsDeleted).
		Int64("subjects", outcome.SubjectsDeleted).
		Int64("teachers", outcome.TeachersDeleted).
		Msg("Class deleted with dependents")
	return deleted, outcome, nil
}

// DeleteAllForSchool removes every class of a school together with the
// school's students, subjects and teachers. A school with no classes
// performs no cascade.
func (s *SclassService) DeleteAllForSchool(ctx context.Context, schoolID int64) (int64, *CascadeOutcome, error) {
	sclasses, err := s.sclassStore.GetBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to resolve classes for deletion")
		return 0, nil, err
	}
	if len(sclasses) == 0 {
		return 0, nil, apperrors.NewNotFoundError("No classes found to delete")
	}

	outcome := &CascadeOutcome{}
	err = runCascade(outcome, []cascadeStep{
		{store: "students", count: &outcome.StudentsDeleted, run: func() (int64, error) {
			return s.studentStore.DeleteBySchoolID(ctx, schoolID)
		}},
		{store: "teachers", run: func() (int64, error) {
			return s.teacherStore.UnassignSubjectsBySchool(ctx, schoolID)
		}},
		{store: "subjects", run: func() (int64, error) {
			return s.subjectStore.UnassignTeachersBySchool(ctx, schoolID)
		}},
		{store: "subjects", count: &outcome.SubjectsDeleted, run: func() (int64, error) {
			return s.subjectStore.DeleteBySchoolID(ctx, schoolID)
		}},
		{store: "teachers", count: &outcome.TeachersDeleted, run: func() (int64, error) {
			return s.teacherStore.DeleteBySchoolID(ctx, schoolID)
		}},
	})
	if err != nil {
		return 0, outcome, err
	}

	deleted, err := s.sclassStore.DeleteBySchoolID(ctx, schoolID)
	if err != nil {
		logger.Error().Err(err).Int64("schoolId", schoolID).Msg("Failed to delete classes after cascade")
		return 0, outcome, err
	}

	logger.Info().Int64("schoolId", schoolID).Int64("classes", deleted).
		Int64("students", outcome.StudentsDeleted).
		Int64("subjects", outcome.SubjectsDeleted).
		Int64("teachers", outcome.TeachersDeleted).
		Msg("School classes deleted with dependents")
	return deleted, outcome, nil
}
