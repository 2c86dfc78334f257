package inmem

import (
	"context"
	"sort"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
)

// TeacherStore is the in-memory teacher table.
type TeacherStore struct {
	db *DB
}

var _ services.TeacherStore = (*TeacherStore)(nil)

// NewTeacherStore creates a teacher store on the shared database.
func NewTeacherStore(db *DB) *TeacherStore {
	return &TeacherStore{db: db}
}

func (s *TeacherStore) Create(ctx context.Context, teacher *models.Teacher) error {
	s.db.Lock()
	defer s.db.Unlock()

	for _, existing := range s.db.teachers {
		if existing.Email == teacher.Email {
			return apperrors.ErrEmailTaken
		}
	}

	teacher.ID = s.db.nextID()
	stored := *teacher
	stored.TeachSubject = nil
	stored.TeachSclass = nil
	stored.School = nil
	s.db.teachers[teacher.ID] = &stored
	return nil
}

func (s *TeacherStore) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	for _, teacher := range s.db.teachers {
		if teacher.Email == email {
			copied := *teacher
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *TeacherStore) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	teacher, ok := s.db.teachers[id]
	if !ok {
		return nil, nil
	}
	copied := *teacher
	if sclass, ok := s.db.sclasses[teacher.TeachSclassID]; ok {
		copied.TeachSclass = &models.ClassInfo{ID: sclass.ID, SclassName: sclass.SclassName}
	}
	if admin, ok := s.db.admins[teacher.SchoolID]; ok {
		copied.School = &models.SchoolInfo{ID: admin.ID, SchoolName: admin.SchoolName}
	}
	if teacher.TeachSubjectID != nil {
		if subject, ok := s.db.subjects[*teacher.TeachSubjectID]; ok {
			copied.TeachSubject = &models.SubjectInfo{ID: subject.ID, SubName: subject.SubName, Sessions: subject.Sessions}
		}
	}
	return &copied, nil
}

func (s *TeacherStore) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Teacher, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	var teachers []*models.Teacher
	for _, teacher := range s.db.teachers {
		if teacher.SchoolID != schoolID {
			continue
		}
		copied := *teacher
		copied.Password = ""
		if sclass, ok := s.db.sclasses[teacher.TeachSclassID]; ok {
			copied.TeachSclass = &models.ClassInfo{ID: sclass.ID, SclassName: sclass.SclassName}
		}
		teachers = append(teachers, &copied)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (s *TeacherStore) AssignSubject(ctx context.Context, teacherID, subjectID int64) error {
	s.db.Lock()
	defer s.db.Unlock()

	teacher, ok := s.db.teachers[teacherID]
	if !ok {
		return apperrors.ErrNotFound
	}
	subject, ok := s.db.subjects[subjectID]
	if !ok {
		return apperrors.ErrNotFound
	}

	teacher.TeachSubjectID = &subjectID
	subject.TeacherID = &teacherID
	return nil
}

func (s *TeacherStore) UnassignSubject(ctx context.Context, subjectID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for _, teacher := range s.db.teachers {
		if teacher.TeachSubjectID != nil && *teacher.TeachSubjectID == subjectID {
			teacher.TeachSubjectID = nil
			modified++
		}
	}
	return modified, nil
}

func (s *TeacherStore) UnassignSubjectsByClass(ctx context.Context, classID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for _, teacher := range s.db.teachers {
		if teacher.TeachSubjectID == nil {
			continue
		}
		subject, ok := s.db.subjects[*teacher.TeachSubjectID]
		if ok && subject.SclassID == classID {
			teacher.TeachSubjectID = nil
			modified++
		}
	}
	return modified, nil
}

func (s *TeacherStore) UnassignSubjectsBySchool(ctx context.Context, schoolID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for _, teacher := range s.db.teachers {
		if teacher.TeachSubjectID == nil {
			continue
		}
		subject, ok := s.db.subjects[*teacher.TeachSubjectID]
		if ok && subject.SchoolID == schoolID {
			teacher.TeachSubjectID = nil
			modified++
		}
	}
	return modified, nil
}

func (s *TeacherStore) Delete(ctx context.Context, id int64) (*models.Teacher, error) {
	s.db.Lock()
	defer s.db.Unlock()

	teacher, ok := s.db.teachers[id]
	if !ok {
		return nil, nil
	}
	delete(s.db.teachers, id)
	copied := *teacher
	copied.Password = ""
	return &copied, nil
}

func (s *TeacherStore) DeleteByClassID(ctx context.Context, classID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var deleted int64
	for id, teacher := range s.db.teachers {
		if teacher.TeachSclassID == classID {
			delete(s.db.teachers, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *TeacherStore) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var deleted int64
	for id, teacher := range s.db.teachers {
		if teacher.SchoolID == schoolID {
			delete(s.db.teachers, id)
			deleted++
		}
	}
	return deleted, nil
}
