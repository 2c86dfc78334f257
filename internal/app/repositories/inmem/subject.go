package inmem

import (
	"context"
	"sort"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
)

// SubjectStore is the in-memory subject table.
type SubjectStore struct {
	db *DB
}

var _ services.SubjectStore = (*SubjectStore)(nil)

// NewSubjectStore creates a subject store on the shared database.
func NewSubjectStore(db *DB) *SubjectStore {
	return &SubjectStore{db: db}
}

// CreateBatch inserts all subjects or none: every code is checked against
// the school's existing subjects and against the rest of the batch before
// the first row lands.
func (s *SubjectStore) CreateBatch(ctx context.Context, subjects []*models.Subject) error {
	s.db.Lock()
	defer s.db.Unlock()

	seen := make(map[string]bool)
	for _, subject := range subjects {
		if seen[subject.SubCode] {
			return apperrors.ErrSubCodeTaken
		}
		seen[subject.SubCode] = true
		for _, existing := range s.db.subjects {
			if existing.SchoolID == subject.SchoolID && existing.SubCode == subject.SubCode {
				return apperrors.ErrSubCodeTaken
			}
		}
	}

	for _, subject := range subjects {
		subject.ID = s.db.nextID()
		stored := *subject
		stored.SclassName = nil
		stored.Teacher = nil
		s.db.subjects[subject.ID] = &stored
	}
	return nil
}

// classInfo resolves the class reference. Caller holds a lock.
func (s *SubjectStore) classInfo(classID int64) *models.ClassInfo {
	if sclass, ok := s.db.sclasses[classID]; ok {
		return &models.ClassInfo{ID: sclass.ID, SclassName: sclass.SclassName}
	}
	return nil
}

func (s *SubjectStore) list(match func(*models.Subject) bool) []*models.Subject {
	var subjects []*models.Subject
	for _, subject := range s.db.subjects {
		if !match(subject) {
			continue
		}
		copied := *subject
		copied.SclassName = s.classInfo(subject.SclassID)
		subjects = append(subjects, &copied)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects
}

func (s *SubjectStore) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Subject, error) {
	s.db.RLock()
	defer s.db.RUnlock()
	return s.list(func(subject *models.Subject) bool { return subject.SchoolID == schoolID }), nil
}

func (s *SubjectStore) GetByClassID(ctx context.Context, classID int64) ([]*models.Subject, error) {
	s.db.RLock()
	defer s.db.RUnlock()
	return s.list(func(subject *models.Subject) bool { return subject.SclassID == classID }), nil
}

func (s *SubjectStore) GetFreeByClassID(ctx context.Context, classID int64) ([]*models.Subject, error) {
	s.db.RLock()
	defer s.db.RUnlock()
	return s.list(func(subject *models.Subject) bool {
		return subject.SclassID == classID && subject.TeacherID == nil
	}), nil
}

func (s *SubjectStore) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	subject, ok := s.db.subjects[id]
	if !ok {
		return nil, nil
	}
	copied := *subject
	copied.SclassName = s.classInfo(subject.SclassID)
	if subject.TeacherID != nil {
		if teacher, ok := s.db.teachers[*subject.TeacherID]; ok {
			copied.Teacher = &models.TeacherInfo{ID: teacher.ID, Name: teacher.Name}
		}
	}
	return &copied, nil
}

func (s *SubjectStore) UnassignTeacher(ctx context.Context, teacherID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for _, subject := range s.db.subjects {
		if subject.TeacherID != nil && *subject.TeacherID == teacherID {
			subject.TeacherID = nil
			modified++
		}
	}
	return modified, nil
}

func (s *SubjectStore) UnassignTeachersByClass(ctx context.Context, classID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for _, subject := range s.db.subjects {
		if subject.TeacherID == nil {
			continue
		}
		teacher, ok := s.db.teachers[*subject.TeacherID]
		if ok && teacher.TeachSclassID == classID {
			subject.TeacherID = nil
			modified++
		}
	}
	return modified, nil
}

func (s *SubjectStore) UnassignTeachersBySchool(ctx context.Context, schoolID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for _, subject := range s.db.subjects {
		if subject.TeacherID == nil {
			continue
		}
		teacher, ok := s.db.teachers[*subject.TeacherID]
		if ok && teacher.SchoolID == schoolID {
			subject.TeacherID = nil
			modified++
		}
	}
	return modified, nil
}

func (s *SubjectStore) Delete(ctx context.Context, id int64) (*models.Subject, error) {
	s.db.Lock()
	defer s.db.Unlock()

	subject, ok := s.db.subjects[id]
	if !ok {
		return nil, nil
	}
	delete(s.db.subjects, id)
	copied := *subject
	return &copied, nil
}

func (s *SubjectStore) DeleteByClassID(ctx context.Context, classID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var deleted int64
	for id, subject := range s.db.subjects {
		if subject.SclassID == classID {
			delete(s.db.subjects, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *SubjectStore) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var deleted int64
	for id, subject := range s.db.subjects {
		if subject.SchoolID == schoolID {
			delete(s.db.subjects, id)
			deleted++
		}
	}
	return deleted, nil
}
