package inmem

import (
	"context"
	"sort"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
)

const dateLayout = "2006-01-02"

// StudentStore is the in-memory student table together with the
// attendance and exam result tables hanging off it.
type StudentStore struct {
	db *DB
}

var _ services.StudentStore = (*StudentStore)(nil)

// NewStudentStore creates a student store on the shared database.
func NewStudentStore(db *DB) *StudentStore {
	return &StudentStore{db: db}
}

func (s *StudentStore) Create(ctx context.Context, student *models.Student) error {
	s.db.Lock()
	defer s.db.Unlock()

	for _, existing := range s.db.students {
		if existing.SchoolID == student.SchoolID &&
			existing.SclassID == student.SclassID &&
			existing.RollNum == student.RollNum {
			return apperrors.ErrRollNumTaken
		}
	}

	student.ID = s.db.nextID()
	stored := *student
	stored.SclassName = nil
	stored.School = nil
	stored.Attendance = nil
	stored.ExamResults = nil
	s.db.students[student.ID] = &stored
	return nil
}

func (s *StudentStore) GetByRollAndName(ctx context.Context, rollNum int, name string) (*models.Student, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	for _, student := range s.db.students {
		if student.RollNum == rollNum && student.Name == name {
			copied := *student
			return &copied, nil
		}
	}
	return nil, nil
}

// subjectInfo resolves a subject reference; nil when the subject has been
// deleted since the row was written. Caller holds a lock.
func (s *StudentStore) subjectInfo(subjectID int64) *models.SubjectInfo {
	if subject, ok := s.db.subjects[subjectID]; ok {
		return &models.SubjectInfo{ID: subject.ID, SubName: subject.SubName, Sessions: subject.Sessions}
	}
	return nil
}

func (s *StudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	student, ok := s.db.students[id]
	if !ok {
		return nil, nil
	}
	copied := *student
	if sclass, ok := s.db.sclasses[student.SclassID]; ok {
		copied.SclassName = &models.ClassInfo{ID: sclass.ID, SclassName: sclass.SclassName}
	}
	if admin, ok := s.db.admins[student.SchoolID]; ok {
		copied.School = &models.SchoolInfo{ID: admin.ID, SchoolName: admin.SchoolName}
	}

	for _, entry := range s.db.attendance {
		if entry.StudentID != id {
			continue
		}
		entryCopy := *entry
		entryCopy.SubName = s.subjectInfo(entry.SubjectID)
		copied.Attendance = append(copied.Attendance, entryCopy)
	}
	sort.Slice(copied.Attendance, func(i, j int) bool { return copied.Attendance[i].ID < copied.Attendance[j].ID })

	for _, result := range s.db.examResults {
		if result.StudentID != id {
			continue
		}
		resultCopy := *result
		resultCopy.SubName = s.subjectInfo(result.SubjectID)
		copied.ExamResults = append(copied.ExamResults, resultCopy)
	}
	sort.Slice(copied.ExamResults, func(i, j int) bool { return copied.ExamResults[i].ID < copied.ExamResults[j].ID })

	return &copied, nil
}

func (s *StudentStore) list(match func(*models.Student) bool) []*models.Student {
	var students []*models.Student
	for _, student := range s.db.students {
		if !match(student) {
			continue
		}
		copied := *student
		copied.Password = ""
		if sclass, ok := s.db.sclasses[student.SclassID]; ok {
			copied.SclassName = &models.ClassInfo{ID: sclass.ID, SclassName: sclass.SclassName}
		}
		students = append(students, &copied)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (s *StudentStore) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Student, error) {
	s.db.RLock()
	defer s.db.RUnlock()
	return s.list(func(student *models.Student) bool { return student.SchoolID == schoolID }), nil
}

func (s *StudentStore) GetByClassID(ctx context.Context, classID int64) ([]*models.Student, error) {
	s.db.RLock()
	defer s.db.RUnlock()
	return s.list(func(student *models.Student) bool { return student.SclassID == classID }), nil
}

func (s *StudentStore) Update(ctx context.Context, student *models.Student) error {
	s.db.Lock()
	defer s.db.Unlock()

	stored, ok := s.db.students[student.ID]
	if !ok {
		return apperrors.ErrNotFound
	}

	for _, existing := range s.db.students {
		if existing.ID == student.ID {
			continue
		}
		if existing.SchoolID == student.SchoolID &&
			existing.SclassID == student.SclassID &&
			existing.RollNum == student.RollNum {
			return apperrors.ErrRollNumTaken
		}
	}

	stored.Name = student.Name
	stored.RollNum = student.RollNum
	stored.Password = student.Password
	stored.SclassID = student.SclassID
	return nil
}

// deleteDependents removes attendance and exam rows of one student.
// Caller holds the write lock.
func (s *StudentStore) deleteDependents(studentID int64) {
	for id, entry := range s.db.attendance {
		if entry.StudentID == studentID {
			delete(s.db.attendance, id)
		}
	}
	for id, result := range s.db.examResults {
		if result.StudentID == studentID {
			delete(s.db.examResults, id)
		}
	}
}

func (s *StudentStore) Delete(ctx context.Context, id int64) (*models.Student, error) {
	s.db.Lock()
	defer s.db.Unlock()

	student, ok := s.db.students[id]
	if !ok {
		return nil, nil
	}
	delete(s.db.students, id)
	s.deleteDependents(id)
	copied := *student
	copied.Password = ""
	return &copied, nil
}

func (s *StudentStore) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var deleted int64
	for id, student := range s.db.students {
		if student.SchoolID == schoolID {
			delete(s.db.students, id)
			s.deleteDependents(id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *StudentStore) DeleteByClassID(ctx context.Context, classID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var deleted int64
	for id, student := range s.db.students {
		if student.SclassID == classID {
			delete(s.db.students, id)
			s.deleteDependents(id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *StudentStore) AddAttendance(ctx context.Context, entry *models.AttendanceEntry) error {
	s.db.Lock()
	defer s.db.Unlock()

	day := entry.Date.Format(dateLayout)
	for _, existing := range s.db.attendance {
		if existing.StudentID == entry.StudentID &&
			existing.SubjectID == entry.SubjectID &&
			existing.Date.Format(dateLayout) == day {
			return apperrors.ErrAttendanceExists
		}
	}

	entry.ID = s.db.nextID()
	stored := *entry
	stored.SubName = nil
	s.db.attendance[entry.ID] = &stored
	return nil
}

func (s *StudentStore) UpsertExamResult(ctx context.Context, result *models.ExamResult) error {
	s.db.Lock()
	defer s.db.Unlock()

	for _, existing := range s.db.examResults {
		if existing.StudentID == result.StudentID && existing.SubjectID == result.SubjectID {
			existing.MarksObtained = result.MarksObtained
			result.ID = existing.ID
			return nil
		}
	}

	result.ID = s.db.nextID()
	stored := *result
	stored.SubName = nil
	s.db.examResults[result.ID] = &stored
	return nil
}

func (s *StudentStore) ClearAttendanceBySubject(ctx context.Context, subjectID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for id, entry := range s.db.attendance {
		if entry.SubjectID == subjectID {
			delete(s.db.attendance, id)
			modified++
		}
	}
	return modified, nil
}

func (s *StudentStore) ClearAttendanceBySchool(ctx context.Context, schoolID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for id, entry := range s.db.attendance {
		student, ok := s.db.students[entry.StudentID]
		if ok && student.SchoolID == schoolID {
			delete(s.db.attendance, id)
			modified++
		}
	}
	return modified, nil
}

func (s *StudentStore) RemoveAttendanceBySubject(ctx context.Context, studentID, subjectID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for id, entry := range s.db.attendance {
		if entry.StudentID == studentID && entry.SubjectID == subjectID {
			delete(s.db.attendance, id)
			modified++
		}
	}
	return modified, nil
}

func (s *StudentStore) RemoveAttendance(ctx context.Context, studentID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var modified int64
	for id, entry := range s.db.attendance {
		if entry.StudentID == studentID {
			delete(s.db.attendance, id)
			modified++
		}
	}
	return modified, nil
}
