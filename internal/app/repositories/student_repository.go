package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
	"github.com/emre/schoolhub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students, including
// their attendance and exam-result child rows.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student. Roll number uniqueness within
// (school, class) is enforced by the store's unique index.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, roll_num, password, sclass_id, school_id, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.RollNum, student.Password, student.SclassID, student.SchoolID, student.Role,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_roll_num_key") {
			return apperrors.ErrRollNumTaken
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByRollAndName retrieves a student by roll number and name for login;
// nil when none matches.
func (r *StudentRepository) GetByRollAndName(ctx context.Context, rollNum int, name string) (*models.Student, error) {
	query := `
		SELECT id, name, roll_num, password, sclass_id, school_id, role
		FROM students
		WHERE roll_num = $1 AND name = $2
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, rollNum, name).Scan(
		&student.ID,
		&student.Name,
		&student.RollNum,
		&student.Password,
		&student.SclassID,
		&student.SchoolID,
		&student.Role,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByID retrieves one student with class and school names resolved and
// the attendance and exam-result collections loaded; nil when absent.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT st.id, st.name, st.roll_num, st.password, st.sclass_id, st.school_id, st.role,
		       c.sclass_name, a.school_name
		FROM students st
		JOIN sclasses c ON c.id = st.sclass_id
		JOIN admins a ON a.id = st.school_id
		WHERE st.id = $1
	`

	var student models.Student
	var className, schoolName string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.RollNum,
		&student.Password,
		&student.SclassID,
		&student.SchoolID,
		&student.Role,
		&className,
		&schoolName,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	student.SclassName = &models.ClassInfo{ID: student.SclassID, SclassName: className}
	student.School = &models.SchoolInfo{ID: student.SchoolID, SchoolName: schoolName}

	attendance, err := r.getAttendance(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Attendance = attendance

	results, err := r.getExamResults(ctx, id)
	if err != nil {
		return nil, err
	}
	student.ExamResults = results

	return &student, nil
}

func (r *StudentRepository) getAttendance(ctx context.Context, studentID int64) ([]models.AttendanceEntry, error) {
	query := `
		SELECT at.id, at.student_id, at.subject_id, at.date, at.status, s.sub_name, s.sessions
		FROM student_attendance at
		LEFT JOIN subjects s ON s.id = at.subject_id
		WHERE at.student_id = $1
		ORDER BY at.date, at.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	defer rows.Close()

	var entries []models.AttendanceEntry
	for rows.Next() {
		var entry models.AttendanceEntry
		var subName *string
		var sessions *int
		if err := rows.Scan(&entry.ID, &entry.StudentID, &entry.SubjectID, &entry.Date, &entry.Status, &subName, &sessions); err != nil {
			return nil, err
		}
		// Subject may be gone; the attendance row is kept as history.
		if subName != nil {
			info := &models.SubjectInfo{ID: entry.SubjectID, SubName: *subName}
			if sessions != nil {
				info.Sessions = *sessions
			}
			entry.SubName = info
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *StudentRepository) getExamResults(ctx context.Context, studentID int64) ([]models.ExamResult, error) {
	query := `
		SELECT er.id, er.student_id, er.subject_id, er.marks_obtained, s.sub_name
		FROM exam_results er
		LEFT JOIN subjects s ON s.id = er.subject_id
		WHERE er.student_id = $1
		ORDER BY er.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving exam results: %w", err)
	}
	defer rows.Close()

	var results []models.ExamResult
	for rows.Next() {
		var result models.ExamResult
		var subName *string
		if err := rows.Scan(&result.ID, &result.StudentID, &result.SubjectID, &result.MarksObtained, &subName); err != nil {
			return nil, err
		}
		if subName != nil {
			result.SubName = &models.SubjectInfo{ID: result.SubjectID, SubName: *subName}
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// GetBySchoolID retrieves all students for a school with class names resolved.
func (r *StudentRepository) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Student, error) {
	query := `
		SELECT st.id, st.name, st.roll_num, st.sclass_id, st.school_id, st.role, c.sclass_name
		FROM students st
		JOIN sclasses c ON c.id = st.sclass_id
		WHERE st.school_id = $1
		ORDER BY st.id
	`
	return r.queryList(ctx, query, schoolID)
}

// GetByClassID retrieves all students of a class.
func (r *StudentRepository) GetByClassID(ctx context.Context, classID int64) ([]*models.Student, error) {
	query := `
		SELECT st.id, st.name, st.roll_num, st.sclass_id, st.school_id, st.role, c.sclass_name
		FROM students st
		JOIN sclasses c ON c.id = st.sclass_id
		WHERE st.sclass_id = $1
		ORDER BY st.id
	`
	return r.queryList(ctx, query, classID)
}

func (r *StudentRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var className string
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.RollNum,
			&student.SclassID,
			&student.SchoolID,
			&student.Role,
			&className,
		); err != nil {
			return nil, err
		}
		student.SclassName = &models.ClassInfo{ID: student.SclassID, SclassName: className}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update replaces the mutable student fields. The roll-number unique
// index applies on update as well.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, roll_num = $2, password = $3, sclass_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.RollNum, student.Password, student.SclassID, student.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_roll_num_key") {
			return apperrors.ErrRollNumTaken
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes one student and returns the deleted row; nil when absent.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		DELETE FROM students
		WHERE id = $1
		RETURNING id, name, roll_num, sclass_id, school_id, role
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.RollNum,
		&student.SclassID,
		&student.SchoolID,
		&student.Role,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error deleting student: %w", err)
	}

	return &student, nil
}

// DeleteBySchoolID removes all students of a school.
func (r *StudentRepository) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE school_id = $1`, schoolID)
	if err != nil {
		return 0, fmt.Errorf("error deleting students: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteByClassID removes all students of a class.
func (r *StudentRepository) DeleteByClassID(ctx context.Context, classID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE sclass_id = $1`, classID)
	if err != nil {
		return 0, fmt.Errorf("error deleting students: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// AddAttendance appends one attendance entry. The per-date unique index
// rejects a second status for the same (student, subject, date).
func (r *StudentRepository) AddAttendance(ctx context.Context, entry *models.AttendanceEntry) error {
	query := `
		INSERT INTO student_attendance (student_id, subject_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, entry.StudentID, entry.SubjectID, entry.Date, entry.Status).Scan(&entry.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_attendance_date_key") {
			return apperrors.ErrAttendanceExists
		}
		return fmt.Errorf("error recording attendance: %w", err)
	}

	return nil
}

// UpsertExamResult inserts a mark or replaces the existing one for the
// same (student, subject).
func (r *StudentRepository) UpsertExamResult(ctx context.Context, result *models.ExamResult) error {
	query := `
		INSERT INTO exam_results (student_id, subject_id, marks_obtained)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT exam_results_student_subject_key
		DO UPDATE SET marks_obtained = EXCLUDED.marks_obtained
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, result.StudentID, result.SubjectID, result.MarksObtained).Scan(&result.ID)
	if err != nil {
		return fmt.Errorf("error upserting exam result: %w", err)
	}

	return nil
}

// ClearAttendanceBySubject removes the attendance rows of one subject
// across all students.
func (r *StudentRepository) ClearAttendanceBySubject(ctx context.Context, subjectID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student_attendance WHERE subject_id = $1`, subjectID)
	if err != nil {
		return 0, fmt.Errorf("error clearing attendance: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// ClearAttendanceBySchool removes all attendance rows of a school's students.
func (r *StudentRepository) ClearAttendanceBySchool(ctx context.Context, schoolID int64) (int64, error) {
	query := `
		DELETE FROM student_attendance at
		USING students st
		WHERE at.student_id = st.id AND st.school_id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, schoolID)
	if err != nil {
		return 0, fmt.Errorf("error clearing attendance: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// RemoveAttendanceBySubject removes one student's attendance rows for one
// subject.
func (r *StudentRepository) RemoveAttendanceBySubject(ctx context.Context, studentID, subjectID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM student_attendance WHERE student_id = $1 AND subject_id = $2`, studentID, subjectID)
	if err != nil {
		return 0, fmt.Errorf("error removing attendance: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// RemoveAttendance removes all of one student's attendance rows.
func (r *StudentRepository) RemoveAttendance(ctx context.Context, studentID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student_attendance WHERE student_id = $1`, studentID)
	if err != nil {
		return 0, fmt.Errorf("error removing attendance: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
