package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/db"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
	"github.com/emre/schoolhub/internal/pkg/dberrors"
)

// TeacherRepository handles database operations for teacher accounts
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher; email uniqueness is store-enforced.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (name, email, password, role, school_id, teach_subject_id, teach_sclass_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		teacher.Name, teacher.Email, teacher.Password, teacher.Role,
		teacher.SchoolID, teacher.TeachSubjectID, teacher.TeachSclassID,
	).Scan(&teacher.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_email_key") {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByEmail retrieves a teacher by email; nil when none matches.
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	query := `
		SELECT id, name, email, password, role, school_id, teach_subject_id, teach_sclass_id
		FROM teachers
		WHERE email = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, email).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.Email,
		&teacher.Password,
		&teacher.Role,
		&teacher.SchoolID,
		&teacher.TeachSubjectID,
		&teacher.TeachSclassID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetByID retrieves one teacher with subject, class and school names
// resolved; nil when absent.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT t.id, t.name, t.email, t.password, t.role, t.school_id, t.teach_subject_id, t.teach_sclass_id,
		       c.sclass_name, a.school_name, s.sub_name, s.sessions
		FROM teachers t
		JOIN sclasses c ON c.id = t.teach_sclass_id
		JOIN admins a ON a.id = t.school_id
		LEFT JOIN subjects s ON s.id = t.teach_subject_id
		WHERE t.id = $1
	`

	var teacher models.Teacher
	var className, schoolName string
	var subName *string
	var sessions *int
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.Email,
		&teacher.Password,
		&teacher.Role,
		&teacher.SchoolID,
		&teacher.TeachSubjectID,
		&teacher.TeachSclassID,
		&className,
		&schoolName,
		&subName,
		&sessions,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	teacher.TeachSclass = &models.ClassInfo{ID: teacher.TeachSclassID, SclassName: className}
	teacher.School = &models.SchoolInfo{ID: teacher.SchoolID, SchoolName: schoolName}
	if teacher.TeachSubjectID != nil && subName != nil {
		info := &models.SubjectInfo{ID: *teacher.TeachSubjectID, SubName: *subName}
		if sessions != nil {
			info.Sessions = *sessions
		}
		teacher.TeachSubject = info
	}

	return &teacher, nil
}

// GetBySchoolID retrieves all teachers for a school with class names resolved.
func (r *TeacherRepository) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Teacher, error) {
	query := `
		SELECT t.id, t.name, t.email, t.role, t.school_id, t.teach_subject_id, t.teach_sclass_id, c.sclass_name
		FROM teachers t
		JOIN sclasses c ON c.id = t.teach_sclass_id
		WHERE t.school_id = $1
		ORDER BY t.id
	`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		var className string
		if err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.Email,
			&teacher.Role,
			&teacher.SchoolID,
			&teacher.TeachSubjectID,
			&teacher.TeachSclassID,
			&className,
		); err != nil {
			return nil, err
		}
		teacher.TeachSclass = &models.ClassInfo{ID: teacher.TeachSclassID, SclassName: className}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// AssignSubject sets the teacher's subject and the subject's teacher in
// one transaction, keeping the 1:1 assignment consistent on both sides.
func (r *TeacherRepository) AssignSubject(ctx context.Context, teacherID, subjectID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `UPDATE teachers SET teach_subject_id = $1 WHERE id = $2`, subjectID, teacherID)
		if err != nil {
			return fmt.Errorf("error assigning subject to teacher: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		cmdTag, err = tx.Exec(ctx, `UPDATE subjects SET teacher_id = $1 WHERE id = $2`, teacherID, subjectID)
		if err != nil {
			return fmt.Errorf("error assigning teacher to subject: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// UnassignSubject clears the assignment from any teacher teaching the
// given subject. Runs before subject deletion so no teacher keeps a
// dangling reference.
func (r *TeacherRepository) UnassignSubject(ctx context.Context, subjectID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE teachers SET teach_subject_id = NULL WHERE teach_subject_id = $1`, subjectID)
	if err != nil {
		return 0, fmt.Errorf("error unassigning subject from teachers: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UnassignSubjectsByClass clears assignments for every subject of a class.
func (r *TeacherRepository) UnassignSubjectsByClass(ctx context.Context, classID int64) (int64, error) {
	query := `
		UPDATE teachers SET teach_subject_id = NULL
		WHERE teach_subject_id IN (SELECT id FROM subjects WHERE sclass_id = $1)
	`
	cmdTag, err := r.db.Exec(ctx, query, classID)
	if err != nil {
		return 0, fmt.Errorf("error unassigning class subjects from teachers: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UnassignSubjectsBySchool clears assignments for every subject of a school.
func (r *TeacherRepository) UnassignSubjectsBySchool(ctx context.Context, schoolID int64) (int64, error) {
	query := `
		UPDATE teachers SET teach_subject_id = NULL
		WHERE teach_subject_id IN (SELECT id FROM subjects WHERE school_id = $1)
	`
	cmdTag, err := r.db.Exec(ctx, query, schoolID)
	if err != nil {
		return 0, fmt.Errorf("error unassigning school subjects from teachers: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes one teacher and returns the deleted row; nil when absent.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		DELETE FROM teachers
		WHERE id = $1
		RETURNING id, name, email, role, school_id, teach_subject_id, teach_sclass_id
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.Email,
		&teacher.Role,
		&teacher.SchoolID,
		&teacher.TeachSubjectID,
		&teacher.TeachSclassID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error deleting teacher: %w", err)
	}

	return &teacher, nil
}

// DeleteByClassID removes all teachers assigned to a class.
func (r *TeacherRepository) DeleteByClassID(ctx context.Context, classID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE teach_sclass_id = $1`, classID)
	if err != nil {
		return 0, fmt.Errorf("error deleting teachers: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteBySchoolID removes all teachers of a school.
func (r *TeacherRepository) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE school_id = $1`, schoolID)
	if err != nil {
		return 0, fmt.Errorf("error deleting teachers: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
