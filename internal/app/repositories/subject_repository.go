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

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

const subjectColumns = `s.id, s.sub_name, s.sub_code, s.sessions, s.sclass_id, s.school_id, s.teacher_id`

// CreateBatch inserts all subjects inside one transaction. Any code
// collision with an existing subject of the same school, or between two
// subjects of the batch itself, aborts the transaction and leaves zero
// rows behind.
func (r *SubjectRepository) CreateBatch(ctx context.Context, subjects []*models.Subject) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO subjects (sub_name, sub_code, sessions, sclass_id, school_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		for _, subject := range subjects {
			err := tx.QueryRow(ctx, query,
				subject.SubName, subject.SubCode, subject.Sessions, subject.SclassID, subject.SchoolID,
			).Scan(&subject.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_sub_code_key") {
			return apperrors.ErrSubCodeTaken
		}
		return fmt.Errorf("error creating subjects: %w", err)
	}

	return nil
}

func (r *SubjectRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		var className string
		if err := rows.Scan(
			&subject.ID,
			&subject.SubName,
			&subject.SubCode,
			&subject.Sessions,
			&subject.SclassID,
			&subject.SchoolID,
			&subject.TeacherID,
			&className,
		); err != nil {
			return nil, err
		}
		subject.SclassName = &models.ClassInfo{ID: subject.SclassID, SclassName: className}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// GetBySchoolID retrieves all subjects for a school with class names resolved.
func (r *SubjectRepository) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Subject, error) {
	query := `
		SELECT ` + subjectColumns + `, c.sclass_name
		FROM subjects s
		JOIN sclasses c ON c.id = s.sclass_id
		WHERE s.school_id = $1
		ORDER BY s.id
	`
	return r.queryList(ctx, query, schoolID)
}

// GetByClassID retrieves all subjects for a class.
func (r *SubjectRepository) GetByClassID(ctx context.Context, classID int64) ([]*models.Subject, error) {
	query := `
		SELECT ` + subjectColumns + `, c.sclass_name
		FROM subjects s
		JOIN sclasses c ON c.id = s.sclass_id
		WHERE s.sclass_id = $1
		ORDER BY s.id
	`
	return r.queryList(ctx, query, classID)
}

// GetFreeByClassID retrieves the class subjects with no assigned teacher.
func (r *SubjectRepository) GetFreeByClassID(ctx context.Context, classID int64) ([]*models.Subject, error) {
	query := `
		SELECT ` + subjectColumns + `, c.sclass_name
		FROM subjects s
		JOIN sclasses c ON c.id = s.sclass_id
		WHERE s.sclass_id = $1 AND s.teacher_id IS NULL
		ORDER BY s.id
	`
	return r.queryList(ctx, query, classID)
}

// GetByID retrieves one subject with class name and assigned teacher
// resolved; nil when absent.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT ` + subjectColumns + `, c.sclass_name, t.name
		FROM subjects s
		JOIN sclasses c ON c.id = s.sclass_id
		LEFT JOIN teachers t ON t.id = s.teacher_id
		WHERE s.id = $1
	`

	var subject models.Subject
	var className string
	var teacherName *string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.SubName,
		&subject.SubCode,
		&subject.Sessions,
		&subject.SclassID,
		&subject.SchoolID,
		&subject.TeacherID,
		&className,
		&teacherName,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	subject.SclassName = &models.ClassInfo{ID: subject.SclassID, SclassName: className}
	if subject.TeacherID != nil && teacherName != nil {
		subject.Teacher = &models.TeacherInfo{ID: *subject.TeacherID, Name: *teacherName}
	}

	return &subject, nil
}

// UnassignTeacher clears the assignment from any subject taught by the
// given teacher.
func (r *SubjectRepository) UnassignTeacher(ctx context.Context, teacherID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE subjects SET teacher_id = NULL WHERE teacher_id = $1`, teacherID)
	if err != nil {
		return 0, fmt.Errorf("error unassigning teacher from subjects: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UnassignTeachersByClass clears the teacher assignment from every
// subject taught by one of the class's teachers. Runs before bulk
// teacher deletion so no subject keeps a dangling reference.
func (r *SubjectRepository) UnassignTeachersByClass(ctx context.Context, classID int64) (int64, error) {
	query := `
		UPDATE subjects SET teacher_id = NULL
		WHERE teacher_id IN (SELECT id FROM teachers WHERE teach_sclass_id = $1)
	`
	cmdTag, err := r.db.Exec(ctx, query, classID)
	if err != nil {
		return 0, fmt.Errorf("error unassigning class teachers from subjects: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UnassignTeachersBySchool clears the teacher assignment from every
// subject taught by one of the school's teachers.
func (r *SubjectRepository) UnassignTeachersBySchool(ctx context.Context, schoolID int64) (int64, error) {
	query := `
		UPDATE subjects SET teacher_id = NULL
		WHERE teacher_id IN (SELECT id FROM teachers WHERE school_id = $1)
	`
	cmdTag, err := r.db.Exec(ctx, query, schoolID)
	if err != nil {
		return 0, fmt.Errorf("error unassigning school teachers from subjects: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes one subject and returns the deleted row; nil when absent.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		DELETE FROM subjects
		WHERE id = $1
		RETURNING id, sub_name, sub_code, sessions, sclass_id, school_id, teacher_id
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.SubName,
		&subject.SubCode,
		&subject.Sessions,
		&subject.SclassID,
		&subject.SchoolID,
		&subject.TeacherID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error deleting subject: %w", err)
	}

	return &subject, nil
}

// DeleteByClassID removes all subjects of a class.
func (r *SubjectRepository) DeleteByClassID(ctx context.Context, classID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE sclass_id = $1`, classID)
	if err != nil {
		return 0, fmt.Errorf("error deleting subjects: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteBySchoolID removes all subjects of a school.
func (r *SubjectRepository) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE school_id = $1`, schoolID)
	if err != nil {
		return 0, fmt.Errorf("error deleting subjects: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
