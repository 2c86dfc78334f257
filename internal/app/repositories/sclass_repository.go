package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
	"github.com/emre/schoolhub/internal/pkg/dberrors"
)

// SclassRepository handles database operations for classes
type SclassRepository struct {
	db *pgxpool.Pool
}

// NewSclassRepository creates a new class repository
func NewSclassRepository(db *pgxpool.Pool) *SclassRepository {
	return &SclassRepository{db: db}
}

// Create inserts a new class. The per-school name uniqueness is enforced
// by the store's unique index.
func (r *SclassRepository) Create(ctx context.Context, sclass *models.Sclass) error {
	query := `
		INSERT INTO sclasses (sclass_name, school_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, sclass.SclassName, sclass.SchoolID).Scan(&sclass.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sclasses_school_name_key") {
			return apperrors.ErrClassNameTaken
		}
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetBySchoolID retrieves all classes for a school, each with the owner
// resolved to its school name.
func (r *SclassRepository) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Sclass, error) {
	query := `
		SELECT c.id, c.sclass_name, c.school_id, a.school_name
		FROM sclasses c
		JOIN admins a ON a.id = c.school_id
		WHERE c.school_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	defer rows.Close()

	var sclasses []*models.Sclass
	for rows.Next() {
		var sclass models.Sclass
		var schoolName string
		if err := rows.Scan(&sclass.ID, &sclass.SclassName, &sclass.SchoolID, &schoolName); err != nil {
			return nil, err
		}
		sclass.School = &models.SchoolInfo{ID: sclass.SchoolID, SchoolName: schoolName}
		sclasses = append(sclasses, &sclass)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sclasses, nil
}

// GetByID retrieves one class with its owner resolved; nil when absent.
func (r *SclassRepository) GetByID(ctx context.Context, id int64) (*models.Sclass, error) {
	query := `
		SELECT c.id, c.sclass_name, c.school_id, a.school_name
		FROM sclasses c
		JOIN admins a ON a.id = c.school_id
		WHERE c.id = $1
	`

	var sclass models.Sclass
	var schoolName string
	err := r.db.QueryRow(ctx, query, id).Scan(&sclass.ID, &sclass.SclassName, &sclass.SchoolID, &schoolName)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}
	sclass.School = &models.SchoolInfo{ID: sclass.SchoolID, SchoolName: schoolName}

	return &sclass, nil
}

// Delete removes one class and returns the deleted row; nil when absent.
func (r *SclassRepository) Delete(ctx context.Context, id int64) (*models.Sclass, error) {
	query := `
		DELETE FROM sclasses
		WHERE id = $1
		RETURNING id, sclass_name, school_id
	`

	var sclass models.Sclass
	err := r.db.QueryRow(ctx, query, id).Scan(&sclass.ID, &sclass.SclassName, &sclass.SchoolID)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error deleting class: %w", err)
	}

	return &sclass, nil
}

// DeleteBySchoolID removes all classes for a school and reports how many
// rows went away.
func (r *SclassRepository) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sclasses WHERE school_id = $1`, schoolID)
	if err != nil {
		return 0, fmt.Errorf("error deleting classes: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
