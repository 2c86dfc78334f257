package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/pkg/dberrors"
)

// NoticeRepository handles database operations for notices
type NoticeRepository struct {
	db *pgxpool.Pool
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// Create inserts a new notice
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	query := `
		INSERT INTO notices (title, details, date, school_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, notice.Title, notice.Details, notice.Date, notice.SchoolID).Scan(&notice.ID)
	if err != nil {
		return fmt.Errorf("error creating notice: %w", err)
	}

	return nil
}

// GetBySchoolID retrieves all notices for a school
func (r *NoticeRepository) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Notice, error) {
	query := `
		SELECT id, title, details, date, school_id
		FROM notices
		WHERE school_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notices: %w", err)
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		var notice models.Notice
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Details, &notice.Date, &notice.SchoolID); err != nil {
			return nil, err
		}
		notices = append(notices, &notice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notices, nil
}

// Update replaces the notice fields and returns the updated row; nil
// when absent.
func (r *NoticeRepository) Update(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	query := `
		UPDATE notices
		SET title = $1, details = $2, date = $3
		WHERE id = $4
		RETURNING id, title, details, date, school_id
	`

	var updated models.Notice
	err := r.db.QueryRow(ctx, query, notice.Title, notice.Details, notice.Date, notice.ID).Scan(
		&updated.ID, &updated.Title, &updated.Details, &updated.Date, &updated.SchoolID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating notice: %w", err)
	}

	return &updated, nil
}

// Delete removes one notice and returns the deleted row; nil when absent.
func (r *NoticeRepository) Delete(ctx context.Context, id int64) (*models.Notice, error) {
	query := `
		DELETE FROM notices
		WHERE id = $1
		RETURNING id, title, details, date, school_id
	`

	var notice models.Notice
	err := r.db.QueryRow(ctx, query, id).Scan(&notice.ID, &notice.Title, &notice.Details, &notice.Date, &notice.SchoolID)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error deleting notice: %w", err)
	}

	return &notice, nil
}

// DeleteBySchoolID removes all notices of a school.
func (r *NoticeRepository) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE school_id = $1`, schoolID)
	if err != nil {
		return 0, fmt.Errorf("error deleting notices: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
