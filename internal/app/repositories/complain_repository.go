package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/schoolhub/internal/app/models"
)

// ComplainRepository handles database operations for complaints
type ComplainRepository struct {
	db *pgxpool.Pool
}

// NewComplainRepository creates a new complaint repository
func NewComplainRepository(db *pgxpool.Pool) *ComplainRepository {
	return &ComplainRepository{db: db}
}

// Create inserts a new complaint
func (r *ComplainRepository) Create(ctx context.Context, complain *models.Complain) error {
	query := `
		INSERT INTO complains (user_id, date, description, school_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, complain.UserID, complain.Date, complain.Description, complain.SchoolID).Scan(&complain.ID)
	if err != nil {
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// GetBySchoolID retrieves all complaints for a school
func (r *ComplainRepository) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Complain, error) {
	query := `
		SELECT id, user_id, date, description, school_id
		FROM complains
		WHERE school_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving complaints: %w", err)
	}
	defer rows.Close()

	var complains []*models.Complain
	for rows.Next() {
		var complain models.Complain
		if err := rows.Scan(&complain.ID, &complain.UserID, &complain.Date, &complain.Description, &complain.SchoolID); err != nil {
			return nil, err
		}
		complains = append(complains, &complain)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complains, nil
}
