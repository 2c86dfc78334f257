package inmem

import (
	"context"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
)

// AdminStore is the in-memory admin table.
type AdminStore struct {
	db *DB
}

var _ services.AdminStore = (*AdminStore)(nil)

// NewAdminStore creates an admin store on the shared database.
func NewAdminStore(db *DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) Create(ctx context.Context, admin *models.Admin) error {
	s.db.Lock()
	defer s.db.Unlock()

	for _, existing := range s.db.admins {
		if existing.Email == admin.Email {
			return apperrors.ErrEmailTaken
		}
		if existing.SchoolName == admin.SchoolName {
			return apperrors.ErrSchoolNameTaken
		}
	}

	admin.ID = s.db.nextID()
	stored := *admin
	s.db.admins[admin.ID] = &stored
	return nil
}

func (s *AdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	for _, admin := range s.db.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *AdminStore) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	admin, ok := s.db.admins[id]
	if !ok {
		return nil, nil
	}
	copied := *admin
	return &copied, nil
}
