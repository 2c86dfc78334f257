package inmem

import (
	"context"
	"sort"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/services"
)

// ComplainStore is the in-memory complaint table.
type ComplainStore struct {
	db *DB
}

var _ services.ComplainStore = (*ComplainStore)(nil)

// NewComplainStore creates a complaint store on the shared database.
func NewComplainStore(db *DB) *ComplainStore {
	return &ComplainStore{db: db}
}

func (s *ComplainStore) Create(ctx context.Context, complain *models.Complain) error {
	s.db.Lock()
	defer s.db.Unlock()

	complain.ID = s.db.nextID()
	stored := *complain
	s.db.complains[complain.ID] = &stored
	return nil
}

func (s *ComplainStore) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Complain, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	var complains []*models.Complain
	for _, complain := range s.db.complains {
		if complain.SchoolID == schoolID {
			copied := *complain
			complains = append(complains, &copied)
		}
	}
	sort.Slice(complains, func(i, j int) bool { return complains[i].ID < complains[j].ID })
	return complains, nil
}
