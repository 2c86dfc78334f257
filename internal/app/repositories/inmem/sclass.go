package inmem

import (
	"context"
	"sort"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
)

// SclassStore is the in-memory class table.
type SclassStore struct {
	db *DB
}

var _ services.SclassStore = (*SclassStore)(nil)

// NewSclassStore creates a class store on the shared database.
func NewSclassStore(db *DB) *SclassStore {
	return &SclassStore{db: db}
}

func (s *SclassStore) Create(ctx context.Context, sclass *models.Sclass) error {
	s.db.Lock()
	defer s.db.Unlock()

	for _, existing := range s.db.sclasses {
		if existing.SchoolID == sclass.SchoolID && existing.SclassName == sclass.SclassName {
			return apperrors.ErrClassNameTaken
		}
	}

	sclass.ID = s.db.nextID()
	stored := *sclass
	stored.School = nil
	s.db.sclasses[sclass.ID] = &stored
	return nil
}

// school resolves the owner reference. Caller holds a lock.
func (s *SclassStore) school(schoolID int64) *models.SchoolInfo {
	if admin, ok := s.db.admins[schoolID]; ok {
		return &models.SchoolInfo{ID: admin.ID, SchoolName: admin.SchoolName}
	}
	return nil
}

func (s *SclassStore) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Sclass, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	var sclasses []*models.Sclass
	for _, sclass := range s.db.sclasses {
		if sclass.SchoolID != schoolID {
			continue
		}
		copied := *sclass
		copied.School = s.school(sclass.SchoolID)
		sclasses = append(sclasses, &copied)
	}
	sort.Slice(sclasses, func(i, j int) bool { return sclasses[i].ID < sclasses[j].ID })
	return sclasses, nil
}

func (s *SclassStore) GetByID(ctx context.Context, id int64) (*models.Sclass, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	sclass, ok := s.db.sclasses[id]
	if !ok {
		return nil, nil
	}
	copied := *sclass
	copied.School = s.school(sclass.SchoolID)
	return &copied, nil
}

func (s *SclassStore) Delete(ctx context.Context, id int64) (*models.Sclass, error) {
	s.db.Lock()
	defer s.db.Unlock()

	sclass, ok := s.db.sclasses[id]
	if !ok {
		return nil, nil
	}
	delete(s.db.sclasses, id)
	copied := *sclass
	return &copied, nil
}

func (s *SclassStore) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var deleted int64
	for id, sclass := range s.db.sclasses {
		if sclass.SchoolID == schoolID {
			delete(s.db.sclasses, id)
			deleted++
		}
	}
	return deleted, nil
}
