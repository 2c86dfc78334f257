package inmem

import (
	"context"
	"sort"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/services"
)

// NoticeStore is the in-memory notice table.
type NoticeStore struct {
	db *DB
}

var _ services.NoticeStore = (*NoticeStore)(nil)

// NewNoticeStore creates a notice store on the shared database.
func NewNoticeStore(db *DB) *NoticeStore {
	return &NoticeStore{db: db}
}

func (s *NoticeStore) Create(ctx context.Context, notice *models.Notice) error {
	s.db.Lock()
	defer s.db.Unlock()

	notice.ID = s.db.nextID()
	stored := *notice
	s.db.notices[notice.ID] = &stored
	return nil
}

func (s *NoticeStore) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Notice, error) {
	s.db.RLock()
	defer s.db.RUnlock()

	var notices []*models.Notice
	for _, notice := range s.db.notices {
		if notice.SchoolID == schoolID {
			copied := *notice
			notices = append(notices, &copied)
		}
	}
	sort.Slice(notices, func(i, j int) bool { return notices[i].ID < notices[j].ID })
	return notices, nil
}

func (s *NoticeStore) Update(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	s.db.Lock()
	defer s.db.Unlock()

	stored, ok := s.db.notices[notice.ID]
	if !ok {
		return nil, nil
	}
	stored.Title = notice.Title
	stored.Details = notice.Details
	stored.Date = notice.Date
	copied := *stored
	return &copied, nil
}

func (s *NoticeStore) Delete(ctx context.Context, id int64) (*models.Notice, error) {
	s.db.Lock()
	defer s.db.Unlock()

	notice, ok := s.db.notices[id]
	if !ok {
		return nil, nil
	}
	delete(s.db.notices, id)
	copied := *notice
	return &copied, nil
}

func (s *NoticeStore) DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	s.db.Lock()
	defer s.db.Unlock()

	var deleted int64
	for id, notice := range s.db.notices {
		if notice.SchoolID == schoolID {
			delete(s.db.notices, id)
			deleted++
		}
	}
	return deleted, nil
}
