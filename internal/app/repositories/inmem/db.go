// Package inmem provides in-memory implementations of the service store
// interfaces. They enforce the same unique keys the SQL schema declares
// and back the service and controller tests.
package inmem

import (
	"sync"

	"github.com/emre/schoolhub/internal/app/models"
)

// DB is a single in-memory database shared by all stores. One lock
// guards every table so multi-table operations stay consistent.
type DB struct {
	sync.RWMutex

	seq         int64
	admins      map[int64]*models.Admin
	sclasses    map[int64]*models.Sclass
	subjects    map[int64]*models.Subject
	teachers    map[int64]*models.Teacher
	students    map[int64]*models.Student
	attendance  map[int64]*models.AttendanceEntry
	examResults map[int64]*models.ExamResult
	notices     map[int64]*models.Notice
	complains   map[int64]*models.Complain
}

// Open creates an empty database.
func Open() *DB {
	return &DB{
		admins:      make(map[int64]*models.Admin),
		sclasses:    make(map[int64]*models.Sclass),
		subjects:    make(map[int64]*models.Subject),
		teachers:    make(map[int64]*models.Teacher),
		students:    make(map[int64]*models.Student),
		attendance:  make(map[int64]*models.AttendanceEntry),
		examResults: make(map[int64]*models.ExamResult),
		notices:     make(map[int64]*models.Notice),
		complains:   make(map[int64]*models.Complain),
	}
}

// nextID allocates a new row id. Caller holds the write lock.
func (db *DB) nextID() int64 {
	db.seq++
	return db.seq
}
