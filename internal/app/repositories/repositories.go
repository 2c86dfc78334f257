package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository    *AdminRepository
	SclassRepository   *SclassRepository
	SubjectRepository  *SubjectRepository
	TeacherRepository  *TeacherRepository
	StudentRepository  *StudentRepository
	NoticeRepository   *NoticeRepository
	ComplainRepository *ComplainRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:    NewAdminRepository(db),
		SclassRepository:   NewSclassRepository(db),
		SubjectRepository:  NewSubjectRepository(db),
		TeacherRepository:  NewTeacherRepository(db),
		StudentRepository:  NewStudentRepository(db),
		NoticeRepository:   NewNoticeRepository(db),
		ComplainRepository: NewComplainRepository(db),
	}
}
