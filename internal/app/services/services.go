package services

import (
	"context"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/repositories"
	"github.com/emre/schoolhub/internal/pkg/auth"
)

// Repository interfaces are declared here, on the consumer side, so the
// services can be exercised against the in-memory implementations in
// tests. The pgx repositories in internal/app/repositories satisfy them.

// AdminStore persists school owner accounts.
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
}

// SclassStore persists school classes.
type SclassStore interface {
	Create(ctx context.Context, sclass *models.Sclass) error
	GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Sclass, error)
	GetByID(ctx context.Context, id int64) (*models.Sclass, error)
	Delete(ctx context.Context, id int64) (*models.Sclass, error)
	DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error)
}

// SubjectStore persists subjects and the subject side of teacher
// assignments.
type SubjectStore interface {
	CreateBatch(ctx context.Context, subjects []*models.Subject) error
	GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Subject, error)
	GetByClassID(ctx context.Context, classID int64) ([]*models.Subject, error)
	GetFreeByClassID(ctx context.Context, classID int64) ([]*models.Subject, error)
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	UnassignTeacher(ctx context.Context, teacherID int64) (int64, error)
	UnassignTeachersByClass(ctx context.Context, classID int64) (int64, error)
	UnassignTeachersBySchool(ctx context.Context, schoolID int64) (int64, error)
	Delete(ctx context.Context, id int64) (*models.Subject, error)
	DeleteByClassID(ctx context.Context, classID int64) (int64, error)
	DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error)
}

// TeacherStore persists teacher accounts and the teacher side of subject
// assignments.
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Teacher, error)
	AssignSubject(ctx context.Context, teacherID, subjectID int64) error
	UnassignSubject(ctx context.Context, subjectID int64) (int64, error)
	UnassignSubjectsByClass(ctx context.Context, classID int64) (int64, error)
	UnassignSubjectsBySchool(ctx context.Context, schoolID int64) (int64, error)
	Delete(ctx context.Context, id int64) (*models.Teacher, error)
	DeleteByClassID(ctx context.Context, classID int64) (int64, error)
	DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error)
}

// StudentStore persists student accounts, attendance and exam results.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByRollAndName(ctx context.Context, rollNum int, name string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Student, error)
	GetByClassID(ctx context.Context, classID int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (*models.Student, error)
	DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error)
	DeleteByClassID(ctx context.Context, classID int64) (int64, error)
	AddAttendance(ctx context.Context, entry *models.AttendanceEntry) error
	UpsertExamResult(ctx context.Context, result *models.ExamResult) error
	ClearAttendanceBySubject(ctx context.Context, subjectID int64) (int64, error)
	ClearAttendanceBySchool(ctx context.Context, schoolID int64) (int64, error)
	RemoveAttendanceBySubject(ctx context.Context, studentID, subjectID int64) (int64, error)
	RemoveAttendance(ctx context.Context, studentID int64) (int64, error)
}

// NoticeStore persists school notices.
type NoticeStore interface {
	Create(ctx context.Context, notice *models.Notice) error
	GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Notice, error)
	Update(ctx context.Context, notice *models.Notice) (*models.Notice, error)
	Delete(ctx context.Context, id int64) (*models.Notice, error)
	DeleteBySchoolID(ctx context.Context, schoolID int64) (int64, error)
}

// ComplainStore persists complaints.
type ComplainStore interface {
	Create(ctx context.Context, complain *models.Complain) error
	GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Complain, error)
}

// Services holds all the service instances
type Services struct {
	AdminService    *AdminService
	SclassService   *SclassService
	SubjectService  *SubjectService
	TeacherService  *TeacherService
	StudentService  *StudentService
	NoticeService   *NoticeService
	ComplainService *ComplainService
}

// NewServices initializes all services on top of the pgx repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AdminService:    NewAdminService(repos.AdminRepository, jwtService),
		SclassService:   NewSclassService(repos.SclassRepository, repos.StudentRepository, repos.SubjectRepository, repos.TeacherRepository),
		SubjectService:  NewSubjectService(repos.SubjectRepository, repos.TeacherRepository),
		TeacherService:  NewTeacherService(repos.TeacherRepository, repos.SubjectRepository, jwtService),
		StudentService:  NewStudentService(repos.StudentRepository, jwtService),
		NoticeService:   NewNoticeService(repos.NoticeRepository),
		ComplainService: NewComplainService(repos.ComplainRepository),
	}
}
