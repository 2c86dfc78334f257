package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/app/repositories/inmem"
	"github.com/emre/schoolhub/internal/app/services"
	"github.com/emre/schoolhub/internal/pkg/auth"
)

// testEnv bundles the services under test on one shared in-memory
// database.
type testEnv struct {
	db       *inmem.DB
	admin    *services.AdminService
	sclass   *services.SclassService
	subject  *services.SubjectService
	teacher  *services.TeacherService
	student  *services.StudentService
	notice   *services.NoticeService
	complain *services.ComplainService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := inmem.Open()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "schoolhub.test",
	})

	adminStore := inmem.NewAdminStore(db)
	sclassStore := inmem.NewSclassStore(db)
	subjectStore := inmem.NewSubjectStore(db)
	teacherStore := inmem.NewTeacherStore(db)
	studentStore := inmem.NewStudentStore(db)

	return &testEnv{
		db:       db,
		admin:    services.NewAdminService(adminStore, jwtService),
		sclass:   services.NewSclassService(sclassStore, studentStore, subjectStore, teacherStore),
		subject:  services.NewSubjectService(subjectStore, teacherStore),
		teacher:  services.NewTeacherService(teacherStore, subjectStore, jwtService),
		student:  services.NewStudentService(studentStore, jwtService),
		notice:   services.NewNoticeService(inmem.NewNoticeStore(db)),
		complain: services.NewComplainService(inmem.NewComplainStore(db)),
	}
}

func (e *testEnv) registerAdmin(t *testing.T, email, schoolName string) *models.Admin {
	t.Helper()

	admin, err := e.admin.Register(context.Background(), &dto.AdminRegisterRequest{
		Name:       "Head",
		Email:      email,
		Password:   "secret123",
		SchoolName: schoolName,
	})
	require.NoError(t, err)
	return admin
}

func (e *testEnv) createClass(t *testing.T, schoolID int64, name string) *models.Sclass {
	t.Helper()

	sclass, err := e.sclass.Create(context.Background(), &dto.SclassCreateRequest{
		SclassName: name,
		AdminID:    schoolID,
	})
	require.NoError(t, err)
	return sclass
}

func (e *testEnv) createSubjects(t *testing.T, schoolID, classID int64, inputs ...dto.SubjectInput) []*models.Subject {
	t.Helper()

	subjects, err := e.subject.CreateBatch(context.Background(), &dto.SubjectCreateRequest{
		Subjects: inputs,
		AdminID:  schoolID,
		SclassID: classID,
	})
	require.NoError(t, err)
	return subjects
}

func (e *testEnv) registerStudent(t *testing.T, schoolID, classID int64, name string, rollNum int) *models.Student {
	t.Helper()

	student, err := e.student.Register(context.Background(), &dto.StudentRegisterRequest{
		Name:     name,
		RollNum:  rollNum,
		Password: "secret123",
		SclassID: classID,
		AdminID:  schoolID,
	})
	require.NoError(t, err)
	return student
}

func (e *testEnv) registerTeacher(t *testing.T, schoolID, classID int64, email string) *models.Teacher {
	t.Helper()

	teacher, err := e.teacher.Register(context.Background(), &dto.TeacherRegisterRequest{
		Name:          "Teach",
		Email:         email,
		Password:      "secret123",
		SchoolID:      schoolID,
		TeachSclassID: classID,
	})
	require.NoError(t, err)
	return teacher
}
