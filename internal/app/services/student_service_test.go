package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
)

func TestStudentService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	other := env.registerAdmin(t, "mark@school.test", "Lakeside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	otherClass := env.createClass(t, other.ID, "Class 1")

	student := env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)
	assert.NotZero(t, student.ID)
	assert.Equal(t, models.RoleStudent, student.Role)
	assert.Empty(t, student.Password)

	t.Run("duplicate roll number within the school", func(t *testing.T) {
		_, err := env.student.Register(ctx, &dto.StudentRegisterRequest{
			Name:     "Bob",
			RollNum:  1,
			Password: "secret123",
			SclassID: sclass.ID,
			AdminID:  admin.ID,
		})
		require.Error(t, err)
		assert.Equal(t, "Roll Number already exists", err.Error())
	})

	t.Run("same roll number in another school is allowed", func(t *testing.T) {
		student := env.registerStudent(t, other.ID, otherClass.ID, "Alice", 1)
		assert.Equal(t, other.ID, student.SchoolID)
	})
}

func TestStudentService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	student := env.registerStudent(t, admin.ID, sclass.ID, "Alice", 7)

	t.Run("success", func(t *testing.T) {
		result, err := env.student.Login(ctx, &dto.StudentLoginRequest{
			RollNum:     7,
			StudentName: "Alice",
			Password:    "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, student.ID, result.ID)
		assert.NotEmpty(t, result.Token)
		assert.Empty(t, result.Password)
	})

	t.Run("unknown roll and name pair", func(t *testing.T) {
		_, err := env.student.Login(ctx, &dto.StudentLoginRequest{
			RollNum:     7,
			StudentName: "Bob",
			Password:    "secret123",
		})
		require.Error(t, err)
		assert.Equal(t, "Student not found", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.student.Login(ctx, &dto.StudentLoginRequest{
			RollNum:     7,
			StudentName: "Alice",
			Password:    "wrong-password",
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid password", err.Error())
	})
}

func TestStudentService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	student := env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)
	env.registerStudent(t, admin.ID, sclass.ID, "Bob", 2)

	name := "Alice Cooper"
	updated, err := env.student.Update(ctx, student.ID, &dto.StudentUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, 1, updated.RollNum, "untouched fields survive")

	t.Run("roll number collision", func(t *testing.T) {
		taken := 2
		_, err := env.student.Update(ctx, student.ID, &dto.StudentUpdateRequest{RollNum: &taken})
		require.Error(t, err)
		assert.Equal(t, "Roll Number already exists", err.Error())
	})

	t.Run("new password is usable for login", func(t *testing.T) {
		password := "changed-secret"
		_, err := env.student.Update(ctx, student.ID, &dto.StudentUpdateRequest{Password: &password})
		require.NoError(t, err)

		_, err = env.student.Login(ctx, &dto.StudentLoginRequest{
			RollNum:     1,
			StudentName: "Alice Cooper",
			Password:    "changed-secret",
		})
		require.NoError(t, err)
	})

	t.Run("absent student", func(t *testing.T) {
		_, err := env.student.Update(ctx, 9999, &dto.StudentUpdateRequest{Name: &name})
		require.Error(t, err)
		assert.Equal(t, "Student not found", err.Error())
	})
}

func TestStudentService_Attendance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
	)
	student := env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)

	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	entry, err := env.student.RecordAttendance(ctx, student.ID, &dto.AttendanceRequest{
		SubjectID: subjects[0].ID,
		Date:      day1,
		Status:    models.AttendancePresent,
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)

	t.Run("second entry for the same date is rejected", func(t *testing.T) {
		_, err := env.student.RecordAttendance(ctx, student.ID, &dto.AttendanceRequest{
			SubjectID: subjects[0].ID,
			Date:      day1,
			Status:    models.AttendanceAbsent,
		})
		require.Error(t, err)
		assert.Equal(t, "Attendance already taken for this date", err.Error())
	})

	t.Run("another date accumulates history", func(t *testing.T) {
		_, err := env.student.RecordAttendance(ctx, student.ID, &dto.AttendanceRequest{
			SubjectID: subjects[0].ID,
			Date:      day2,
			Status:    models.AttendanceAbsent,
		})
		require.NoError(t, err)

		detail, err := env.student.GetDetail(ctx, student.ID)
		require.NoError(t, err)
		assert.Len(t, detail.Attendance, 2)
	})

	t.Run("absent student", func(t *testing.T) {
		_, err := env.student.RecordAttendance(ctx, 9999, &dto.AttendanceRequest{
			SubjectID: subjects[0].ID,
			Date:      day1,
			Status:    models.AttendancePresent,
		})
		require.Error(t, err)
		assert.Equal(t, "Student not found", err.Error())
	})

	t.Run("remove for one subject", func(t *testing.T) {
		modified, err := env.student.RemoveAttendanceForSubject(ctx, student.ID, subjects[0].ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), modified)

		// Removing again is a valid zero-count outcome.
		modified, err = env.student.RemoveAttendanceForSubject(ctx, student.ID, subjects[0].ID)
		require.NoError(t, err)
		assert.Zero(t, modified)
	})
}

func TestStudentService_ClearAttendance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
		dto.SubjectInput{SubName: "Physics", SubCode: "PHY", Sessions: 8},
	)
	alice := env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)
	bob := env.registerStudent(t, admin.ID, sclass.ID, "Bob", 2)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, studentID := range []int64{alice.ID, bob.ID} {
		for _, subject := range subjects {
			_, err := env.student.RecordAttendance(ctx, studentID, &dto.AttendanceRequest{
				SubjectID: subject.ID,
				Date:      day,
				Status:    models.AttendancePresent,
			})
			require.NoError(t, err)
		}
	}

	modified, err := env.student.ClearAttendanceBySubject(ctx, subjects[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), modified)

	modified, err = env.student.ClearAttendanceBySchool(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), modified, "only the physics rows remain to clear")
}

func TestStudentService_ExamResults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
	)
	student := env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)

	result, err := env.student.UpdateExamResult(ctx, student.ID, &dto.ExamResultRequest{
		SubjectID:     subjects[0].ID,
		MarksObtained: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, result.MarksObtained)

	// A repeated submission replaces the mark instead of adding a row.
	_, err = env.student.UpdateExamResult(ctx, student.ID, &dto.ExamResultRequest{
		SubjectID:     subjects[0].ID,
		MarksObtained: 85,
	})
	require.NoError(t, err)

	detail, err := env.student.GetDetail(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, detail.ExamResults, 1)
	assert.Equal(t, 85, detail.ExamResults[0].MarksObtained)

	_, err = env.student.UpdateExamResult(ctx, 9999, &dto.ExamResultRequest{
		SubjectID:     subjects[0].ID,
		MarksObtained: 60,
	})
	require.Error(t, err)
	assert.Equal(t, "Student not found", err.Error())
}

func TestStudentService_Deletes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")

	_, err := env.student.DeleteAllForSchool(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No students found to delete", err.Error())

	alice := env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)
	env.registerStudent(t, admin.ID, sclass.ID, "Bob", 2)

	deleted, err := env.student.DeleteOne(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, deleted.ID)

	_, err = env.student.DeleteOne(ctx, alice.ID)
	require.Error(t, err)
	assert.Equal(t, "No student found to delete", err.Error())

	count, err := env.student.DeleteAllForClass(ctx, sclass.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = env.student.DeleteAllForClass(ctx, sclass.ID)
	require.Error(t, err)
	assert.Equal(t, "No students found to delete", err.Error())
}
