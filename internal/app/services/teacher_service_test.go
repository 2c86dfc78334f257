package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
)

func TestTeacherService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
	)

	teacher := env.registerTeacher(t, admin.ID, sclass.ID, "smith@school.test")
	assert.NotZero(t, teacher.ID)
	assert.Equal(t, models.RoleTeacher, teacher.Role)
	assert.Empty(t, teacher.Password)
	assert.Nil(t, teacher.TeachSubjectID)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := env.teacher.Register(ctx, &dto.TeacherRegisterRequest{
			Name:          "Other",
			Email:         "smith@school.test",
			Password:      "secret123",
			SchoolID:      admin.ID,
			TeachSclassID: sclass.ID,
		})
		require.Error(t, err)
		assert.Equal(t, "Email already exists", err.Error())
	})

	t.Run("registration with a subject sets both assignment sides", func(t *testing.T) {
		registered, err := env.teacher.Register(ctx, &dto.TeacherRegisterRequest{
			Name:           "Jones",
			Email:          "jones@school.test",
			Password:       "secret123",
			SchoolID:       admin.ID,
			TeachSclassID:  sclass.ID,
			TeachSubjectID: &subjects[0].ID,
		})
		require.NoError(t, err)
		require.NotNil(t, registered.TeachSubjectID)
		assert.Equal(t, subjects[0].ID, *registered.TeachSubjectID)

		subject, err := env.subject.GetDetail(ctx, subjects[0].ID)
		require.NoError(t, err)
		require.NotNil(t, subject.Teacher)
		assert.Equal(t, registered.ID, subject.Teacher.ID)
	})
}

func TestTeacherService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	teacher := env.registerTeacher(t, admin.ID, sclass.ID, "smith@school.test")

	t.Run("success", func(t *testing.T) {
		result, err := env.teacher.Login(ctx, &dto.TeacherLoginRequest{
			Email:    "smith@school.test",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, teacher.ID, result.ID)
		assert.NotEmpty(t, result.Token)
		assert.Empty(t, result.Password)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.teacher.Login(ctx, &dto.TeacherLoginRequest{
			Email:    "nobody@school.test",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Equal(t, "Teacher not found", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.teacher.Login(ctx, &dto.TeacherLoginRequest{
			Email:    "smith@school.test",
			Password: "wrong-password",
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid password", err.Error())
	})
}

func TestTeacherService_ListAndDetail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")

	_, err := env.teacher.List(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No teachers found", err.Error())

	teacher := env.registerTeacher(t, admin.ID, sclass.ID, "smith@school.test")
	env.registerTeacher(t, admin.ID, sclass.ID, "jones@school.test")

	teachers, err := env.teacher.List(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	for _, listed := range teachers {
		assert.Empty(t, listed.Password)
	}

	detail, err := env.teacher.GetDetail(ctx, teacher.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.TeachSclass)
	assert.Equal(t, "Class 1", detail.TeachSclass.SclassName)
	require.NotNil(t, detail.School)
	assert.Equal(t, "Riverside High", detail.School.SchoolName)

	_, err = env.teacher.GetDetail(ctx, 9999)
	require.Error(t, err)
	assert.Equal(t, "No teacher found", err.Error())
}

func TestTeacherService_AssignSubject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
	)
	teacher := env.registerTeacher(t, admin.ID, sclass.ID, "smith@school.test")

	assigned, err := env.teacher.AssignSubject(ctx, teacher.ID, subjects[0].ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.TeachSubjectID)
	assert.Equal(t, subjects[0].ID, *assigned.TeachSubjectID)
	require.NotNil(t, assigned.TeachSubject)
	assert.Equal(t, "Math", assigned.TeachSubject.SubName)

	subject, err := env.subject.GetDetail(ctx, subjects[0].ID)
	require.NoError(t, err)
	require.NotNil(t, subject.Teacher)
	assert.Equal(t, teacher.ID, subject.Teacher.ID)

	t.Run("absent subject", func(t *testing.T) {
		_, err := env.teacher.AssignSubject(ctx, teacher.ID, 9999)
		require.Error(t, err)
		assert.Equal(t, "No subject found", err.Error())
	})

	t.Run("absent teacher", func(t *testing.T) {
		_, err := env.teacher.AssignSubject(ctx, 9999, subjects[0].ID)
		require.Error(t, err)
		assert.Equal(t, "Teacher not found", err.Error())
	})
}

func TestTeacherService_DeleteOne_DetachesSubject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
	)
	teacher := env.registerTeacher(t, admin.ID, sclass.ID, "smith@school.test")
	_, err := env.teacher.AssignSubject(ctx, teacher.ID, subjects[0].ID)
	require.NoError(t, err)

	deleted, err := env.teacher.DeleteOne(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, deleted.ID)

	// The subject survives with no teacher assigned.
	subject, err := env.subject.GetDetail(ctx, subjects[0].ID)
	require.NoError(t, err)
	assert.Nil(t, subject.Teacher)

	_, err = env.teacher.DeleteOne(ctx, teacher.ID)
	require.Error(t, err)
	assert.Equal(t, "Teacher not found", err.Error())
}

func TestTeacherService_BulkDeletes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")

	_, err := env.teacher.DeleteAllForSchool(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No teachers found to delete", err.Error())

	env.registerTeacher(t, admin.ID, sclass.ID, "smith@school.test")
	env.registerTeacher(t, admin.ID, sclass.ID, "jones@school.test")

	deleted, err := env.teacher.DeleteAllForClass(ctx, sclass.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = env.teacher.DeleteAllForClass(ctx, sclass.ID)
	require.Error(t, err)
	assert.Equal(t, "No teachers found to delete", err.Error())
}
