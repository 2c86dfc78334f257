package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/schoolhub/internal/app/models/dto"
)

func TestSclassService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	other := env.registerAdmin(t, "mark@school.test", "Lakeside High")

	sclass := env.createClass(t, admin.ID, "Class 1")
	assert.NotZero(t, sclass.ID)
	assert.Equal(t, admin.ID, sclass.SchoolID)

	t.Run("duplicate name within the school", func(t *testing.T) {
		_, err := env.sclass.Create(ctx, &dto.SclassCreateRequest{
			SclassName: "Class 1",
			AdminID:    admin.ID,
		})
		require.Error(t, err)
		assert.Equal(t, "Sorry this class name already exists", err.Error())
	})

	t.Run("same name in another school is allowed", func(t *testing.T) {
		sclass, err := env.sclass.Create(ctx, &dto.SclassCreateRequest{
			SclassName: "Class 1",
			AdminID:    other.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, other.ID, sclass.SchoolID)
	})
}

func TestSclassService_ListAndDetail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")

	_, err := env.sclass.List(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No sclasses found", err.Error())

	created := env.createClass(t, admin.ID, "Class 1")
	env.createClass(t, admin.ID, "Class 2")

	sclasses, err := env.sclass.List(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, sclasses, 2)
	require.NotNil(t, sclasses[0].School)
	assert.Equal(t, "Riverside High", sclasses[0].School.SchoolName)

	detail, err := env.sclass.GetDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Class 1", detail.SclassName)

	_, err = env.sclass.GetDetail(ctx, 9999)
	require.Error(t, err)
	assert.Equal(t, "No class found", err.Error())
}

func TestSclassService_ListStudents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")

	_, err := env.sclass.ListStudents(ctx, sclass.ID)
	require.Error(t, err)
	assert.Equal(t, "No students found", err.Error())

	env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)
	env.registerStudent(t, admin.ID, sclass.ID, "Bob", 2)

	students, err := env.sclass.ListStudents(ctx, sclass.ID)
	require.NoError(t, err)
	require.Len(t, students, 2)
	for _, student := range students {
		assert.Empty(t, student.Password)
	}
}

func TestSclassService_DeleteOne_Cascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	keep := env.createClass(t, admin.ID, "Class 2")

	env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)
	env.registerStudent(t, admin.ID, sclass.ID, "Bob", 2)
	env.registerStudent(t, admin.ID, keep.ID, "Carol", 1)

	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
	)
	teacher := env.registerTeacher(t, admin.ID, sclass.ID, "teach@school.test")
	_, err := env.teacher.AssignSubject(ctx, teacher.ID, subjects[0].ID)
	require.NoError(t, err)

	deleted, outcome, err := env.sclass.DeleteOne(ctx, sclass.ID)
	require.NoError(t, err)
	assert.Equal(t, sclass.ID, deleted.ID)
	require.NotNil(t, outcome)
	assert.Equal(t, int64(2), outcome.StudentsDeleted)
	assert.Equal(t, int64(1), outcome.SubjectsDeleted)
	assert.Equal(t, int64(1), outcome.TeachersDeleted)
	assert.Empty(t, outcome.FailedStores)

	// The class is gone, the sibling class and its student survive.
	_, err = env.sclass.GetDetail(ctx, sclass.ID)
	require.Error(t, err)
	students, err := env.student.ListForSchool(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Carol", students[0].Name)
}

func TestSclassService_DeleteOne_AbsentPerformsNoCascade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)

	_, outcome, err := env.sclass.DeleteOne(ctx, 9999)
	require.Error(t, err)
	assert.Equal(t, "Class not found", err.Error())
	assert.Nil(t, outcome)

	students, err := env.student.ListForSchool(ctx, admin.ID)
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestSclassService_DeleteAllForSchool(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")

	_, _, err := env.sclass.DeleteAllForSchool(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No classes found to delete", err.Error())

	c1 := env.createClass(t, admin.ID, "Class 1")
	c2 := env.createClass(t, admin.ID, "Class 2")
	env.registerStudent(t, admin.ID, c1.ID, "Alice", 1)
	env.registerStudent(t, admin.ID, c2.ID, "Bob", 1)

	deleted, outcome, err := env.sclass.DeleteAllForSchool(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, int64(2), outcome.StudentsDeleted)
}
