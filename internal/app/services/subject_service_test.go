package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/schoolhub/internal/app/models/dto"
)

func TestSubjectService_CreateBatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	other := env.registerAdmin(t, "mark@school.test", "Lakeside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	otherClass := env.createClass(t, other.ID, "Class 1")

	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
		dto.SubjectInput{SubName: "Physics", SubCode: "PHY", Sessions: 8},
	)
	require.Len(t, subjects, 2)
	assert.NotZero(t, subjects[0].ID)

	t.Run("code collision with existing subject rejects the batch", func(t *testing.T) {
		_, err := env.subject.CreateBatch(ctx, &dto.SubjectCreateRequest{
			Subjects: []dto.SubjectInput{
				{SubName: "Chemistry", SubCode: "CHM", Sessions: 6},
				{SubName: "Mathematics II", SubCode: "MTH", Sessions: 6},
			},
			AdminID:  admin.ID,
			SclassID: sclass.ID,
		})
		require.Error(t, err)
		assert.Equal(t, "Sorry this subcode must be unique as it already exists", err.Error())

		// Nothing from the rejected batch landed.
		listed, err := env.subject.ListForSchool(ctx, admin.ID)
		require.NoError(t, err)
		assert.Len(t, listed, 2)
	})

	t.Run("collision inside the batch rejects the batch", func(t *testing.T) {
		_, err := env.subject.CreateBatch(ctx, &dto.SubjectCreateRequest{
			Subjects: []dto.SubjectInput{
				{SubName: "Biology", SubCode: "BIO", Sessions: 6},
				{SubName: "Biotech", SubCode: "BIO", Sessions: 6},
			},
			AdminID:  admin.ID,
			SclassID: sclass.ID,
		})
		require.Error(t, err)
		assert.Equal(t, "Sorry this subcode must be unique as it already exists", err.Error())
	})

	t.Run("same code in another school is allowed", func(t *testing.T) {
		created := env.createSubjects(t, other.ID, otherClass.ID,
			dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
		)
		assert.Len(t, created, 1)
	})
}

func TestSubjectService_Lists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")

	for _, list := range []func() error{
		func() error { _, err := env.subject.ListForSchool(ctx, admin.ID); return err },
		func() error { _, err := env.subject.ListForClass(ctx, sclass.ID); return err },
		func() error { _, err := env.subject.ListFreeForClass(ctx, sclass.ID); return err },
	} {
		err := list()
		require.Error(t, err)
		assert.Equal(t, "No subjects found", err.Error())
	}

	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
		dto.SubjectInput{SubName: "Physics", SubCode: "PHY", Sessions: 8},
	)

	teacher := env.registerTeacher(t, admin.ID, sclass.ID, "teach@school.test")
	_, err := env.teacher.AssignSubject(ctx, teacher.ID, subjects[0].ID)
	require.NoError(t, err)

	free, err := env.subject.ListFreeForClass(ctx, sclass.ID)
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "Physics", free[0].SubName)

	detail, err := env.subject.GetDetail(ctx, subjects[0].ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Teacher)
	assert.Equal(t, teacher.ID, detail.Teacher.ID)

	_, err = env.subject.GetDetail(ctx, 9999)
	require.Error(t, err)
	assert.Equal(t, "No subject found", err.Error())
}

func TestSubjectService_DeleteOne_DetachesTeacher(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	subjects := env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
	)
	teacher := env.registerTeacher(t, admin.ID, sclass.ID, "teach@school.test")
	_, err := env.teacher.AssignSubject(ctx, teacher.ID, subjects[0].ID)
	require.NoError(t, err)

	deleted, err := env.subject.DeleteOne(ctx, subjects[0].ID)
	require.NoError(t, err)
	assert.Equal(t, subjects[0].ID, deleted.ID)

	// The teacher survives with no subject assignment.
	detail, err := env.teacher.GetDetail(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.TeachSubjectID)

	_, err = env.subject.DeleteOne(ctx, subjects[0].ID)
	require.Error(t, err)
	assert.Equal(t, "Subject not found", err.Error())
}

func TestSubjectService_BulkDeletes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")

	_, err := env.subject.DeleteAllForClass(ctx, sclass.ID)
	require.Error(t, err)
	assert.Equal(t, "No subjects found to delete", err.Error())

	env.createSubjects(t, admin.ID, sclass.ID,
		dto.SubjectInput{SubName: "Math", SubCode: "MTH", Sessions: 10},
		dto.SubjectInput{SubName: "Physics", SubCode: "PHY", Sessions: 8},
	)

	deleted, err := env.subject.DeleteAllForClass(ctx, sclass.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = env.subject.DeleteAllForSchool(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No subjects found to delete", err.Error())
}
