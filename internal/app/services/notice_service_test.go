package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/schoolhub/internal/app/models/dto"
)

func TestNoticeService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := env.notice.List(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No notices found", err.Error())

	notice, err := env.notice.Create(ctx, &dto.NoticeCreateRequest{
		Title:   "Sports Day",
		Details: "Annual sports day on the main field.",
		Date:    date,
		AdminID: admin.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, notice.ID)

	notices, err := env.notice.List(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, notices, 1)

	updated, err := env.notice.Update(ctx, notice.ID, &dto.NoticeUpdateRequest{
		Title:   "Sports Day (rescheduled)",
		Details: "Moved to the following week.",
		Date:    date.AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sports Day (rescheduled)", updated.Title)

	_, err = env.notice.Update(ctx, 9999, &dto.NoticeUpdateRequest{
		Title:   "x",
		Details: "x",
		Date:    date,
	})
	require.Error(t, err)
	assert.Equal(t, "Notice not found", err.Error())

	deleted, err := env.notice.DeleteOne(ctx, notice.ID)
	require.NoError(t, err)
	assert.Equal(t, notice.ID, deleted.ID)

	_, err = env.notice.DeleteOne(ctx, notice.ID)
	require.Error(t, err)
	assert.Equal(t, "Notice not found", err.Error())

	_, err = env.notice.DeleteAllForSchool(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No notices found to delete", err.Error())

	for i := 0; i < 3; i++ {
		_, err := env.notice.Create(ctx, &dto.NoticeCreateRequest{
			Title:   "Notice",
			Details: "Details",
			Date:    date,
			AdminID: admin.ID,
		})
		require.NoError(t, err)
	}
	count, err := env.notice.DeleteAllForSchool(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestComplainService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	sclass := env.createClass(t, admin.ID, "Class 1")
	student := env.registerStudent(t, admin.ID, sclass.ID, "Alice", 1)

	_, err := env.complain.List(ctx, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "No complains found", err.Error())

	complain, err := env.complain.Create(ctx, &dto.ComplainCreateRequest{
		UserID:      student.ID,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Broken chair in the classroom.",
		SchoolID:    admin.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, complain.ID)

	complains, err := env.complain.List(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, complains, 1)
	assert.Equal(t, "Broken chair in the classroom.", complains[0].Description)
}
