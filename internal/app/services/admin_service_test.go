package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/schoolhub/internal/app/models"
	"github.com/emre/schoolhub/internal/app/models/dto"
	"github.com/emre/schoolhub/internal/pkg/apperrors"
)

func TestAdminService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")
	assert.NotZero(t, admin.ID)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Empty(t, admin.Password, "password must not leave the service")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := env.admin.Register(ctx, &dto.AdminRegisterRequest{
			Name:       "Other",
			Email:      "jane@school.test",
			Password:   "secret123",
			SchoolName: "Lakeside High",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsDomain(err))
		assert.Equal(t, "Email already exists", err.Error())
	})

	t.Run("duplicate school name", func(t *testing.T) {
		_, err := env.admin.Register(ctx, &dto.AdminRegisterRequest{
			Name:       "Other",
			Email:      "other@school.test",
			Password:   "secret123",
			SchoolName: "Riverside High",
		})
		require.Error(t, err)
		assert.Equal(t, "School name already exists", err.Error())
	})
}

func TestAdminService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")

	t.Run("success", func(t *testing.T) {
		result, err := env.admin.Login(ctx, &dto.AdminLoginRequest{
			Email:    "jane@school.test",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, admin.ID, result.ID)
		assert.Equal(t, "Riverside High", result.SchoolName)
		assert.NotEmpty(t, result.Token)
		assert.Empty(t, result.Password)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.admin.Login(ctx, &dto.AdminLoginRequest{
			Email:    "nobody@school.test",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Equal(t, "User not found", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.admin.Login(ctx, &dto.AdminLoginRequest{
			Email:    "jane@school.test",
			Password: "wrong-password",
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid password", err.Error())
	})
}

func TestAdminService_GetDetail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.registerAdmin(t, "jane@school.test", "Riverside High")

	found, err := env.admin.GetDetail(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)
	assert.Empty(t, found.Password)

	_, err = env.admin.GetDetail(ctx, 9999)
	require.Error(t, err)
	assert.Equal(t, "No admin found", err.Error())
}
