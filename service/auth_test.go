package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halaqat/domain"
	"halaqat/repository"
)

const testSecret = "test-secret-key-that-is-long-enough!"

func TestLoginTeacherIssuesToken(t *testing.T) {
	store := repository.NewMemoryStorage(true)
	authUC := NewAuthService(store, testSecret)
	ctx := context.Background()

	teacher, token := authUC.LoginTeacher(ctx, "abdalrazaq", "123456")
	require.NotNil(t, teacher)
	require.NotEmpty(t, token)

	subject, role, err := authUC.GetAccessTokenManager().VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, subject)
	assert.Equal(t, domain.RoleTeacher, role)
}

func TestLoginTeacherRejectsBadCredentials(t *testing.T) {
	store := repository.NewMemoryStorage(true)
	authUC := NewAuthService(store, testSecret)
	ctx := context.Background()

	teacher, token := authUC.LoginTeacher(ctx, "abdalrazaq", "wrong")
	assert.Nil(t, teacher)
	assert.Empty(t, token)

	teacher, token = authUC.LoginTeacher(ctx, "nobody", "123456")
	assert.Nil(t, teacher)
	assert.Empty(t, token)
}

func TestLoginParent(t *testing.T) {
	store := repository.NewMemoryStorage(false)
	authUC := NewAuthService(store, testSecret)
	ctx := context.Background()

	created, err := store.CreateParent(ctx, &domain.InsertParent{
		Username:   "parent1",
		Password:   "123456",
		FatherName: "أحمد محمد",
		Phone:      "0505123456",
	})
	require.NoError(t, err)

	parent, token := authUC.LoginParent(ctx, "parent1", "123456")
	require.NotNil(t, parent)
	require.NotEmpty(t, token)
	assert.Equal(t, created.ID, parent.ID)

	subject, role, err := authUC.GetAccessTokenManager().VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, subject)
	assert.Equal(t, domain.RoleParent, role)
}

func TestCurrentAccount(t *testing.T) {
	store := repository.NewMemoryStorage(true)
	authUC := NewAuthService(store, testSecret)
	ctx := context.Background()

	teacher, _ := authUC.LoginTeacher(ctx, "hassan", "123456")
	require.NotNil(t, teacher)

	account := authUC.CurrentAccount(ctx, teacher.ID, domain.RoleTeacher)
	require.NotNil(t, account)
	resolved, ok := account.(*domain.Teacher)
	require.True(t, ok)
	assert.Equal(t, teacher.ID, resolved.ID)

	assert.Nil(t, authUC.CurrentAccount(ctx, "gone", domain.RoleTeacher))
	assert.Nil(t, authUC.CurrentAccount(ctx, teacher.ID, domain.RoleParent))
	assert.Nil(t, authUC.CurrentAccount(ctx, teacher.ID, "admin"))
}
