package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/models"
	"newsportal/repositories"
	"newsportal/testdb"
)

func TestUserService(t *testing.T) {
	db := testdb.New(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	admin := testdb.User(t, db, "admin@example.com", models.RoleAdmin)
	reader := testdb.User(t, db, "reader@example.com", models.RoleUser)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	updated, err := svc.UpdateRole(ctx, reader.ID, models.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, updated.Role)

	_, err = svc.UpdateRole(ctx, reader.ID, "SUPERUSER")
	assert.IsType(t, models.ErrorValidation{}, err)

	_, err = svc.UpdateRole(ctx, 999, models.RoleUser)
	assert.IsType(t, models.ErrorNotFound{}, err)

	assert.IsType(t, models.ErrorValidation{}, svc.Delete(ctx, admin.ID, admin.ID))
	require.NoError(t, svc.Delete(ctx, reader.ID, admin.ID))
	assert.IsType(t, models.ErrorNotFound{}, svc.Delete(ctx, reader.ID, admin.ID))
}
