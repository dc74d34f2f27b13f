//go:build integration

package router

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsportal/config"
	"newsportal/database"
)

// TestAPISuitePostgres runs the API suite against a migrated PostgreSQL
// container, exercising the goose migrations and row locking.
func TestAPISuitePostgres(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("newsportal"),
		postgres.WithUsername("newsportal"),
		postgres.WithPassword("newsportal"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(&config.DatabaseConfig{URL: connStr}, "error")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	s := &APITestSuite{}
	s.openDB = func() *database.DB {
		require.NoError(s.T(), db.Exec(
			"TRUNCATE TABLE comments, article_tags, articles, tags, blogs, categories, users RESTART IDENTITY CASCADE",
		).Error)
		return db
	}
	suite.Run(t, s)
}
