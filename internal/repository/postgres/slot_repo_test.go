package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@localhost:5432/tabi?sslmode=disable", "pgx5://u:p@localhost:5432/tabi?sslmode=disable"},
		{"postgresql://localhost/tabi", "pgx5://localhost/tabi"},
		{"pgx5://localhost/tabi", "pgx5://localhost/tabi"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, migrateURL(tt.in))
	}
}

// Runs only when TEST_DATABASE_URL points at a disposable database
func TestSlotRepository_Postgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	require.NoError(t, RunMigrations(url))
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewSlotRepository(pool)
	key := "test_" + t.Name()
	t.Cleanup(func() { _ = repo.Delete(ctx, key) })

	_, err = repo.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)

	require.NoError(t, repo.Set(ctx, key, "one"))
	require.NoError(t, repo.Set(ctx, key, "two"))
	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "two", got)

	require.NoError(t, repo.Delete(ctx, key))
	_, err = repo.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}
