package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhawk/taskhawk-api/internal/core/domain"

	_ "github.com/lib/pq"
)

func setupUserTestDB(t *testing.T) *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "taskhawk_user"
	}
	dbPass := os.Getenv("DB_PASSWORD")
	if dbPass == "" {
		dbPass = "secret"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "taskhawk_db"
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Skipf("Skipping integration tests: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("Skipping integration tests: database unreachable: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(uuid.NewString(), "Test User", email)
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("passwordStrong123"))
	return user
}

func TestPostgresUserRepository_Create(t *testing.T) {
	db := setupUserTestDB(t)
	defer db.Close()

	repo := NewPostgresUserRepository(db)
	ctx := context.Background()

	t.Run("Should create a user successfully", func(t *testing.T) {
		email := fmt.Sprintf("test_%s@example.com", uuid.NewString())
		user := newTestUser(t, email)

		require.NoError(t, repo.Create(ctx, user))

		saved, err := repo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, saved.ID)
		assert.Equal(t, "Test User", saved.Name)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.False(t, saved.UpdatedAt.IsZero())
	})

	t.Run("Should fail on duplicate email", func(t *testing.T) {
		email := fmt.Sprintf("duplicate_%s@example.com", uuid.NewString())

		first := newTestUser(t, email)
		require.NoError(t, repo.Create(ctx, first))

		second := newTestUser(t, email)
		err := repo.Create(ctx, second)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestPostgresUserRepository_GetByID(t *testing.T) {
	db := setupUserTestDB(t)
	defer db.Close()

	repo := NewPostgresUserRepository(db)
	ctx := context.Background()

	t.Run("Should retrieve existing user by ID", func(t *testing.T) {
		email := fmt.Sprintf("id_test_%s@example.com", uuid.NewString())
		user := newTestUser(t, email)
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.GetByID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
	})

	t.Run("Should return ErrUserNotFound for non-existent ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgresUserRepository_GetByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	defer db.Close()

	repo := NewPostgresUserRepository(db)
	ctx := context.Background()

	t.Run("Should retrieve existing user by Email", func(t *testing.T) {
		email := fmt.Sprintf("email_test_%s@example.com", uuid.NewString())
		user := newTestUser(t, email)
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.GetByEmail(ctx, email)

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("Should return ErrUserNotFound for non-existent email", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nonexistent@ghost.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
