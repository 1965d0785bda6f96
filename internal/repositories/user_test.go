package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lynkr/lynkr-backend/internal/models"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		external_id TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		username VARCHAR(30) UNIQUE,
		first_name TEXT,
		last_name TEXT,
		avatar_url TEXT,
		bio VARCHAR(500),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func strPtr(s string) *string { return &s }

func TestUserWriteRepository_Upsert(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	first, err := writeRepo.Upsert(ctx, models.Principal{
		ExternalID: "ext-1",
		Email:      "john@example.com",
		FirstName:  strPtr("John"),
	})
	assert.NoError(t, err)
	assert.NotNil(t, first)
	assert.Equal(t, "ext-1", first.ExternalID)
	assert.Equal(t, "john@example.com", first.Email)
	assert.Nil(t, first.Username)

	// Claim a username, then sign in again with changed display fields.
	_, err = writeRepo.SetUsername(ctx, "ext-1", "john")
	assert.NoError(t, err)

	second, err := writeRepo.Upsert(ctx, models.Principal{
		ExternalID: "ext-1",
		Email:      "john.doe@example.com",
		FirstName:  strPtr("Johnny"),
	})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "john.doe@example.com", second.Email)
	assert.Equal(t, "Johnny", *second.FirstName)

	// The refresh never touches the claimed username.
	assert.NotNil(t, second.Username)
	assert.Equal(t, "john", *second.Username)
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Upsert(ctx, models.Principal{ExternalID: "ext-1", Email: "john@example.com"})
	require.NoError(t, err)
	_, err = writeRepo.SetUsername(ctx, "ext-1", "john")
	require.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "john")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "ext-1", user.ExternalID)
	})

	t.Run("ByUsernameMissing", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ByExternalID", func(t *testing.T) {
		user, err := readRepo.GetByExternalID(ctx, "ext-1")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "john", *user.Username)
	})

	t.Run("ByExternalIDMissing", func(t *testing.T) {
		user, err := readRepo.GetByExternalID(ctx, "ext-unknown")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_SetUsername(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Upsert(ctx, models.Principal{ExternalID: "ext-1", Email: "john@example.com"})
	require.NoError(t, err)
	_, err = writeRepo.Upsert(ctx, models.Principal{ExternalID: "ext-2", Email: "jane@example.com"})
	require.NoError(t, err)

	t.Run("Assigns", func(t *testing.T) {
		user, err := writeRepo.SetUsername(ctx, "ext-1", "john")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "john", *user.Username)
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		user, err := writeRepo.SetUsername(ctx, "ext-2", "john")
		assert.ErrorIs(t, err, ErrUniqueViolation)
		assert.Nil(t, user)
	})

	t.Run("UnknownPrincipal", func(t *testing.T) {
		user, err := writeRepo.SetUsername(ctx, "ext-unknown", "somebody")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_SetUsername_ConcurrentClaims(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Upsert(ctx, models.Principal{ExternalID: "ext-1", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = writeRepo.Upsert(ctx, models.Principal{ExternalID: "ext-2", Email: "b@example.com"})
	require.NoError(t, err)

	// Both users race for the same username; the unique index must
	// leave exactly one winner.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, ext := range []string{"ext-1", "ext-2"} {
		wg.Add(1)
		go func(i int, ext string) {
			defer wg.Done()
			_, errs[i] = writeRepo.SetUsername(ctx, ext, "popular")
		}(i, ext)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrUniqueViolation)
		}
	}
	assert.Equal(t, 1, winners)

	holder, err := readRepo.GetByUsername(ctx, "popular")
	assert.NoError(t, err)
	assert.NotNil(t, holder)
}
