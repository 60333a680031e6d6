package tests

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-appointments/internal/server/config"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/models"
	"github.com/IvanChernomyrdin/go-appointments/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-appointments/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-appointments/internal/shared/logger"
)

const migrationsURL = "file://../../../../migrations/postgres"

// openTestDB поднимает схему в базе из TEST_POSTGRES_DSN и чистит таблицы.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping integration test")
	}

	log := logger.New(logger.Options{File: filepath.Join(t.TempDir(), "it.log")})

	db, err := config.OpenDB(context.Background(), config.DBConfig{DSN: dsn, MaxOpenConns: 16, MaxIdleConns: 4}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, config.Migrate(db, migrationsURL, log))

	_, err = db.Exec(`TRUNCATE appointments, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return db
}

func TestPostgres_DuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUsersRepository(db)
	ctx := context.Background()

	_, err := users.Create(ctx, "alice", "h1")
	require.NoError(t, err)

	_, err = users.Create(ctx, "alice", "h2")
	require.ErrorIs(t, err, serr.ErrAlreadyExists)

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

// из параллельных регистраций одного username проходит ровно одна
func TestPostgres_ConcurrentRegistration(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUsersRepository(db)

	const n = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, dups int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := users.Create(context.Background(), "racer", "hash")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, serr.ErrAlreadyExists):
				dups++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, ok)
	require.Equal(t, n-1, dups)
}

func TestPostgres_AppointmentRoundTripAndCascade(t *testing.T) {
	db := openTestDB(t)
	users := repository.NewUsersRepository(db)
	appts := repository.NewAppointmentsRepository(db)
	ctx := context.Background()

	aliceID, err := users.Create(ctx, "alice", "h")
	require.NoError(t, err)

	_, err = appts.Create(ctx, models.Appointment{
		Title: "Dentist", Company: "Acme", Date: day("2024-01-05"), Time: "09:00", UserID: aliceID,
	})
	require.NoError(t, err)

	list, err := appts.ListByUserID(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Dentist", list[0].Title)
	require.Equal(t, "2024-01-05", list[0].Date.Format(models.DateLayout))
	require.Equal(t, aliceID, list[0].UserID)

	// несуществующий владелец отбивается внешним ключом
	_, err = appts.Create(ctx, models.Appointment{Title: "x", Company: "y", Date: day("2024-01-05"), Time: "1", UserID: aliceID + 100})
	require.ErrorIs(t, err, serr.ErrUserNotFound)

	// удаление пользователя уносит его встречи
	require.NoError(t, users.Delete(ctx, aliceID))

	all, err := appts.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
