package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/admission"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockApplicationRepository creates a GormApplicationRepository with a
// mocked SQL connection
func newMockApplicationRepository(t *testing.T) (*GormApplicationRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormApplicationRepository(gormDB), mock, mockDB
}

func TestGormApplicationRepository_FindByApplicationID(t *testing.T) {
	t.Run("finds existing application", func(t *testing.T) {
		repo, mock, mockDB := newMockApplicationRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		programID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "application_id", "status", "first_name", "last_name", "email", "program_id"}).
			AddRow(id, "APP-1773480413000-X7K2M", "submitted", "John", "Doe", "john@example.com", programID)

		mock.ExpectQuery(`SELECT \* FROM "applications" WHERE application_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("APP-1773480413000-X7K2M", 1).
			WillReturnRows(rows)

		app, err := repo.FindByApplicationID(context.Background(), "APP-1773480413000-X7K2M")

		require.NoError(t, err)
		assert.Equal(t, id, app.ID)
		assert.Equal(t, "APP-1773480413000-X7K2M", app.ApplicationID)
		assert.Equal(t, admission.ApplicationStatusSubmitted, app.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps record-not-found", func(t *testing.T) {
		repo, mock, mockDB := newMockApplicationRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "applications" WHERE application_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("APP-0-MISSING", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByApplicationID(context.Background(), "APP-0-MISSING")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormApplicationRepository_FindAll(t *testing.T) {
	t.Run("applies status filter and pagination", func(t *testing.T) {
		repo, mock, mockDB := newMockApplicationRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "application_id", "status", "email"}).
			AddRow(uuid.New(), "APP-1-AAAAA", "submitted", "a@example.com").
			AddRow(uuid.New(), "APP-2-BBBBB", "submitted", "b@example.com")

		mock.ExpectQuery(`SELECT \* FROM "applications" WHERE status = \$1 ORDER BY application_date DESC LIMIT .* OFFSET .*`).
			WithArgs("submitted", 10, 20).
			WillReturnRows(rows)

		apps, err := repo.FindAll(context.Background(), admission.ApplicationFilter{
			Status: admission.ApplicationStatusSubmitted,
			Limit:  10,
			Offset: 20,
		})

		require.NoError(t, err)
		assert.Len(t, apps, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty filter lists everything", func(t *testing.T) {
		repo, mock, mockDB := newMockApplicationRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "application_id", "status", "email"})

		mock.ExpectQuery(`SELECT \* FROM "applications" ORDER BY application_date DESC`).
			WillReturnRows(rows)

		apps, err := repo.FindAll(context.Background(), admission.ApplicationFilter{})

		require.NoError(t, err)
		assert.Empty(t, apps)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormApplicationRepository_Count(t *testing.T) {
	repo, mock, mockDB := newMockApplicationRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "applications" WHERE status = \$1`).
		WithArgs("submitted").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background(), admission.ApplicationFilter{
		Status: admission.ApplicationStatusSubmitted,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
