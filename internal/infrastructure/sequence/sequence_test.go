package sequence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/academics"
	"github.com/sis/backend/internal/domain/numbering"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSequenceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.StudentModel{}))
	return db
}

func createTestStudent(t *testing.T, db *gorm.DB, studentNumber string) {
	t.Helper()
	student, err := academics.NewStudent(uuid.New(), studentNumber, uuid.New(), "2026", "Semester 1")
	require.NoError(t, err)
	require.NoError(t, db.Create(models.StudentModelFromDomain(student)).Error)
}

func TestCountSequence_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table starts at one", func(t *testing.T) {
		db := setupSequenceTestDB(t)
		seq := NewCountSequence(db)

		n, err := seq.Next(ctx, numbering.CounterStudents)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("follows the record count", func(t *testing.T) {
		db := setupSequenceTestDB(t)
		seq := NewCountSequence(db)

		createTestStudent(t, db, "STU-2026-0001")
		createTestStudent(t, db, "STU-2026-0002")

		n, err := seq.Next(ctx, numbering.CounterStudents)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("repeated calls without inserts repeat the number", func(t *testing.T) {
		db := setupSequenceTestDB(t)
		seq := NewCountSequence(db)
		createTestStudent(t, db, "STU-2026-0001")

		first, err := seq.Next(ctx, numbering.CounterStudents)
		require.NoError(t, err)
		second, err := seq.Next(ctx, numbering.CounterStudents)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unknown counter fails", func(t *testing.T) {
		db := setupSequenceTestDB(t)
		seq := NewCountSequence(db)

		_, err := seq.Next(ctx, "orders")
		assert.ErrorContains(t, err, "unknown sequence counter")
	})
}
