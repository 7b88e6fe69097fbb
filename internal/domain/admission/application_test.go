package admission

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	app, err := NewApplication("APP-1773480413000-X7K2M", uuid.New(), "John", "Doe", "john.doe@example.com")
	require.NoError(t, err)
	return app
}

func TestNewApplication(t *testing.T) {
	t.Run("creates submitted application", func(t *testing.T) {
		app := newTestApplication(t)

		assert.Equal(t, ApplicationStatusSubmitted, app.Status)
		assert.Equal(t, "John Doe", app.FullName())
		assert.True(t, app.CanDecide())
		assert.False(t, app.ApplicationDate.IsZero())
	})

	t.Run("rejects empty application ID", func(t *testing.T) {
		_, err := NewApplication("", uuid.New(), "John", "Doe", "john@example.com")
		assert.ErrorContains(t, err, "Application ID")
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewApplication("APP-1-ABCDE", uuid.New(), "John", "Doe", "")
		assert.ErrorContains(t, err, "email")
	})

	t.Run("rejects nil program", func(t *testing.T) {
		_, err := NewApplication("APP-1-ABCDE", uuid.Nil, "John", "Doe", "john@example.com")
		assert.ErrorContains(t, err, "Program")
	})
}

func TestApplication_Approve(t *testing.T) {
	t.Run("records decision metadata", func(t *testing.T) {
		app := newTestApplication(t)
		approver := uuid.New()

		err := app.Approve(approver, "STU-2026-0001")
		require.NoError(t, err)

		assert.Equal(t, ApplicationStatusApproved, app.Status)
		assert.Equal(t, "STU-2026-0001", app.GeneratedStudentID)
		require.NotNil(t, app.ApprovedBy)
		assert.Equal(t, approver, *app.ApprovedBy)
		assert.NotNil(t, app.ApprovedAt)
		assert.False(t, app.CanDecide())
		assert.Equal(t, 2, app.Version)
	})

	t.Run("approving twice fails", func(t *testing.T) {
		app := newTestApplication(t)
		require.NoError(t, app.Approve(uuid.New(), "STU-2026-0001"))

		err := app.Approve(uuid.New(), "STU-2026-0002")
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("approving a rejected application fails", func(t *testing.T) {
		app := newTestApplication(t)
		require.NoError(t, app.Reject(uuid.New(), "incomplete documents"))

		err := app.Approve(uuid.New(), "STU-2026-0001")
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestApplication_Reject(t *testing.T) {
	t.Run("records reason and reviewer", func(t *testing.T) {
		app := newTestApplication(t)
		reviewer := uuid.New()

		err := app.Reject(reviewer, "grades below cutoff")
		require.NoError(t, err)

		assert.Equal(t, ApplicationStatusRejected, app.Status)
		assert.Equal(t, "grades below cutoff", app.RejectionReason)
		require.NotNil(t, app.RejectedBy)
		assert.Equal(t, reviewer, *app.RejectedBy)
	})

	t.Run("empty reason falls back to default", func(t *testing.T) {
		app := newTestApplication(t)

		require.NoError(t, app.Reject(uuid.New(), ""))
		assert.Equal(t, DefaultRejectionReason, app.RejectionReason)
	})

	t.Run("rejecting twice fails", func(t *testing.T) {
		app := newTestApplication(t)
		require.NoError(t, app.Reject(uuid.New(), ""))

		err := app.Reject(uuid.New(), "again")
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func TestApplicationStatus(t *testing.T) {
	assert.True(t, ApplicationStatusSubmitted.IsValid())
	assert.True(t, ApplicationStatusApproved.IsValid())
	assert.True(t, ApplicationStatusRejected.IsValid())
	assert.False(t, ApplicationStatus("pending").IsValid())

	assert.False(t, ApplicationStatusSubmitted.IsTerminal())
	assert.True(t, ApplicationStatusApproved.IsTerminal())
	assert.True(t, ApplicationStatusRejected.IsTerminal())
}
