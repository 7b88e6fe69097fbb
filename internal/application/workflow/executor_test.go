package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("runs all steps in order", func(t *testing.T) {
		executor := NewExecutor(nil)
		var order []string

		err := executor.Execute(ctx, "test", []Step{
			{Name: "first", Criticality: Hard, Run: func(ctx context.Context) error {
				order = append(order, "first")
				return nil
			}},
			{Name: "second", Criticality: BestEffort, Run: func(ctx context.Context) error {
				order = append(order, "second")
				return nil
			}},
			{Name: "third", Criticality: Hard, Run: func(ctx context.Context) error {
				order = append(order, "third")
				return nil
			}},
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("hard failure compensates completed steps in reverse order", func(t *testing.T) {
		executor := NewExecutor(nil)
		var compensated []string

		err := executor.Execute(ctx, "test", []Step{
			{
				Name:        "create user",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return nil },
				Compensate: func(ctx context.Context) error {
					compensated = append(compensated, "create user")
					return nil
				},
			},
			{
				Name:        "create student",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return nil },
				Compensate: func(ctx context.Context) error {
					compensated = append(compensated, "create student")
					return nil
				},
			},
			{
				Name:        "create invoice",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return errors.New("insert failed") },
			},
		})

		assert.ErrorContains(t, err, "create invoice")
		assert.ErrorContains(t, err, "insert failed")
		assert.Equal(t, []string{"create student", "create user"}, compensated)
	})

	t.Run("best-effort failure does not abort or compensate", func(t *testing.T) {
		executor := NewExecutor(nil)
		var compensated []string
		thirdRan := false

		err := executor.Execute(ctx, "test", []Step{
			{
				Name:        "persist",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return nil },
				Compensate: func(ctx context.Context) error {
					compensated = append(compensated, "persist")
					return nil
				},
			},
			{
				Name:        "send email",
				Criticality: BestEffort,
				Run:         func(ctx context.Context) error { return errors.New("smtp down") },
			},
			{
				Name:        "finish",
				Criticality: Hard,
				Run: func(ctx context.Context) error {
					thirdRan = true
					return nil
				},
			},
		})

		assert.NoError(t, err)
		assert.True(t, thirdRan)
		assert.Empty(t, compensated)
	})

	t.Run("compensation failure does not stop remaining compensations", func(t *testing.T) {
		executor := NewExecutor(nil)
		var compensated []string

		err := executor.Execute(ctx, "test", []Step{
			{
				Name:        "a",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return nil },
				Compensate: func(ctx context.Context) error {
					compensated = append(compensated, "a")
					return nil
				},
			},
			{
				Name:        "b",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return nil },
				Compensate:  func(ctx context.Context) error { return errors.New("delete failed") },
			},
			{
				Name:        "c",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return errors.New("boom") },
			},
		})

		assert.Error(t, err)
		assert.Equal(t, []string{"a"}, compensated)
	})

	t.Run("steps without compensation are skipped during rollback", func(t *testing.T) {
		executor := NewExecutor(nil)

		err := executor.Execute(ctx, "test", []Step{
			{
				Name:        "no compensation",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return nil },
			},
			{
				Name:        "fails",
				Criticality: Hard,
				Run:         func(ctx context.Context) error { return errors.New("boom") },
			},
		})

		assert.ErrorContains(t, err, "fails")
	})
}
