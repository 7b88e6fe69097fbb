// Package sequence provides the Sequence implementations behind the
// human-readable identifier formats. The count-based implementation derives
// the next number from the current row count; the Redis implementation uses
// an atomic counter and is preferred when Redis is enabled.
package sequence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sis/backend/internal/domain/numbering"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// CountSequence derives the next sequence number from the current record
// count of the backing table. Read-then-use: two concurrent callers can
// observe the same count and mint the same number, which the unique index on
// the formatted identifier turns into a create failure for one of them.
type CountSequence struct {
	db *gorm.DB
}

// NewCountSequence creates a count-backed sequence over the given database
func NewCountSequence(db *gorm.DB) *CountSequence {
	return &CountSequence{db: db}
}

// Next returns the next sequence number for the counter
func (s *CountSequence) Next(ctx context.Context, counter string) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx)

	switch counter {
	case numbering.CounterStudents:
		query = query.Model(&models.StudentModel{})
	default:
		return 0, fmt.Errorf("unknown sequence counter %q", counter)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count + 1, nil
}

// RedisSequence issues sequence numbers from a Redis INCR counter, which is
// atomic across instances.
type RedisSequence struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSequence creates a Redis-backed sequence with an existing client
func NewRedisSequence(client *redis.Client) *RedisSequence {
	return &RedisSequence{
		client:    client,
		keyPrefix: "sequence:",
	}
}

// Next returns the next sequence number for the counter
func (s *RedisSequence) Next(ctx context.Context, counter string) (int64, error) {
	val, err := s.client.Incr(ctx, s.keyPrefix+counter).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence counter: %w", err)
	}
	return val, nil
}

// Seed sets the counter floor so Redis numbering continues from existing
// records. It only raises the counter, never lowers it.
func (s *RedisSequence) Seed(ctx context.Context, counter string, floor int64) error {
	key := s.keyPrefix + counter
	current, err := s.client.Get(ctx, key).Int64()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read sequence counter: %w", err)
	}
	if floor > current {
		if err := s.client.Set(ctx, key, floor, 0).Err(); err != nil {
			return fmt.Errorf("failed to seed sequence counter: %w", err)
		}
	}
	return nil
}

// Ensure both implementations satisfy the domain interface
var (
	_ numbering.Sequence = (*CountSequence)(nil)
	_ numbering.Sequence = (*RedisSequence)(nil)
)
