package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/sis/backend/internal/application/document"
)

// MemoryDocumentStorage keeps uploaded documents in memory. Use it for
// development and tests when no S3-compatible backend is configured.
type MemoryDocumentStorage struct {
	mu      sync.RWMutex
	objects map[string]storedObject
}

type storedObject struct {
	ContentType string
	Data        []byte
}

// NewMemoryDocumentStorage creates an empty in-memory storage
func NewMemoryDocumentStorage() *MemoryDocumentStorage {
	return &MemoryDocumentStorage{
		objects: make(map[string]storedObject),
	}
}

// Ensure MemoryDocumentStorage implements document.Storage
var _ document.Storage = (*MemoryDocumentStorage)(nil)

// Upload stores a rendered document under the given key, overwriting any
// previous object.
func (s *MemoryDocumentStorage) Upload(ctx context.Context, key, contentType string, data []byte) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = storedObject{ContentType: contentType, Data: buf}
	return nil
}

// Get returns a stored document and whether it exists
func (s *MemoryDocumentStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj.Data, ok
}

// Len returns the number of stored objects
func (s *MemoryDocumentStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
