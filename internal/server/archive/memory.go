package archive

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

// Memory is an in-process Archive for tests and the memory backend.
type Memory struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

func (m *Memory) Store(_ context.Context, v *models.Vault) (string, error) {
	body, err := encode(v, time.Now().UTC())
	if err != nil {
		return "", err
	}
	key := Key(v.OwnerID, v.Version)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = body
	return key, nil
}

func (m *Memory) URL(_ context.Context, ownerID string, version int64) (string, error) {
	key := Key(ownerID, version)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return "", common.ErrNotFound
	}
	return "memory://" + key, nil
}

// Object returns the stored body of key.
func (m *Memory) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[key]
	return b, ok
}
