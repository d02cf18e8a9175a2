package persistence

import (
	"context"
	"slices"
	"sync"

	"scoreboard/internal/domain/entity"
)

// MemoryStore держит документ слота в памяти. Для тестов и локального запуска.
type MemoryStore struct {
	mu  sync.RWMutex
	doc []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWithDocument создаёт хранилище с уже записанным документом.
func NewMemoryStoreWithDocument(doc []byte) *MemoryStore {
	return &MemoryStore{doc: slices.Clone(doc)}
}

func (s *MemoryStore) Load(_ context.Context) ([]entity.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return nil, ErrSlotEmpty
	}

	return decodeTeams(s.doc)
}

func (s *MemoryStore) Save(_ context.Context, teams []entity.Team) error {
	doc, err := encodeTeams(teams)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc

	return nil
}

// Document возвращает копию сохранённого документа.
func (s *MemoryStore) Document() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.doc)
}
