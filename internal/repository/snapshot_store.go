package repository

import (
	"sync"

	"drone-viewer-go/internal/model"
)

// maxSnapshots ограничивает размер кеша снимков сканирования
const maxSnapshots = 16

// SnapshotStore интерфейс кеша результатов сканирования каталога
type SnapshotStore interface {
	Put(snapshot *model.Snapshot)
	Get(id string) (*model.Snapshot, bool)
	InvalidateAll()
}

// snapshotStore потокобезопасный кеш снимков в памяти
type snapshotStore struct {
	mu        sync.Mutex
	snapshots map[string]*model.Snapshot
	order     []string // ключи в порядке добавления, для вытеснения старых
}

// NewSnapshotStore создает новый экземпляр SnapshotStore
func NewSnapshotStore() SnapshotStore {
	return &snapshotStore{
		snapshots: make(map[string]*model.Snapshot),
	}
}

// Put сохраняет снимок; при переполнении вытесняется самый старый
func (s *snapshotStore) Put(snapshot *model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.snapshots[snapshot.ID]; !exists {
		s.order = append(s.order, snapshot.ID)
	}
	s.snapshots[snapshot.ID] = snapshot

	for len(s.order) > maxSnapshots {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.snapshots, oldest)
	}
}

// Get возвращает снимок по ID
func (s *snapshotStore) Get(id string) (*model.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.snapshots[id]
	return snapshot, ok
}

// InvalidateAll сбрасывает кеш целиком; вызывается после любой записи
// в каталог загрузок
func (s *snapshotStore) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = make(map[string]*model.Snapshot)
	s.order = nil
}
