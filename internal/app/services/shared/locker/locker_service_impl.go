package locker

import (
	"registrar-service/internal/app/contracts"
	"sync"

	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// lockService is an in-process keyed lock table. Entries are reference
// counted so the table shrinks back when a key has no waiters.
type lockService struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
	Log   *zap.Logger
}

func NewLockService(logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			locks: make(map[string]*lockEntry),
			Log:   logger,
		}
	})
	return lockerServiceInstance
}

func (s *lockService) Lock(key string) {
	s.mu.Lock()
	entry, ok := s.locks[key]
	if !ok {
		entry = &lockEntry{}
		s.locks[key] = entry
	}
	entry.refs++
	s.mu.Unlock()

	entry.mu.Lock()
}

func (s *lockService) Unlock(key string) {
	s.mu.Lock()
	entry, ok := s.locks[key]
	if !ok {
		s.mu.Unlock()
		s.Log.Error("lockService.Unlock called for a key that is not held",
			zap.String("lock_key", key),
		)
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(s.locks, key)
	}
	s.mu.Unlock()

	entry.mu.Unlock()
}
