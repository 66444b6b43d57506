package draft

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Store in-memory хранилище черновиков мастера
// Черновики живут только в памяти процесса: при сабмите превращаются в запись
// в БД, при простое удаляются фоновой зачисткой по TTL.
// Каждый черновик принадлежит одному пользователю, конкурентных мутаций
// одного черновика дизайн не предполагает - мьютекс защищает только map.
type Store struct {
	mu     sync.RWMutex
	drafts map[string]*domain.Draft
}

// NewStore создает пустое хранилище черновиков
func NewStore() *Store {
	return &Store{
		drafts: make(map[string]*domain.Draft),
	}
}

// Create сохраняет новый черновик
func (s *Store) Create(d *domain.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID] = d
}

// GetByID возвращает черновик по ID
func (s *Store) GetByID(id string) (*domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

// Save сохраняет изменённый черновик
// Возвращает ErrDraftNotFound, если черновик уже удалён (например, зачисткой по TTL)
func (s *Store) Save(d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[d.ID]; !ok {
		return ErrDraftNotFound
	}
	s.drafts[d.ID] = d
	return nil
}

// Delete удаляет черновик
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	return nil
}

// DeleteExpired удаляет черновики, неактивные дольше ttl
// Черновики с идущим сабмитом не трогаем - их судьбу решит результат сабмита
func (s *Store) DeleteExpired(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, d := range s.drafts {
		if d.Submitting {
			continue
		}
		if d.IsExpired(now, ttl) {
			delete(s.drafts, id)
			removed++
		}
	}
	return removed
}

// Len возвращает количество черновиков в хранилище
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}
