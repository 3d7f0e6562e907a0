package cart

import "sync"

// StorageKey is the fixed key cart state lives under, carried over
// from the web client's local storage.
const StorageKey = "digital-store-cart"

// Storage is the persistence seam for cart state: the raw serialized
// item list under a single fixed key. Implementations do not interpret
// the payload.
type Storage interface {
	Get() ([]byte, bool, error)
	Set(data []byte) error
	Clear() error
}

// MemStorage keeps the payload in memory. Used in tests and as the
// no-persistence default.
type MemStorage struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

func NewMemStorage() *MemStorage { return &MemStorage{} }

func (s *MemStorage) Get() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

func (s *MemStorage) Set(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.set = true
	return nil
}

func (s *MemStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.set = false
	return nil
}
