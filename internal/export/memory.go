package export

import (
	"context"
	"io"
	"sync"
)

// MemorySink keeps exports in memory. Useful for tests.
// Safe for concurrent use.
type MemorySink struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{objects: make(map[string][]byte)}
}

func (s *MemorySink) Put(_ context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.objects[name] = data
	s.mu.Unlock()
	return "memory://" + name, nil
}

// Object returns a stored export and whether it exists.
func (s *MemorySink) Object(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[name]
	return data, ok
}

// Names returns the stored object names.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		names = append(names, name)
	}
	return names
}
