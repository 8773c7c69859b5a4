package runner

import "sync"

// ScoreStore persists the best score per difficulty. Unknown difficulties
// report zero.
type ScoreStore interface {
	BestScore(difficulty string) (int, error)
	SetBestScore(difficulty string, score int) error
}

// MemoryStore is a ScoreStore kept in process memory. It is used when no
// database is configured.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// BestScore returns the stored best for difficulty, or 0.
func (m *MemoryStore) BestScore(difficulty string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[difficulty], nil
}

// SetBestScore overwrites the stored best for difficulty.
func (m *MemoryStore) SetBestScore(difficulty string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[difficulty] = score
	return nil
}
