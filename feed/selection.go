package feed

import "sync"

// SelectionStore tracks which place IDs the user has liked during one feed
// session. Toggling a present ID removes it, toggling an absent ID adds it.
// Lookups are O(1) regardless of feed size. Nothing here is persisted;
// persistence is the caller's responsibility.
type SelectionStore struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewSelectionStore() *SelectionStore {
	return &SelectionStore{ids: make(map[string]struct{})}
}

// Toggle flips the membership of placeID and reports whether it is selected
// afterwards.
func (s *SelectionStore) Toggle(placeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[placeID]; ok {
		delete(s.ids, placeID)
		return false
	}
	s.ids[placeID] = struct{}{}
	return true
}

func (s *SelectionStore) IsSelected(placeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[placeID]
	return ok
}

// Seed marks the given IDs selected without flipping anything already set.
func (s *SelectionStore) Seed(placeIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range placeIDs {
		s.ids[id] = struct{}{}
	}
}

func (s *SelectionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
}

// IDs returns the selected place IDs in no particular order.
func (s *SelectionStore) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

func (s *SelectionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
