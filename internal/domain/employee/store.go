package employee

import "sync"

// Store is an ordered in-memory collection of employees. Records keep their
// insertion order and are matched by linear scan, so the first inserted
// record wins when identifiers repeat.
type Store struct {
	mu        sync.Mutex
	employees []Employee
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Insert appends e. Identifiers are not checked for uniqueness.
func (s *Store) Insert(e Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, e)
}

// Remove deletes every employee with the given identifier and returns how many
// were removed. Removing an unknown identifier is a no-op.
func (s *Store) Remove(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.employees[:0]
	for _, e := range s.employees {
		if e.ID() != id {
			kept = append(kept, e)
		}
	}
	removed := len(s.employees) - len(kept)
	for i := len(kept); i < len(s.employees); i++ {
		s.employees[i] = nil
	}
	s.employees = kept
	return removed
}

// Find returns a copy of the first employee with the given identifier.
func (s *Store) Find(id int) (Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.employees[i].clone(), true
	}
	return nil, false
}

// Rename changes the name of the first employee with the given identifier.
func (s *Store) Rename(id int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrEmployeeNotFound
	}
	s.employees[i].rename(name)
	return nil
}

// Render returns the rendered form of every employee in insertion order.
func (s *Store) Render() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e.Render())
	}
	return out
}

// Len returns the number of stored employees.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.employees)
}

func (s *Store) indexOf(id int) int {
	for i, e := range s.employees {
		if e.ID() == id {
			return i
		}
	}
	return -1
}
