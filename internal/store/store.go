// Package store holds every entity record in process memory, keyed by kind and id.
//
// A single counter hands out ids for all kinds, so an id is unique across the whole
// process. Nothing is persisted; the store lives from process start to shutdown.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by repositories when no record matches a lookup.
var ErrNotFound = errors.New("record not found")

// Kind names an entity collection.
type Kind string

const (
	KindUsers              Kind = "users"
	KindChatMessages       Kind = "chat_messages"
	KindAssessments        Kind = "assessments"
	KindStudentAssessments Kind = "student_assessments"
	KindStudentProgress    Kind = "student_progress"
	KindInterventions      Kind = "interventions"
)

// Kinds lists every collection in a stable order.
var Kinds = []Kind{
	KindUsers,
	KindChatMessages,
	KindAssessments,
	KindStudentAssessments,
	KindStudentProgress,
	KindInterventions,
}

// Store is the in-memory entity store. The zero value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	nextID int
	tables map[Kind]map[int]any
}

// New returns an empty store whose first allocated id is 1.
func New() *Store {
	tables := make(map[Kind]map[int]any, len(Kinds))
	for _, k := range Kinds {
		tables[k] = make(map[int]any)
	}
	return &Store{nextID: 1, tables: tables}
}

// AllocateID returns the next id. Ids strictly increase and are never reused.
func (s *Store) AllocateID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// Put stores record under kind/id, replacing any previous value.
func (s *Store) Put(kind Kind, id int, record any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table(kind)[id] = record
}

// Get returns the record stored under kind/id.
func (s *Store) Get(kind Kind, id int) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.tables[kind][id]
	return record, ok
}

// Values returns an unordered snapshot of the records of one kind.
func (s *Store) Values(kind Kind) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table := s.tables[kind]
	out := make([]any, 0, len(table))
	for _, record := range table {
		out = append(out, record)
	}
	return out
}

// Mutate replaces the record under kind/id with fn's result while holding the write lock.
// It reports false, without calling fn, when the id is unknown.
func (s *Store) Mutate(kind Kind, id int, fn func(any) any) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.table(kind)
	current, ok := table[id]
	if !ok {
		return nil, false
	}
	next := fn(current)
	table[id] = next
	return next, true
}

// Len returns the number of records of one kind.
func (s *Store) Len(kind Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[kind])
}

// Counts returns the record count for every kind.
func (s *Store) Counts() map[Kind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Kind]int, len(s.tables))
	for k, t := range s.tables {
		out[k] = len(t)
	}
	return out
}

// table must be called with the write lock held.
func (s *Store) table(kind Kind) map[int]any {
	t, ok := s.tables[kind]
	if !ok {
		t = make(map[int]any)
		s.tables[kind] = t
	}
	return t
}
