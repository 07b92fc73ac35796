package repository

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	appErrors "github.com/noah-isme/bank-bukti-api/pkg/errors"
)

// recordStore is an ordered in-memory collection keyed by a prefixed sequential id
// (PRM-001, BKT-001, ...). Issued ids are never reused, even after deletes.
type recordStore[T any] struct {
	mu       sync.RWMutex
	items    []T
	prefix   string
	label    string
	seq      int
	revision uint64

	idOf  func(T) string
	setID func(*T, string)
	clone func(T) T
}

func newRecordStore[T any](prefix, label string, idOf func(T) string, setID func(*T, string), clone func(T) T, seed []T) *recordStore[T] {
	s := &recordStore[T]{prefix: prefix, label: label, idOf: idOf, setID: setID, clone: clone}
	s.items = make([]T, 0, len(seed))
	for _, item := range seed {
		s.items = append(s.items, clone(item))
		s.observeID(idOf(item))
	}
	return s
}

func (s *recordStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = s.clone(item)
	}
	return out
}

func (s *recordStore[T]) get(id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, s.notFound(id)
	}
	item := s.clone(s.items[idx])
	return &item, nil
}

func (s *recordStore[T]) create(item T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := strings.TrimSpace(s.idOf(item))
	if id == "" {
		id = s.nextID()
	} else if s.indexOf(id) >= 0 {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("%s %s already exists", s.label, id))
	}
	s.setID(&item, id)
	s.observeID(id)
	s.items = append(s.items, s.clone(item))
	s.revision++
	return &item, nil
}

func (s *recordStore[T]) update(id string, item T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, s.notFound(id)
	}
	s.setID(&item, id)
	s.items[idx] = s.clone(item)
	s.revision++
	return &item, nil
}

func (s *recordStore[T]) delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return s.notFound(id)
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.revision++
	return nil
}

func (s *recordStore[T]) currentRevision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// indexOf must be called with the lock held.
func (s *recordStore[T]) indexOf(id string) int {
	for i, item := range s.items {
		if s.idOf(item) == id {
			return i
		}
	}
	return -1
}

// nextID must be called with the write lock held.
func (s *recordStore[T]) nextID() string {
	for {
		s.seq++
		id := fmt.Sprintf("%s%03d", s.prefix, s.seq)
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *recordStore[T]) observeID(id string) {
	suffix, ok := strings.CutPrefix(id, s.prefix)
	if !ok {
		return
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n <= s.seq {
		return
	}
	s.seq = n
}

func (s *recordStore[T]) notFound(id string) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s %s not found", s.label, id))
}
