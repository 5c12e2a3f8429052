package storage

import (
	"errors"
	"strings"
)

// BulkWriter is implemented by stores that can apply a write set atomically.
type BulkWriter interface {
	WriteAll(pairs map[string][]byte) error
}

// Staged is a write-buffering overlay over a base DB.
//
// Reads see staged writes first, then fall through to the base. Nothing
// touches the base until Commit; Discard drops the write set. The runtime
// runs every contract invocation against a Staged so a call that returns
// an error leaves no durable effect.
//
// Deletes are not supported: the contract's state model is append-only.
type Staged struct {
	base   DB
	writes map[string][]byte
}

// NewStaged creates a staged overlay over base.
func NewStaged(base DB) *Staged {
	return &Staged{
		base:   base,
		writes: make(map[string][]byte),
	}
}

// Get retrieves a value, preferring staged writes.
func (s *Staged) Get(key []byte) ([]byte, error) {
	if v, ok := s.writes[string(key)]; ok {
		return v, nil
	}
	return s.base.Get(key)
}

// Put stages a key-value pair.
func (s *Staged) Put(key, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.writes[string(key)] = v
	return nil
}

// Delete is rejected: contract state is never deleted.
func (s *Staged) Delete(key []byte) error {
	return errors.New("staged storage does not support delete")
}

// Has checks staged writes, then the base.
func (s *Staged) Has(key []byte) (bool, error) {
	if _, ok := s.writes[string(key)]; ok {
		return true, nil
	}
	return s.base.Has(key)
}

// ForEach iterates base entries and staged writes under the prefix.
// Staged writes shadow base entries with the same key.
func (s *Staged) ForEach(prefix []byte, fn func(key, value []byte) error) error {
	err := s.base.ForEach(prefix, func(key, value []byte) error {
		if _, shadowed := s.writes[string(key)]; shadowed {
			return nil
		}
		return fn(key, value)
	})
	if err != nil {
		return err
	}
	p := string(prefix)
	for k, v := range s.writes {
		if strings.HasPrefix(k, p) {
			if err := fn([]byte(k), v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Commit applies the staged write set to the base and clears it.
// When the base supports bulk writes the set lands in one transaction.
func (s *Staged) Commit() error {
	if bw, ok := s.base.(BulkWriter); ok {
		if err := bw.WriteAll(s.writes); err != nil {
			return err
		}
		s.writes = make(map[string][]byte)
		return nil
	}
	for k, v := range s.writes {
		if err := s.base.Put([]byte(k), v); err != nil {
			return err
		}
	}
	s.writes = make(map[string][]byte)
	return nil
}

// Discard drops the staged write set without touching the base.
func (s *Staged) Discard() {
	s.writes = make(map[string][]byte)
}

// Dirty reports whether any writes are staged.
func (s *Staged) Dirty() bool {
	return len(s.writes) > 0
}

// Close is a no-op — the base DB manages its own lifecycle.
func (s *Staged) Close() error {
	return nil
}
