// Package inmemory implements pkg/storage.Storage with a guarded map,
// the same key-value contract pkg/storage/object/s3 gives callers an
// object-store shaped alternative to. It backs the ephemeral "memory"
// PartStore backend (internal/fileserver/partstore/memory), used in
// development and tests where parts shouldn't outlive the process.
package inmemory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/doka-one/doka/pkg/storage"
)

type keyValueStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	txn   map[string][]byte
	inTxn bool
}

// New builds a process-local storage.Storage. Nothing is persisted to disk;
// every key is lost on restart.
func New() storage.Storage {
	return &keyValueStore{data: make(map[string][]byte)}
}

func (s *keyValueStore) active() map[string][]byte {
	if s.inTxn {
		return s.txn
	}
	return s.data
}

func (s *keyValueStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.active()[key]
	if !ok {
		return nil, fmt.Errorf("inmemory: key %q not found", key)
	}
	return val, nil
}

func (s *keyValueStore) Set(key string, val []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active()[key] = val
	return nil
}

func (s *keyValueStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.active(), key)
	return nil
}

func (s *keyValueStore) Iterate(processFunc func(key, value []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range s.active() {
		if err := processFunc([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}

func (s *keyValueStore) IterateWithFilterByKeys(prefixes []string, processFunc func(key, value []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range s.active() {
		for _, prefix := range prefixes {
			if strings.HasPrefix(k, prefix) {
				if err := processFunc([]byte(k), v); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

func (s *keyValueStore) Close() error {
	return nil
}

func (s *keyValueStore) OpenTransaction() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inTxn {
		return fmt.Errorf("inmemory: transaction already open")
	}
	s.txn = make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		s.txn[k] = v
	}
	s.inTxn = true
	return nil
}

func (s *keyValueStore) CommitTransaction() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inTxn {
		return fmt.Errorf("inmemory: no open transaction")
	}
	s.data = s.txn
	s.txn = nil
	s.inTxn = false
	return nil
}

func (s *keyValueStore) DiscardTransaction() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txn = nil
	s.inTxn = false
}
