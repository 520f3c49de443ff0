package store

import (
	"errors"
	"strings"
)

var errEmptyCredential = errors.New("credential must not be empty")

// SaveCredential stores the user-supplied translation provider
// credential. An empty value is rejected; presence is the sole
// "configured" signal, so an empty credential would be meaningless.
func (s *Store) SaveCredential(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errEmptyCredential
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(keyCredential, []byte(value))
}

// LoadCredential returns the stored credential, or "" when none is
// set. Reading a missing credential is not an error.
func (s *Store) LoadCredential() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.get(keyCredential)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ClearCredential removes the stored credential. Idempotent.
func (s *Store) ClearCredential() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(keyCredential)
}
