// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package selector

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoState reports that no prior choice has been persisted. Callers treat
// it the same as an I/O failure (no prior choice), but tests can tell the
// two apart.
var ErrNoState = errors.New("no prior player state")

// Store persists the identity of the last chosen player between invocations.
type Store interface {
	Load() (string, error)
	Save(player string) error
}

type stateFile struct {
	Player string `json:"player"`
}

// FileStore keeps the last choice in a small JSON file, guarded by advisory
// locks so a reader never observes a half-written file. Successive one-shot
// invocations are the only users, so contention is rare but possible.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() (string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoState
		}
		return "", fmt.Errorf("open state: %w", err)
	}
	defer f.Close()

	if err := lockShared(f); err != nil {
		return "", fmt.Errorf("lock state: %w", err)
	}
	defer unlock(f)

	var st stateFile
	if err := json.NewDecoder(f).Decode(&st); err != nil {
		return "", fmt.Errorf("decode state: %w", err)
	}
	if st.Player == "" {
		return "", ErrNoState
	}
	return st.Player, nil
}

func (s *FileStore) Save(player string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return fmt.Errorf("lock state: %w", err)
	}
	defer unlock(f)

	if err := json.NewEncoder(f).Encode(stateFile{Player: player}); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store used in tests and as a fallback when no
// state path can be resolved.
type MemoryStore struct {
	Player  string
	LoadErr error
	SaveErr error
	Saves   int
}

func (s *MemoryStore) Load() (string, error) {
	if s.LoadErr != nil {
		return "", s.LoadErr
	}
	if s.Player == "" {
		return "", ErrNoState
	}
	return s.Player, nil
}

func (s *MemoryStore) Save(player string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Player = player
	s.Saves++
	return nil
}
