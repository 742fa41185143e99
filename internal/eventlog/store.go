// Package eventlog persists domain events as an append-only JSON-lines file.
// The log is the system of record: one event per line, oldest first, never
// rewritten or truncated.
package eventlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"taskledger/internal/models"
)

// maxLineBytes bounds a single event line. Append rejects anything larger so
// a committed line can always be read back; ReadAll sizes its scanner to the
// same bound.
const maxLineBytes = 1 << 20

// ErrEventTooLarge is returned by Append when the encoded event would exceed
// maxLineBytes. Nothing is written in that case.
var ErrEventTooLarge = errors.New("event exceeds max line size")

// Store is a single-writer append-only event log backed by one file.
// The mutex serializes appends so a line is always observed whole or not at
// all; readers never take the lock.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store for the log file at path. The file is not touched
// until Ensure or the first Append.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the log file location.
func (s *Store) Path() string {
	return s.path
}

// Ensure idempotently guarantees the log file exists, creating an empty one
// (and its parent directory) if absent. Safe to call before every operation.
func (s *Store) Ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("ensure log file: %w", err)
	}
	return f.Close()
}

// Append serializes the event to a single line and durably appends it to the
// log. On success the event is visible to all subsequent reads. The payload
// and trailing newline go out in one write so concurrent readers never see a
// torn line.
func (s *Store) Append(ctx context.Context, event models.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if bytes.ContainsRune(data, '\n') {
		return fmt.Errorf("encode event: payload contains newline")
	}
	if len(data) > maxLineBytes {
		return fmt.Errorf("encode event: %w", ErrEventTooLarge)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log for append: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync log: %w", err)
	}
	return nil
}

// ReadAll returns the raw log lines in append order, oldest first. Empty
// lines are skipped. The log is never mutated; judging whether a line is a
// valid event is the projection's job.
func (s *Store) ReadAll(ctx context.Context) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log for read: %w", err)
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}
