// Package sessionstore persists shell session transcripts as JSON files.
package sessionstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/oleksandr-romashko/libretto/internal/domain"
	"github.com/oleksandr-romashko/libretto/internal/ports"
)

type JSONStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: <dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDGenerator is useful for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(dir string, opts ...Option) *JSONStore {
	s := &JSONStore{
		dir:        dir,
		writeIndex: false,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SessionStore = (*JSONStore)(nil)

func (s *JSONStore) SaveSession(transcript domain.SessionTranscript) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "sessionstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	ts := transcript.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := transcript
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	id := s.newID()
	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), id)
	path := filepath.Join(s.dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "sessionstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "sessionstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "sessionstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(id, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(id, filename string, transcript domain.SessionTranscript) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		StartedAt time.Time `json:"started_at"`
		Commands  int       `json:"commands"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		StartedAt: transcript.StartedAt,
		Commands:  len(transcript.Entries),
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(s.dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}
