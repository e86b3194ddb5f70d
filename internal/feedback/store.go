// Package feedback implements the append-only JSON-lines store recording
// human verdicts against findings -- the sole persistent state a scan reads
// or writes outside the vulnerability-feed cache, and the training input
// for internal/risk's learned model.
package feedback

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/reachlab/depscan"
)

// DefaultDir is where the store lives under the user's home directory when
// no project-root override is configured.
const DefaultDir = ".depscan"

const fileName = "feedback.jsonl"

// Store is a handle onto an append-only JSON-lines file. Every operation
// opens, does its work, and closes the file, so a Store is safe to keep
// around across an entire process lifetime without holding a descriptor
// open between scans.
type Store struct {
	Path string
}

// New returns a Store rooted at dir/feedback.jsonl, creating dir as needed;
// the file itself is created by the first Append. An empty dir resolves to
// $HOME/.depscan.
func New(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("feedback: resolve home directory: %w", err)
		}
		dir = filepath.Join(home, DefaultDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("feedback: create store directory: %w", err)
	}
	return &Store{Path: filepath.Join(dir, fileName)}, nil
}

// Append writes one record to the end of the store. Appending a record,
// reading every record back, and serializing the result again yields the
// original concatenation: each call opens in O_APPEND mode and writes
// exactly one JSON line.
func (s *Store) Append(rec depscan.Feedback) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("feedback: open store: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("feedback: append record: %w", err)
	}
	return nil
}

// All reads every record currently in the store, in append order. Readers
// snapshot at call time, matching the store's "readers snapshot at scan
// start" invariant -- a concurrent Append after All returns is never
// reflected in its result.
func (s *Store) All() ([]depscan.Feedback, error) {
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("feedback: open store: %w", err)
	}
	defer f.Close()

	var records []depscan.Feedback
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec depscan.Feedback
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("feedback: decode record: %w", err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("feedback: scan store: %w", err)
	}
	return records, nil
}

// Count is a cheap All-then-len, used by the risk scorer's retraining
// threshold check.
func (s *Store) Count() (int, error) {
	records, err := s.All()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
