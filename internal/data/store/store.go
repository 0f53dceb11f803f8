package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyExists is returned by Create when a record with the same ID exists.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrNotFound is returned when a record is absent or unreadable.
	ErrNotFound = errors.New("record not found")
)

// Store persists records as one JSON file per record, grouped into
// collection directories under a base directory. It performs no locking:
// concurrent writers to the same record race at the filesystem level and
// the last write wins.
type Store struct {
	fs      afero.Fs
	baseDir string
	log     *zap.Logger
}

func New(fs afero.Fs, baseDir string, log *zap.Logger) *Store {
	return &Store{
		fs:      fs,
		baseDir: baseDir,
		log:     log.With(zap.String("component", "store")),
	}
}

func (s *Store) collectionDir(collection string) string {
	return filepath.Join(s.baseDir, collection)
}

func (s *Store) recordPath(collection, id string) string {
	return filepath.Join(s.baseDir, collection, id+".json")
}

// EnsureCollection creates the collection directory if it does not exist.
func (s *Store) EnsureCollection(collection string) error {
	if err := s.fs.MkdirAll(s.collectionDir(collection), 0755); err != nil {
		s.log.Error("Failed to create collection dir",
			zap.Error(err), zap.String("collection", collection))
		return fmt.Errorf("ensure collection %s: %w", collection, err)
	}
	return nil
}

// Create writes a new record. It refuses to overwrite: an existing record
// with the same ID yields ErrAlreadyExists.
func (s *Store) Create(collection, id string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal record %s/%s: %w", collection, id, err)
	}

	file, err := s.fs.OpenFile(s.recordPath(collection, id), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return ErrAlreadyExists
		}
		s.log.Error("Failed to create record",
			zap.Error(err), zap.String("collection", collection), zap.String("id", id))
		return fmt.Errorf("create record %s/%s: %w", collection, id, err)
	}
	defer file.Close()

	if _, err := file.Write(payload); err != nil {
		s.log.Error("Failed to write record",
			zap.Error(err), zap.String("collection", collection), zap.String("id", id))
		return fmt.Errorf("write record %s/%s: %w", collection, id, err)
	}

	return nil
}

// Read decodes the record into out. A missing or unreadable file yields
// ErrNotFound. Malformed JSON is decoded as an empty document: out keeps
// its zero value and no error is returned.
func (s *Store) Read(collection, id string, out any) error {
	raw, err := afero.ReadFile(s.fs, s.recordPath(collection, id))
	if err != nil {
		return ErrNotFound
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("Malformed record, treating as empty document",
			zap.String("collection", collection), zap.String("id", id))
	}

	return nil
}

// Update replaces the full contents of an existing record. Callers that
// want merge semantics must read-merge-write themselves.
func (s *Store) Update(collection, id string, data any) error {
	if _, err := s.fs.Stat(s.recordPath(collection, id)); err != nil {
		return ErrNotFound
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal record %s/%s: %w", collection, id, err)
	}

	if err := afero.WriteFile(s.fs, s.recordPath(collection, id), payload, 0644); err != nil {
		s.log.Error("Failed to update record",
			zap.Error(err), zap.String("collection", collection), zap.String("id", id))
		return fmt.Errorf("update record %s/%s: %w", collection, id, err)
	}

	return nil
}

// Delete removes the record permanently.
func (s *Store) Delete(collection, id string) error {
	if err := s.fs.Remove(s.recordPath(collection, id)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		s.log.Error("Failed to delete record",
			zap.Error(err), zap.String("collection", collection), zap.String("id", id))
		return fmt.Errorf("delete record %s/%s: %w", collection, id, err)
	}
	return nil
}

// List returns the IDs present in a collection. An empty or missing
// collection yields an empty slice, never an error.
func (s *Store) List(collection string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.collectionDir(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		s.log.Error("Failed to list collection",
			zap.Error(err), zap.String("collection", collection))
		return nil, fmt.Errorf("list collection %s: %w", collection, err)
	}

	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(info.Name(), ".json"))
	}

	return ids, nil
}

// ReadAll reads every record in a collection. This is the only lookup
// mechanism the store offers, so field scans built on it are O(n) in
// collection size.
func (s *Store) ReadAll(collection string) ([]json.RawMessage, error) {
	ids, err := s.List(collection)
	if err != nil {
		return nil, err
	}

	records := make([]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		raw, err := afero.ReadFile(s.fs, s.recordPath(collection, id))
		if err != nil {
			// Deleted between List and Read; skip.
			continue
		}
		if !json.Valid(raw) {
			raw = []byte("{}")
		}
		records = append(records, json.RawMessage(raw))
	}

	return records, nil
}
