package store

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(afero.NewMemMapFs(), ".data", zap.NewNop())
	if err := s.EnsureCollection("things"); err != nil {
		t.Fatalf("EnsureCollection: %v", err)
	}
	return s
}

func TestCreateAndRead(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("things", "a1", record{ID: "a1", Name: "first"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got record
	if err := s.Read("things", "a1", &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Name != "first" {
		t.Errorf("got name %q, want %q", got.Name, "first")
	}
}

func TestCreateRefusesDuplicate(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("things", "a1", record{ID: "a1", Name: "original"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create("things", "a1", record{ID: "a1", Name: "clobbered"}); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("got %v, want ErrAlreadyExists", err)
	}

	// The original record is untouched.
	var got record
	if err := s.Read("things", "a1", &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Name != "original" {
		t.Errorf("got name %q, want %q", got.Name, "original")
	}
}

func TestReadMissingRecord(t *testing.T) {
	s := newTestStore(t)

	var got record
	if err := s.Read("things", "nope", &got); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestReadMalformedRecordYieldsEmptyDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, ".data", zap.NewNop())
	if err := afero.WriteFile(fs, ".data/things/bad.json", []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	var got record
	if err := s.Read("things", "bad", &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != (record{}) {
		t.Errorf("got %+v, want zero value", got)
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	s := newTestStore(t)

	if err := s.Update("things", "nope", record{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateReplacesContents(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("things", "a1", record{ID: "a1", Name: "before"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Update("things", "a1", record{ID: "a1", Name: "after"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var got record
	if err := s.Read("things", "a1", &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Name != "after" {
		t.Errorf("got name %q, want %q", got.Name, "after")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Create("things", "a1", record{ID: "a1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Delete("things", "a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("things", "a1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestListMissingCollection(t *testing.T) {
	s := New(afero.NewMemMapFs(), ".data", zap.NewNop())

	ids, err := s.List("ghost")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("got %v, want empty", ids)
	}
}

func TestListStripsExtension(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"a1", "b2"} {
		if err := s.Create("things", id, record{ID: id}); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	ids, err := s.List("things")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2", len(ids))
	}
	for _, id := range ids {
		if id != "a1" && id != "b2" {
			t.Errorf("unexpected id %q", id)
		}
	}
}

func TestReadAllNormalizesInvalidJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, ".data", zap.NewNop())
	if err := s.Create("things", "good", record{ID: "good"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := afero.WriteFile(fs, ".data/things/bad.json", []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := s.ReadAll("things")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, raw := range records {
		if string(raw) == "{not json" {
			t.Error("invalid JSON leaked through ReadAll")
		}
	}
}
