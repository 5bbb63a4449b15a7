package shoply

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"
)

func TestStores(t *testing.T) {
	stores := []struct {
		name string
		make func(t *testing.T) Store
	}{
		{name: "DirStore", make: func(t *testing.T) Store { return NewDirStore(t.TempDir()) }},
		{name: "MemStore", make: func(t *testing.T) Store { return NewMemStore() }},
	}

	for _, s := range stores {
		t.Run(s.name, func(t *testing.T) {
			store := s.make(t)

			// Missing key.
			if _, err := store.Get(LedgerKey); !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("Get on missing key error = %v, want fs.ErrNotExist", err)
			}

			// Set then Get round-trips.
			blob := []byte(`{"name":"Rice Bag","category":"Grains","price":25000,"quantity":10,"sold":0}` + "\n")
			if err := store.Set(LedgerKey, blob); err != nil {
				t.Fatalf("Set returned an unexpected error: %v", err)
			}
			got, err := store.Get(LedgerKey)
			if err != nil {
				t.Fatalf("Get returned an unexpected error: %v", err)
			}
			if !bytes.Equal(got, blob) {
				t.Errorf("Get = %q, want %q", got, blob)
			}

			// Overwrite replaces the value.
			if err := store.Set(LedgerKey, []byte("x")); err != nil {
				t.Fatal(err)
			}
			got, err = store.Get(LedgerKey)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != "x" {
				t.Errorf("Get after overwrite = %q, want %q", got, "x")
			}

			// Delete removes the key and is idempotent.
			if err := store.Delete(LedgerKey); err != nil {
				t.Fatalf("Delete returned an unexpected error: %v", err)
			}
			if err := store.Delete(LedgerKey); err != nil {
				t.Fatalf("second Delete returned an unexpected error: %v", err)
			}
			if _, err := store.Get(LedgerKey); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Get after Delete error = %v, want fs.ErrNotExist", err)
			}
		})
	}
}

func TestDirStore_CreatesDirectoryOnWrite(t *testing.T) {
	dir := t.TempDir() + "/nested/store"
	store := NewDirStore(dir)

	if err := store.Set(LedgerKey, []byte("x")); err != nil {
		t.Fatalf("Set returned an unexpected error: %v", err)
	}
	if _, err := store.Get(LedgerKey); err != nil {
		t.Errorf("Get returned an unexpected error: %v", err)
	}
}
