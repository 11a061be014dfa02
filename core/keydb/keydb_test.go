package keydb_test

import (
	"bytes"
	"testing"

	"github.com/launchlabs/launchpad/core/keydb"
)

func TestSetGetDelete(t *testing.T) {
	db := keydb.New()
	defer db.Close()

	if err := db.Set([]byte("alpha"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(db.Get([]byte("alpha")), []byte("1")) {
		t.Fatal("get after set mismatch")
	}
	if !db.Has([]byte("alpha")) {
		t.Fatal("has after set must be true")
	}

	// overwrite
	if err := db.Set([]byte("alpha"), []byte("2")); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(db.Get([]byte("alpha")), []byte("2")) {
		t.Fatal("get after overwrite mismatch")
	}
	if db.Count() != 1 {
		t.Fatalf("count = %d, want 1", db.Count())
	}

	if err := db.Delete([]byte("alpha")); err != nil {
		t.Fatal(err)
	}
	if db.Has([]byte("alpha")) {
		t.Fatal("has after delete must be false")
	}
	if db.Get([]byte("alpha")) != nil {
		t.Fatal("get after delete must be nil")
	}
}

func TestIteratePrefix(t *testing.T) {
	db := keydb.New()
	defer db.Close()

	pairs := map[string]string{
		"a:1": "one",
		"a:2": "two",
		"a:3": "three",
		"b:1": "other",
	}
	for k, v := range pairs {
		if err := db.Set([]byte(k), []byte(v)); err != nil {
			t.Fatal(err)
		}
	}

	seen := map[string]string{}
	if err := db.Iterate([]byte("a:"), func(key []byte, data []byte) bool {
		seen[string(key)] = string(data)
		return true
	}); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 {
		t.Fatalf("prefix scan found %d keys, want 3", len(seen))
	}
	if seen["a:2"] != "two" {
		t.Fatalf("scan values = %v", seen)
	}

	// early stop
	var count int
	if err := db.Iterate([]byte("a:"), func(key []byte, data []byte) bool {
		count++
		return count < 2
	}); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("early stop visited %d keys, want 2", count)
	}
}

func TestClosedDatabase(t *testing.T) {
	db := keydb.New()
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
	if err := db.Set([]byte("k"), []byte("v")); err == nil {
		t.Fatal("set on a closed database must fail")
	}
}
