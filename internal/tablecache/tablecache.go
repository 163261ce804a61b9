// Package tablecache persists a compiled LR(1) ACTION/GOTO table to
// disk, keyed by a content hash of the grammar it was built from, so a
// repeated run against the same grammar file can skip automaton
// construction. It is purely a memoization layer: a cache miss, a
// corrupt cache file, or caching disabled all fall back to building the
// table fresh, and no observable predict result ever depends on whether
// the cache was used.
//
// Grounded on server/dao/sqlite's use of rezi.EncBinary/rezi.DecBinary
// to serialize a Go struct to a flat byte slice for storage, adapted
// from a SQLite column to a plain file on disk.
package tablecache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dekarrin/rezi"
)

// Entry is the on-disk representation of one compiled table: the
// ACTION/GOTO grids flattened to primitive slices, since rezi encodes
// structs of primitives and slices directly without needing the
// grammar/automaton/lr types themselves to implement any marshal
// interface.
type Entry struct {
	NumStates   int
	Terminals   []rune
	NonTerms    []rune
	ActionKind  []int // len(Terminals)*NumStates, row-major by state
	ActionState []int
	ActionLHS   []rune
	ActionRHS   []string
	Goto        []int // len(NonTerms)*NumStates, -1 for absent
}

// Cache reads and writes compiled-table entries under a directory on
// disk.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir. dir is created on first Put if it
// does not already exist.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Key returns the cache key for a grammar's textual encoding: the
// hex-encoded SHA-256 of its bytes. Any two grammars with the same key
// are assumed to produce the same compiled table.
func Key(grammarText string) string {
	sum := sha256.Sum256([]byte(grammarText))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".rezi")
}

// Put stores e under key. Errors writing the cache are returned but are
// never fatal to a caller that chooses to ignore them and proceed
// without caching.
func (c *Cache) Put(key string, e Entry) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data := rezi.EncBinary(e)
	return os.WriteFile(c.path(key), data, 0o644)
}

// Get loads a previously cached Entry for key. ok is false on any cache
// miss or corrupt entry, in which case the caller should rebuild the
// table normally; err is only non-nil for an I/O failure worth logging,
// not for an ordinary miss.
func (c *Cache) Get(key string) (e Entry, ok bool, err error) {
	data, readErr := os.ReadFile(c.path(key))
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return Entry{}, false, nil
		}
		return Entry{}, false, readErr
	}

	n, decErr := rezi.DecBinary(data, &e)
	if decErr != nil || n != len(data) {
		// Corrupt or foreign-format cache file: treat as a miss rather
		// than surfacing a hard error, since the cache is optional.
		return Entry{}, false, nil
	}

	return e, true, nil
}
