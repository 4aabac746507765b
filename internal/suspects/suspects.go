// Package suspects maps clue texts to the suspect they point at using a hash table with
// separate chaining.
package suspects

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
)

// DefaultBucketCount is used when no bucket count is configured.
const DefaultBucketCount = 10

var (
	ErrNotFound           = errors.NewSentinel("no suspect for clue")
	ErrInvalidEntry       = errors.NewSentinel("invalid suspect entry")
	ErrInvalidBucketCount = errors.NewSentinel("bucket count must be positive")
)

// Entry associates a clue with a suspect.
type Entry struct {
	Clue    string
	Suspect string
}

type chainEntry struct {
	key     string
	suspect string
	next    *chainEntry
}

// Table is a fixed-size hash table keyed by clue text. It is filled once when a session starts
// and only read afterwards. Table is not safe for concurrent writes.
type Table struct {
	buckets []*chainEntry
	size    int
	logger  *slog.Logger
}

// New creates a table with bucketCount buckets.
func New(bucketCount int, logger *slog.Logger) (*Table, error) {
	if bucketCount <= 0 {
		return nil, errors.Wrap(ErrInvalidBucketCount, "new suspect table", slog.Int("buckets", bucketCount))
	}
	return &Table{
		buckets: make([]*chainEntry, bucketCount),
		logger:  logger.With("source", "SuspectTable"),
	}, nil
}

// Hash returns the bucket of text: a polynomial accumulator with multiplier 31 over the bytes of
// text, reduced modulo bucketCount. bucketCount must be positive.
func Hash(text string, bucketCount int) int {
	var value uint64
	for i := range len(text) {
		value = value*31 + uint64(text[i]) //nolint:mnd // classic string hash multiplier
	}
	return int(value % uint64(bucketCount))
}

// Insert prepends an entry to the chain of clue's bucket, so on duplicate keys the latest
// insert wins. Empty clues or suspects are rejected with ErrInvalidEntry.
func (t *Table) Insert(clue, suspect string) error {
	if strings.TrimSpace(clue) == "" || strings.TrimSpace(suspect) == "" {
		return errors.Wrap(ErrInvalidEntry, "insert",
			slog.String("clue", clue), slog.String("suspect", suspect))
	}
	bucket := Hash(clue, len(t.buckets))
	t.buckets[bucket] = &chainEntry{
		key:     clue,
		suspect: suspect,
		next:    t.buckets[bucket],
	}
	t.size++
	return nil
}

// Load inserts all entries. Entries that can't be inserted are logged and skipped. It returns
// the number of entries stored.
func (t *Table) Load(ctx context.Context, entries []Entry) int {
	loaded := 0
	for _, e := range entries {
		if err := t.Insert(e.Clue, e.Suspect); err != nil {
			t.logger.LogAttrs(ctx, slog.LevelWarn, "dropped suspect entry", errors.SlogError(err))
			continue
		}
		loaded++
	}
	t.logger.LogAttrs(ctx, slog.LevelDebug, "loaded suspect table",
		slog.Int("entries", loaded), slog.Int("buckets", len(t.buckets)))
	return loaded
}

// Lookup returns the suspect associated with clue or ErrNotFound.
func (t *Table) Lookup(clue string) (string, error) {
	for e := t.buckets[Hash(clue, len(t.buckets))]; e != nil; e = e.next {
		if e.key == clue {
			return e.suspect, nil
		}
	}
	return "", errors.Wrap(ErrNotFound, "lookup", slog.String("clue", clue))
}

// Len returns the number of stored entries, duplicates included.
func (t *Table) Len() int {
	return t.size
}

// BucketCount returns the fixed number of buckets.
func (t *Table) BucketCount() int {
	return len(t.buckets)
}

// Suspects returns the distinct suspect names in the table, sorted.
func (t *Table) Suspects() []string {
	var names []string
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			names = append(names, e.suspect)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
