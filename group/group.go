// Package group is a local group-by-key stage: it collects encoded
// (ByteKey, bytes) records and replays them as one group per distinct key,
// keys in byte order and values in the order they were added. Values come
// back as Pending LazyValues, so a consumer that never looks at a value never
// decodes it.
//
// Memory keeps everything in a concurrent skip list. Spill writes records to
// a pebble store and replays them with a single forward scan.
package group

import (
	"errors"
	"iter"

	"github.com/oy3o/shuffle"
)

// Group is one key with its values, shaped for
// shuffle.FromKeyBytesGroupedLazyValues.
type Group[V any] = shuffle.Pair[shuffle.ByteKey, iter.Seq[*shuffle.LazyValue[V]]]

// Grouper collects records and replays them grouped by key.
type Grouper[V any] interface {
	// Add records one value under key. value is copied.
	Add(key shuffle.ByteKey, value []byte) error
	// Range calls fn once per key in byte order and stops at the first error.
	// The group's value sequence is valid only during the call.
	Range(fn func(Group[V]) error) error
	Close() error
}

var (
	ErrClosed     = errors.New("group: closed")
	ErrCorruptKey = errors.New("group: corrupt spill key")
)
