package shuffle

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ByteKey is an immutable byte sequence with value semantics. Two keys are
// equal iff their bytes are equal, so a ByteKey can be used directly as a Go
// map key or compared with ==. The zero value is the empty key.
type ByteKey struct {
	s string // content; a string so the struct stays comparable and immutable
}

var _ Marshaler = ByteKey{}

// NewByteKey copies b into a new key.
func NewByteKey(b []byte) ByteKey {
	return ByteKey{s: string(b)}
}

// Bytes returns a copy of the key content.
func (k ByteKey) Bytes() []byte { return []byte(k.s) }

func (k ByteKey) Len() int { return len(k.s) }

func (k ByteKey) Equal(o ByteKey) bool { return k.s == o.s }

// Compare orders keys lexicographically by their bytes.
func (k ByteKey) Compare(o ByteKey) int { return strings.Compare(k.s, o.s) }

// Hash is xxhash64 of the content. It takes no seed and does not depend on the
// process, so every worker of a distributed engine computes the same value.
func (k ByteKey) Hash() uint64 { return xxhash.Sum64String(k.s) }

func (k ByteKey) String() string { return hex.EncodeToString([]byte(k.s)) }

// MarshalBinary returns a copy of the key content.
func (k ByteKey) MarshalBinary() ([]byte, error) { return k.Bytes(), nil }

// WriteTo writes the raw key content to w.
func (k ByteKey) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrWriteToNil
	}
	n, err := io.WriteString(w, k.s)
	if err == nil && n < len(k.s) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
