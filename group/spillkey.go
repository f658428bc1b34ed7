package group

import (
	"bytes"

	"github.com/oy3o/shuffle"
)

// Spill keys are the user key with every 0x00 escaped as 0x00 0xff, a 0x00
// 0x01 terminator and a big-endian sequence number. The escaping keeps
// pebble's byte order equal to ByteKey.Compare across keys of different
// length, and the sequence keeps values of one key in insertion order.

var terminator = []byte{0x00, 0x01}

func appendSpillKey(dst, key []byte, seq uint64) []byte {
	for _, c := range key {
		if c == 0x00 {
			dst = append(dst, 0x00, 0xff)
			continue
		}
		dst = append(dst, c)
	}
	dst = append(dst, terminator...)
	return shuffle.BE.AppendUint64(dst, seq)
}

// decodeSpillKey returns a fresh copy of the user key.
func decodeSpillKey(b []byte) ([]byte, uint64, error) {
	if len(b) < len(terminator)+8 {
		return nil, 0, ErrCorruptKey
	}
	body, tail := b[:len(b)-8], b[len(b)-8:]
	if !bytes.HasSuffix(body, terminator) {
		return nil, 0, ErrCorruptKey
	}
	body = body[:len(body)-len(terminator)]

	key := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == 0x00 {
			if i+1 >= len(body) || body[i+1] != 0xff {
				return nil, 0, ErrCorruptKey
			}
			i++
		}
		key = append(key, c)
	}
	return key, shuffle.BE.Uint64(tail), nil
}
