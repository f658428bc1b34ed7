// Package shuffle bridges typed records and the byte sequences a shuffle
// substrate partitions, sorts, spills and transfers.
//
// Values are converted through an injected Codec. Encoded keys are wrapped in
// ByteKey so they compare and hash by content, and values that may never be
// inspected after a shuffle are carried in a LazyValue that decodes at most
// once. The Pair transforms compose the three into the per-record functions an
// engine applies on both sides of a shuffle boundary.
package shuffle

import (
	"encoding"
	"io"
)

// Codec converts between values of type T and a byte stream.
//
// Implementations are expected to round-trip: decoding the bytes produced by
// Encode yields a value equal to the original. Grouping by encoded keys is
// only correct when Encode is also deterministic, i.e. equal values always
// produce identical bytes. Neither property is verified here.
type Codec[T any] interface {
	// Encode writes the binary form of value to w.
	Encode(value T, w io.Writer) error
	// Decode reads one value from r.
	Decode(r io.Reader) (T, error)
}

// Marshaler is implemented by the byte-domain artifacts of this package
// (ByteKey, LazyValue) so an engine can write them to its own wire or spill
// format without knowing their element types.
type Marshaler interface {
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	io.WriterTo              // Method: WriteTo(writer io.Writer) (int64, error)
}

// Transform is the per-record adaptation point an engine plugs into its
// processing: one input, one output, no hidden state.
type Transform[In, Out any] interface {
	Apply(in In) (Out, error)
}

// Func adapts an ordinary function to Transform.
type Func[In, Out any] func(In) (Out, error)

// Apply calls f(in).
func (f Func[In, Out]) Apply(in In) (Out, error) { return f(in) }
