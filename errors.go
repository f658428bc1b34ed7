package shuffle

import (
	"errors"
	"fmt"
)

var (
	// ErrEncode is matched by every *EncodeError.
	ErrEncode = errors.New("shuffle: encode failed")

	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("shuffle: decode failed")

	// ErrNilInput indicates that a batch decode was handed a nil element. It is
	// reported before the element is decoded and never matches ErrDecode.
	ErrNilInput = errors.New("shuffle: cannot decode nil input")

	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("shuffle: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("shuffle: WriteTo called with a nil io.Writer")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("shuffle: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("shuffle: reader returned invalid count from Read")

	// ErrTruncatedData indicates that a read operation could not complete because the
	// underlying data source ended before all expected bytes were read.
	ErrTruncatedData = errors.New("shuffle: truncated data")

	// ErrFieldTooLarge indicates a length prefix larger than the reader accepts.
	ErrFieldTooLarge = errors.New("shuffle: length-prefixed field too large")

	// ErrNoCodec indicates that a LazyValue had to encode or decode but was
	// given no codec to do it with.
	ErrNoCodec = errors.New("shuffle: no codec")
)

// EncodeError reports a codec that could not serialize a value.
type EncodeError struct {
	Type  string // Go type of the offending value
	Codec string // codec description
	Err   error  // underlying codec failure
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("shuffle: error encoding value of type %s with codec %s: %v", e.Type, e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error        { return e.Err }
func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

// DecodeError reports a codec that could not deserialize bytes.
type DecodeError struct {
	Type  string // Go type the bytes were decoded into
	Codec string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("shuffle: error decoding bytes for codec %s into %s: %v", e.Codec, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error        { return e.Err }
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// describe names a codec for diagnostics, preferring its String method.
func describe(c any) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}

// typeName returns the Go type of T, even when T is an interface type.
func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
