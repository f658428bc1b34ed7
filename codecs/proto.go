package codecs

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Proto encodes generated protobuf messages with deterministic marshaling, so
// messages holding maps still produce stable keys.
type Proto[M proto.Message] struct {
	newMsg func() M
}

// NewProto builds a codec for the generated message type M (a pointer type
// such as *wrapperspb.StringValue).
func NewProto[M proto.Message]() Proto[M] {
	var zero M
	mt := zero.ProtoReflect().Type()
	return Proto[M]{newMsg: func() M { return mt.New().Interface().(M) }}
}

var marshalOptions = proto.MarshalOptions{Deterministic: true}

func (p Proto[M]) Encode(m M, w io.Writer) error {
	b, err := marshalOptions.Marshal(m)
	if err != nil {
		return err
	}
	return write(w, b)
}

func (p Proto[M]) Decode(r io.Reader) (M, error) {
	data, err := readAll(r)
	if err != nil {
		var zero M
		return zero, err
	}
	m := p.newMsg()
	if err := proto.Unmarshal(data, m); err != nil {
		var zero M
		return zero, err
	}
	return m, nil
}

func (p Proto[M]) String() string {
	var zero M
	return fmt.Sprintf("Proto[%s]", zero.ProtoReflect().Descriptor().FullName())
}

// protoString carries plain strings as google.protobuf.StringValue.
type protoString struct {
	msg Proto[*wrapperspb.StringValue]
}

func (c protoString) Encode(s string, w io.Writer) error {
	return c.msg.Encode(wrapperspb.String(s), w)
}

func (c protoString) Decode(r io.Reader) (string, error) {
	m, err := c.msg.Decode(r)
	if err != nil {
		return "", err
	}
	return m.GetValue(), nil
}

func (c protoString) String() string { return c.msg.String() }
