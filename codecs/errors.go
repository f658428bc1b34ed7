package codecs

import "errors"

var (
	ErrUnknownCodec = errors.New("codecs: unknown codec")
	ErrNativeType   = errors.New("codecs: unexpected native type")
)
