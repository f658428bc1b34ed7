package shuffle

import "encoding/binary"

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the default byte order of Reader, Writer and the built-in
	// fixed-width codecs. Big-endian keeps encoded integers of equal width
	// sorted the same way as their unsigned values.
	Order binary.ByteOrder = BE
)
