// Package codecs adapts third-party serialization libraries to the
// shuffle.Codec contract: Avro, Protocol Buffers, CBOR and a zstd
// compression wrapper around any other codec.
//
// Grouping by encoded key needs equal keys to encode to equal bytes. CBOR and
// Proto are configured for deterministic output; Avro binary encoding is
// deterministic for everything except maps.
package codecs
