// Package wire provides the CBOR (RFC 8949) encoding used to carry
// duration values in binary documents.
//
// Duration fields are written as CBOR text strings holding the duration
// string ("90s", "1500us"), never as integers, so documents stay readable
// in diagnostic notation and independent of the tick size.
//
// # Deterministic Encoding
//
// Maps are sorted canonically and indefinite lengths are forbidden, so the
// same document always encodes to the same bytes.
//
// # Lenient Decoding
//
// Decoding accepts indefinite-length items and duplicate map keys (last
// wins) for compatibility with other encoders.
package wire
