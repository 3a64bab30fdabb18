// Package encoding implements the metacoder dynamic string array codec.
//
// The codec packs an ordered list of UTF-8 text items into one contiguous,
// 0x-prefixed hexadecimal buffer made of 32-byte words, and recovers the exact
// item boundaries on decode. See the section package for the word layout.
//
// # Basic Usage
//
//	buf := encoding.EncodeStringArray([]string{"a", "bb", ""})
//	// buf == "0x" + count word + 3 end offsets + filler + 3 data words
//
//	items, err := encoding.DecodeStringArray(buf)
//	if err != nil {
//	    return err
//	}
//	// items == []string{"a", "bb", ""}
//
// # Guarantees
//
//   - Encoding is deterministic: equal lists produce byte-identical buffers.
//   - For any list whose items contain no control characters,
//     DecodeStringArray(EncodeStringArray(items)) returns items.
//   - Decoding is all-or-nothing. On error no partial list is returned.
//
// # Control Characters
//
// Items are zero-padded to word boundaries, and decode removes padding by
// stripping every byte in 0x00-0x1F and 0x7F. Control characters inside an
// item are therefore indistinguishable from padding and are lost on decode.
// Callers must not rely on them surviving a round trip.
//
// # Errors
//
// DecodeStringArray reports failures through the sentinel errors of the errs
// package:
//   - errs.ErrMalformedInput: input shorter than the 0x prefix
//   - errs.ErrMissingPrefix: input does not start with 0x
//   - errs.ErrTruncatedBuffer: no count word, or count/offsets beyond the buffer
//   - errs.ErrDecode: invalid hex, descending offsets, or invalid UTF-8
//
// # Thread Safety
//
// All functions in this package are stateless and safe for concurrent use.
package encoding
