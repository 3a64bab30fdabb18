// Package errs defines the sentinel errors shared by all metacoder packages.
//
// Call sites wrap these with additional context using fmt.Errorf and the %w
// verb, so callers should match them with errors.Is:
//
//	items, err := encoding.DecodeStringArray(buf)
//	if errors.Is(err, errs.ErrTruncatedBuffer) {
//	    // buffer was cut short
//	}
package errs

import "errors"

// Buffer errors.
var (
	// ErrMalformedInput indicates the input is too short to even carry the 0x prefix.
	ErrMalformedInput = errors.New("malformed input: needs to be at least 2 characters long")
	// ErrMissingPrefix indicates the input does not start with the literal 0x prefix.
	ErrMissingPrefix = errors.New("missing 0x prefix")
	// ErrTruncatedBuffer indicates the declared count or offsets reference bytes beyond the buffer.
	ErrTruncatedBuffer = errors.New("truncated buffer")
	// ErrDecode indicates non-hexadecimal data, an inconsistent offset table or invalid UTF-8.
	ErrDecode = errors.New("decode error")
)

// Record errors.
var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrInvalidField  = errors.New("invalid record field")
	ErrSlotOverflow  = errors.New("encoded payload exceeds slot size")
	ErrInvalidOption = errors.New("invalid option")
)
