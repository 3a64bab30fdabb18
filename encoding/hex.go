package encoding

import (
	"encoding/hex"
	"fmt"

	"github.com/arloliu/metacoder/errs"
	"github.com/arloliu/metacoder/section"
)

// EncodeHex returns data as a 0x-prefixed lowercase hexadecimal string.
func EncodeHex(data []byte) string {
	out := make([]byte, len(section.HexPrefix)+hex.EncodedLen(len(data)))
	copy(out, section.HexPrefix)
	hex.Encode(out[len(section.HexPrefix):], data)

	return string(out)
}

// DecodeHex decodes a 0x-prefixed hexadecimal string. Both upper and lower case
// digits are accepted.
//
// Returns errs.ErrMalformedInput when s is shorter than the prefix,
// errs.ErrMissingPrefix when s does not start with 0x, and errs.ErrDecode for
// odd-length or non-hexadecimal input.
func DecodeHex(s string) ([]byte, error) {
	body, err := trimHexPrefix(s)
	if err != nil {
		return nil, err
	}

	return decodeHexBody(body)
}

func trimHexPrefix(s string) (string, error) {
	if len(s) < len(section.HexPrefix) {
		return "", fmt.Errorf("%w: got %d characters", errs.ErrMalformedInput, len(s))
	}

	if s[:len(section.HexPrefix)] != section.HexPrefix {
		return "", fmt.Errorf("%w: input starts with %q", errs.ErrMissingPrefix, s[:len(section.HexPrefix)])
	}

	return s[len(section.HexPrefix):], nil
}

func decodeHexBody(body string) ([]byte, error) {
	data, err := hex.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecode, err)
	}

	return data, nil
}
