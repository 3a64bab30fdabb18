// Package metacoder packs ordered lists of text fields, and the metadata records
// built on top of them, into fixed-width 32-byte word buffers rendered as
// 0x-prefixed hexadecimal strings.
//
// The buffers are meant to be stored in, and read back from, a contract
// metadata slot. The core string array layout is:
//
//	[count word][end offset word]×N[filler word][padded item data]
//
// Every word is 32 bytes and every integer is big-endian. Each item is
// right-padded with zeros to a whole number of words, so a single buffer can
// hold fields of any length.
//
// # Core Features
//
//   - Deterministic dynamic string array codec with named decode errors
//   - Agreement, certificate and claim record coders
//   - Optional slot size guard per coder
//   - Structural inspection of encoded buffers with xxHash64 payload digests
//
// # Basic Usage
//
// Encoding and decoding a string list:
//
//	import "github.com/arloliu/metacoder"
//
//	encoded := metacoder.EncodeStringArray([]string{"a", "bb", ""})
//	items, err := metacoder.DecodeStringArray(encoded)
//
// Encoding a claim into a slot that holds at most 512 bytes:
//
//	coder, err := metacoder.NewCoder(record.WithMaxSize(512))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	encoded, err := coder.EncodeClaim(claim)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding and
// record packages, simplifying the most common use cases. For advanced usage
// and fine-grained control, use those packages directly.
package metacoder

import (
	"fmt"

	"github.com/arloliu/metacoder/encoding"
	"github.com/arloliu/metacoder/errs"
	"github.com/arloliu/metacoder/internal/hash"
	"github.com/arloliu/metacoder/record"
	"github.com/arloliu/metacoder/section"
)

// EncodeStringArray encodes an ordered text list into a 0x-prefixed hex buffer.
//
// See encoding.EncodeStringArray for the layout.
func EncodeStringArray(items []string) string {
	return encoding.EncodeStringArray(items)
}

// DecodeStringArray decodes a buffer produced by EncodeStringArray.
//
// Returns one of errs.ErrMalformedInput, errs.ErrMissingPrefix,
// errs.ErrTruncatedBuffer or errs.ErrDecode on failure.
func DecodeStringArray(s string) ([]string, error) {
	return encoding.DecodeStringArray(s)
}

// NewCoder creates a record coder.
//
// Available options:
//   - record.WithMaxSize(n): reject records whose payload exceeds n bytes
//   - record.WithLogger(l): log through l instead of the package logger
//
// Example:
//
//	coder, err := metacoder.NewCoder(record.WithMaxSize(1024))
func NewCoder(opts ...record.Option) (*record.Coder, error) {
	return record.NewCoder(opts...)
}

// EncodeAgreement packs an agreement with default settings.
func EncodeAgreement(a record.Agreement) (string, error) {
	return record.EncodeAgreement(a)
}

// DecodeAgreement unpacks an agreement.
func DecodeAgreement(s string) (record.Agreement, error) {
	return record.DecodeAgreement(s)
}

// EncodeCertificate packs a certificate with default settings.
func EncodeCertificate(cert record.Certificate) (string, error) {
	return record.EncodeCertificate(cert)
}

// DecodeCertificate unpacks a certificate.
func DecodeCertificate(s string) (record.Certificate, error) {
	return record.DecodeCertificate(s)
}

// EncodeClaim packs a claim with default settings.
func EncodeClaim(cl record.Claim) (string, error) {
	return record.EncodeClaim(cl)
}

// DecodeClaim unpacks a claim.
func DecodeClaim(s string) (record.Claim, error) {
	return record.DecodeClaim(s)
}

// Inspection is the structural report of an encoded string array buffer.
type Inspection struct {
	// Layout is the parsed count word and end-offset table.
	Layout section.Layout
	// Items holds the decoded items, in order.
	Items []string
	// Digest is the xxHash64 of the binary payload (after hex decoding).
	Digest uint64
}

// Inspect parses an encoded string array buffer and reports its structure.
//
// Every buffer accepted by DecodeStringArray can be inspected, and the same
// sentinel errors are returned for buffers that cannot.
func Inspect(s string) (Inspection, error) {
	data, err := encoding.DecodeHex(s)
	if err != nil {
		return Inspection{}, err
	}

	if len(data) < section.CountWordSize {
		return Inspection{}, fmt.Errorf("%w: need %d bytes for the count word, have %d",
			errs.ErrTruncatedBuffer, section.CountWordSize, len(data))
	}

	layout, err := section.ParseLayout(data)
	if err != nil {
		return Inspection{}, err
	}

	items, err := encoding.DecodeStringArrayBytes(data)
	if err != nil {
		return Inspection{}, err
	}

	return Inspection{
		Layout: layout,
		Items:  items,
		Digest: hash.Digest(data),
	}, nil
}

// PayloadDigest returns the xxHash64 of the binary payload of a 0x-prefixed
// hex buffer. Equal records encode to equal payloads, so the digest can be
// used to compare stored metadata without decoding it.
func PayloadDigest(s string) (uint64, error) {
	data, err := encoding.DecodeHex(s)
	if err != nil {
		return 0, err
	}

	return hash.Digest(data), nil
}
