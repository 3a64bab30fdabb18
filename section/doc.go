// Package section defines the low-level word layout of metacoder string array buffers.
//
// This package provides the constants and primitives that describe the physical
// layout of an encoded string array: 32-byte words, padded item lengths and the
// end-offset table. It handles the byte-level arithmetic so that the encoding
// package only deals with text.
//
// # Buffer Structure
//
// An encoded string array of N items consists of fixed-size words followed by
// padded item data:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Count (32 bytes)                                        │
//	│  - big-endian unsigned item count N                     │
//	├─────────────────────────────────────────────────────────┤
//	│ End Offset Table (N × 32 bytes)                         │
//	│  - entry i = Σ PaddedLen(item k) for k = 0..i           │
//	│  - cumulative END of item i, relative to the data start │
//	├─────────────────────────────────────────────────────────┤
//	│ Filler (32 bytes, all zero)                             │
//	│  - structural constant, carries no data                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Item Data (Σ PaddedLen bytes)                           │
//	│  - UTF-8 bytes right-padded with zeros to 32-byte words │
//	│  - empty items still occupy one zero word               │
//	└─────────────────────────────────────────────────────────┘
//
// # Example
//
// The list ["a", "bb", ""] is laid out as:
//
//	Word | Content
//	-----|------------------------------------------
//	0    | 3                 (count)
//	1    | 32                (end of "a")
//	2    | 64                (end of "bb")
//	3    | 96                (end of "")
//	4    | 0                 (filler)
//	5    | "a"  + 31 zero bytes
//	6    | "bb" + 30 zero bytes
//	7    | 32 zero bytes
//
// # Offsets
//
// Because the table stores ends rather than starts, decoders rebase every
// entry against the filler word: end[i] = Ends[i] + 32 and start[i] = end[i-1],
// with end[-1] = 32. Layout and ParseLayout model this explicitly.
package section
