// Metacoder encodes and decodes contract metadata records from the command line.
//
// Usage:
//
//	metacoder [flags] <agreement|certificate|claim-data|strings> encode <record>
//	metacoder [flags] <agreement|certificate|claim-data|strings> decode <hex>
//	metacoder [flags] inspect <hex>
//
// Records are read as JSON (comments and trailing commas allowed) or, with
// --input yaml, as YAML. A strings record is a list of strings. Passing "-"
// reads the argument from standard input.
//
// Decoded records and inspection reports are written as JSON, YAML or CBOR
// depending on --output.
//
// Exit codes:
//
//	0  success
//	1  encode, decode or output error (message on stderr)
//	2  usage error (bad flags, unknown command, missing argument)
//
// Environment:
//
//	METACODER_MAX_SIZE  slot size in bytes when --max-size is not given
package main
