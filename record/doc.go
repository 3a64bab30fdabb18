// Package record maps structured metadata records to and from metacoder buffers.
//
// Three record schemas are supported, each with its own packing strategy:
//
//	Record       | Strategy                         | Wire form
//	-------------|----------------------------------|--------------------------------
//	Agreement    | delimiter-joined text            | 0x + hex(UTF-8 text)
//	Certificate  | fixed-schema contract ABI tuple  | 0x + ABI head/tail encoding
//	Claim        | dynamic string array codec       | 0x + encoding.EncodeStringArray
//
// Field identity is positional: every coder writes and reads its fields in a
// fixed order, and no field names are stored.
//
// # Basic Usage
//
//	encoded, err := record.EncodeClaim(record.Claim{
//	    Beneficiary: "Test beneficiary",
//	    ProofID:     "11a3b3dc-d74a-4b72-b6cb-01ef2d8e7e91",
//	})
//	if err != nil {
//	    return err
//	}
//
//	claim, err := record.DecodeClaim(encoded)
//
// # Slot Size
//
// On-chain metadata slots have a fixed capacity. A Coder built with
// WithMaxSize rejects records whose encoded payload would not fit:
//
//	coder, _ := record.NewCoder(record.WithMaxSize(512))
//	_, err := coder.EncodeClaim(claim) // errors.Is(err, errs.ErrSlotOverflow)
//
// # Logging
//
// Coders log at debug level through zap. The package logger is a no-op until
// SetLogger is called; WithLogger overrides it per Coder.
package record
