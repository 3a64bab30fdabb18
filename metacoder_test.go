package metacoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/metacoder/errs"
	"github.com/arloliu/metacoder/record"
	"github.com/arloliu/metacoder/section"
)

func TestStringArray(t *testing.T) {
	items := []string{"a", "bb", ""}

	encoded := EncodeStringArray(items)
	require.Len(t, encoded, 2+8*section.WordHexSize)

	decoded, err := DecodeStringArray(encoded)
	require.NoError(t, err)
	require.Equal(t, items, decoded)
}

func TestNewCoder(t *testing.T) {
	coder, err := NewCoder(record.WithMaxSize(256))
	require.NoError(t, err)
	require.Equal(t, 256, coder.MaxSize())

	_, err = NewCoder(record.WithMaxSize(-5))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestRecordWrappers(t *testing.T) {
	agreement := record.Agreement{
		ProductType:   "REC",
		EnergySources: []string{"WIND"},
		Country:       "US",
		Region:        "CA",
		AgreementID:   "agr-1",
		OrderID:       "ord-1",
	}
	encoded, err := EncodeAgreement(agreement)
	require.NoError(t, err)
	decodedAgreement, err := DecodeAgreement(encoded)
	require.NoError(t, err)
	require.Equal(t, agreement, decodedAgreement)

	cert := record.Certificate{ProductType: "I-REC", Data: "ext"}
	encoded, err = EncodeCertificate(cert)
	require.NoError(t, err)
	decodedCert, err := DecodeCertificate(encoded)
	require.NoError(t, err)
	require.Equal(t, "I-REC", decodedCert.ProductType)
	require.Equal(t, "ext", decodedCert.Data)
	require.Zero(t, decodedCert.GenerationStartTime.Sign())

	claim := record.Claim{Beneficiary: "Test beneficiary", ProofID: "p-1"}
	encoded, err = EncodeClaim(claim)
	require.NoError(t, err)
	decodedClaim, err := DecodeClaim(encoded)
	require.NoError(t, err)
	require.Equal(t, claim, decodedClaim)
}

func TestInspect(t *testing.T) {
	long := strings.Repeat("x", 40)
	encoded := EncodeStringArray([]string{"a", long, ""})

	report, err := Inspect(encoded)
	require.NoError(t, err)
	require.Equal(t, 3, report.Layout.Count)
	require.Equal(t, []uint64{32, 96, 128}, report.Layout.Ends)
	require.Equal(t, []section.Segment{
		{Start: 32, End: 64},
		{Start: 64, End: 128},
		{Start: 128, End: 160},
	}, report.Layout.Segments)
	require.Equal(t, []string{"a", long, ""}, report.Items)

	digest, err := PayloadDigest(encoded)
	require.NoError(t, err)
	require.Equal(t, digest, report.Digest)
	require.NotEqual(t, digest, mustDigest(t, EncodeStringArray([]string{"a", long})))
}

func TestInspect_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"empty", "", errs.ErrMalformedInput},
		{"no prefix", "ab", errs.ErrMissingPrefix},
		{"prefix only", "0x", errs.ErrTruncatedBuffer},
		{"not hex", "0xgg", errs.ErrDecode},
		{"count without table", "0x" + strings.Repeat("0", 63) + "2", errs.ErrTruncatedBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inspect(tt.input)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func mustDigest(t *testing.T, s string) uint64 {
	t.Helper()
	d, err := PayloadDigest(s)
	require.NoError(t, err)

	return d
}
