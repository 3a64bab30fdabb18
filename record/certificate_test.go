package record

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/metacoder/encoding"
	"github.com/arloliu/metacoder/errs"
)

// Millisecond timestamps for 2017-05-15, 2022-01-01 and 2022-01-31 (UTC).
const (
	commissioningMillis = 1494806400000
	periodStartMillis   = 1640995200000
	periodEndMillis     = 1643587200000
)

func testCertificate() Certificate {
	return Certificate{
		Generator: Generator{
			ID:                "123",
			Name:              "Ime",
			EnergySource:      "SOLAR",
			Region:            "EU",
			Country:           "HR",
			Capacity:          big.NewInt(1e9),
			CommissioningDate: big.NewInt(commissioningMillis),
		},
		GenerationStartTime: big.NewInt(periodStartMillis),
		GenerationEndTime:   big.NewInt(periodEndMillis),
		ProductType:         "I-REC",
		Data:                "test_external_id",
	}
}

func requireBigEqual(t *testing.T, expected, actual *big.Int, field string) {
	t.Helper()
	require.NotNil(t, actual, field)
	require.Zero(t, expected.Cmp(actual), "%s: expected %s, got %s", field, expected, actual)
}

func requireCertificateEqual(t *testing.T, expected, actual Certificate) {
	t.Helper()
	require.Equal(t, expected.Generator.ID, actual.Generator.ID)
	require.Equal(t, expected.Generator.Name, actual.Generator.Name)
	require.Equal(t, expected.Generator.EnergySource, actual.Generator.EnergySource)
	require.Equal(t, expected.Generator.Region, actual.Generator.Region)
	require.Equal(t, expected.Generator.Country, actual.Generator.Country)
	requireBigEqual(t, expected.Generator.Capacity, actual.Generator.Capacity, "capacity")
	requireBigEqual(t, expected.Generator.CommissioningDate, actual.Generator.CommissioningDate, "commissioningDate")
	requireBigEqual(t, expected.GenerationStartTime, actual.GenerationStartTime, "generationStartTime")
	requireBigEqual(t, expected.GenerationEndTime, actual.GenerationEndTime, "generationEndTime")
	require.Equal(t, expected.ProductType, actual.ProductType)
	require.Equal(t, expected.Data, actual.Data)
}

func TestCertificate_RoundTrip(t *testing.T) {
	cert := testCertificate()

	encoded, err := EncodeCertificate(cert)
	require.NoError(t, err)
	require.Equal(t, "0x", encoded[:2])

	decoded, err := DecodeCertificate(encoded)
	require.NoError(t, err)
	requireCertificateEqual(t, cert, decoded)
}

func TestCertificate_PartiallyEmpty(t *testing.T) {
	cert := testCertificate()
	cert.Generator = Generator{}

	encoded, err := EncodeCertificate(cert)
	require.NoError(t, err)

	decoded, err := DecodeCertificate(encoded)
	require.NoError(t, err)

	expected := cert
	expected.Generator = Generator{Capacity: new(big.Int), CommissioningDate: new(big.Int)}
	requireCertificateEqual(t, expected, decoded)
}

func TestCertificate_AllEmpty(t *testing.T) {
	encoded, err := EncodeCertificate(Certificate{})
	require.NoError(t, err)

	decoded, err := DecodeCertificate(encoded)
	require.NoError(t, err)

	zero := new(big.Int)
	requireCertificateEqual(t, Certificate{
		Generator:           Generator{Capacity: zero, CommissioningDate: zero},
		GenerationStartTime: zero,
		GenerationEndTime:   zero,
	}, decoded)
}

func TestCertificate_WordAligned(t *testing.T) {
	encoded, err := EncodeCertificate(testCertificate())
	require.NoError(t, err)

	data, err := encoding.DecodeHex(encoded)
	require.NoError(t, err)
	require.Zero(t, len(data)%32)

	// generationStartTime is the second head word.
	require.Equal(t, big.NewInt(periodStartMillis).FillBytes(make([]byte, 32)), data[32:64])
}

func TestCertificate_MaxUint256(t *testing.T) {
	cert := testCertificate()
	cert.Generator.Capacity = new(big.Int).Set(maxUint256)

	encoded, err := EncodeCertificate(cert)
	require.NoError(t, err)

	decoded, err := DecodeCertificate(encoded)
	require.NoError(t, err)
	requireBigEqual(t, maxUint256, decoded.Generator.Capacity, "capacity")
}

func TestEncodeCertificate_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Certificate)
		field  string
	}{
		{"negative capacity", func(c *Certificate) { c.Generator.Capacity = big.NewInt(-1) }, "generator.capacity"},
		{"negative start", func(c *Certificate) { c.GenerationStartTime = big.NewInt(-5) }, "generationStartTime"},
		{
			"wider than 256 bits",
			func(c *Certificate) { c.GenerationEndTime = new(big.Int).Lsh(big.NewInt(1), 256) },
			"generationEndTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := testCertificate()
			tt.mutate(&cert)

			_, err := EncodeCertificate(cert)
			require.ErrorIs(t, err, errs.ErrInvalidField)
			require.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDecodeCertificate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"empty", "", errs.ErrMalformedInput},
		{"no prefix", "1234", errs.ErrMissingPrefix},
		{"not hex", "0xqq", errs.ErrDecode},
		{"empty payload", "0x", errs.ErrDecode},
		{"short payload", "0x" + "00000001", errs.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCertificate(tt.input)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}
