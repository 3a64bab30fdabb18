package record

// EncodeAgreement packs an agreement with the default Coder.
func EncodeAgreement(a Agreement) (string, error) {
	return defaultCoder.EncodeAgreement(a)
}

// DecodeAgreement unpacks an agreement with the default Coder.
func DecodeAgreement(s string) (Agreement, error) {
	return defaultCoder.DecodeAgreement(s)
}

// EncodeCertificate packs a certificate with the default Coder.
func EncodeCertificate(cert Certificate) (string, error) {
	return defaultCoder.EncodeCertificate(cert)
}

// DecodeCertificate unpacks a certificate with the default Coder.
func DecodeCertificate(s string) (Certificate, error) {
	return defaultCoder.DecodeCertificate(s)
}

// EncodeClaim packs a claim with the default Coder.
func EncodeClaim(cl Claim) (string, error) {
	return defaultCoder.EncodeClaim(cl)
}

// DecodeClaim unpacks a claim with the default Coder.
func DecodeClaim(s string) (Claim, error) {
	return defaultCoder.DecodeClaim(s)
}
