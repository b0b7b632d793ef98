package certutil

import (
	"crypto/x509"
	"encoding/pem"
	"os"
)

// Load reads a certificate from path, accepting PEM or raw DER.
func Load(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewAssessError("load", err)
	}
	return Parse(data)
}

// Parse decodes a certificate from PEM or raw DER bytes. When the
// input is PEM, the first CERTIFICATE block wins and any leading
// non-certificate blocks are skipped.
func Parse(data []byte) (*x509.Certificate, error) {
	der := data
	for block, rest := pem.Decode(data); block != nil; block, rest = pem.Decode(rest) {
		if block.Type == "CERTIFICATE" {
			der = block.Bytes
			break
		}
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, NewAssessError("parse", ErrNotCertificate)
	}
	return cert, nil
}
