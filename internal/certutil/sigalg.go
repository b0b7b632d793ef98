package certutil

import (
	"crypto/x509"

	"github.com/keywarden/keywarden/pkg/primitive"
)

// signatureHash maps a signature algorithm to the hash function whose
// collision resistance the signature relies on. Ed25519 commits to
// SHA-512 internally.
var signatureHash = map[x509.SignatureAlgorithm]primitive.Hash{
	x509.MD2WithRSA:       primitive.HashNotSupported,
	x509.MD5WithRSA:       primitive.MD5,
	x509.SHA1WithRSA:      primitive.SHA1,
	x509.DSAWithSHA1:      primitive.SHA1,
	x509.ECDSAWithSHA1:    primitive.SHA1,
	x509.SHA256WithRSA:    primitive.SHA256,
	x509.SHA384WithRSA:    primitive.SHA384,
	x509.SHA512WithRSA:    primitive.SHA512,
	x509.SHA256WithRSAPSS: primitive.SHA256,
	x509.SHA384WithRSAPSS: primitive.SHA384,
	x509.SHA512WithRSAPSS: primitive.SHA512,
	x509.DSAWithSHA256:    primitive.SHA256,
	x509.ECDSAWithSHA256:  primitive.SHA256,
	x509.ECDSAWithSHA384:  primitive.SHA384,
	x509.ECDSAWithSHA512:  primitive.SHA512,
	x509.PureEd25519:      primitive.SHA512,
}

// SignatureHash resolves the hash primitive a certificate's signature
// algorithm commits to. Unknown algorithms (including the pure PQC
// signatures, which do not reduce to a single catalog hash) yield
// ErrUnsupportedSignature.
func SignatureHash(cert *x509.Certificate) (primitive.Hash, error) {
	h, ok := signatureHash[cert.SignatureAlgorithm]
	if !ok || h.ID == primitive.NotSupportedID {
		return primitive.HashNotSupported, NewAssessError("signature", ErrUnsupportedSignature)
	}
	return h, nil
}
