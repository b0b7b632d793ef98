package certutil

import (
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// spki holds the pieces of a SubjectPublicKeyInfo structure needed to
// resolve key algorithms Go's parser does not surface (Ed448, the
// lattice and hash based signature schemes).
type spki struct {
	Algorithm asn1.ObjectIdentifier
	// Parameters is the named curve OID when present; nil otherwise.
	Parameters asn1.ObjectIdentifier
	PublicKey  []byte
}

// parseSPKI reads the outer structure of a raw SubjectPublicKeyInfo.
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//	    algorithm        AlgorithmIdentifier,
//	    subjectPublicKey BIT STRING }
func parseSPKI(raw []byte) (*spki, error) {
	input := cryptobyte.String(raw)
	var body cryptobyte.String
	if !input.ReadASN1(&body, cbasn1.SEQUENCE) {
		return nil, NewAssessError("parse", ErrNotCertificate)
	}
	var algID cryptobyte.String
	if !body.ReadASN1(&algID, cbasn1.SEQUENCE) {
		return nil, NewAssessError("parse", ErrNotCertificate)
	}
	var out spki
	if !algID.ReadASN1ObjectIdentifier(&out.Algorithm) {
		return nil, NewAssessError("parse", ErrNotCertificate)
	}
	if algID.PeekASN1Tag(cbasn1.OBJECT_IDENTIFIER) {
		if !algID.ReadASN1ObjectIdentifier(&out.Parameters) {
			return nil, NewAssessError("parse", ErrNotCertificate)
		}
	}
	var key asn1.BitString
	if !body.ReadASN1BitString(&key) {
		return nil, NewAssessError("parse", ErrNotCertificate)
	}
	out.PublicKey = key.RightAlign()
	return &out, nil
}
