package certutil

import (
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/asn1"
	"fmt"

	"github.com/cloudflare/circl/sign/ed448"
	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"

	"github.com/keywarden/keywarden/pkg/primitive"
)

// Key algorithm OIDs resolved from the SPKI when Go's parser does not
// expose the key type itself.
var (
	oidKeyEd448   = asn1.ObjectIdentifier{1, 3, 101, 113}
	oidKeyX25519  = asn1.ObjectIdentifier{1, 3, 101, 110}
	oidKeyX448    = asn1.ObjectIdentifier{1, 3, 101, 111}
	oidKeyMLDSA44 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 17}
	oidKeyMLDSA65 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 18}
	oidKeyMLDSA87 = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 3, 19}
)

// Named curve OIDs, keyed by dotted form for table lookup.
var curveByOID = map[string]primitive.Ecc{
	"1.2.840.10045.3.1.1":   primitive.PRIME192V1,
	"1.2.840.10045.3.1.2":   primitive.PRIME192V2,
	"1.2.840.10045.3.1.3":   primitive.PRIME192V3,
	"1.2.840.10045.3.1.4":   primitive.PRIME239V1,
	"1.2.840.10045.3.1.5":   primitive.PRIME239V2,
	"1.2.840.10045.3.1.6":   primitive.PRIME239V3,
	"1.2.840.10045.3.1.7":   primitive.PRIME256V1,
	"1.3.132.0.6":           primitive.SECP112R1,
	"1.3.132.0.7":           primitive.SECP112R2,
	"1.3.132.0.28":          primitive.SECP128R1,
	"1.3.132.0.29":          primitive.SECP128R2,
	"1.3.132.0.9":           primitive.SECP160K1,
	"1.3.132.0.8":           primitive.SECP160R1,
	"1.3.132.0.30":          primitive.SECP160R2,
	"1.3.132.0.31":          primitive.SECP192K1,
	"1.3.132.0.32":          primitive.SECP224K1,
	"1.3.132.0.33":          primitive.SECP224R1,
	"1.3.132.0.10":          primitive.SECP256K1,
	"1.3.132.0.34":          primitive.SECP384R1,
	"1.3.132.0.35":          primitive.SECP521R1,
	"1.3.132.0.16":          primitive.SECT283K1,
	"1.3.132.0.17":          primitive.SECT283R1,
	"1.3.132.0.36":          primitive.SECT409K1,
	"1.3.132.0.37":          primitive.SECT409R1,
	"1.3.132.0.38":          primitive.SECT571K1,
	"1.3.132.0.39":          primitive.SECT571R1,
	"1.3.36.3.3.2.8.1.1.1":  primitive.BRAINPOOLP160R1,
	"1.3.36.3.3.2.8.1.1.2":  primitive.BRAINPOOLP160T1,
	"1.3.36.3.3.2.8.1.1.3":  primitive.BRAINPOOLP192R1,
	"1.3.36.3.3.2.8.1.1.4":  primitive.BRAINPOOLP192T1,
	"1.3.36.3.3.2.8.1.1.5":  primitive.BRAINPOOLP224R1,
	"1.3.36.3.3.2.8.1.1.6":  primitive.BRAINPOOLP224T1,
	"1.3.36.3.3.2.8.1.1.7":  primitive.BRAINPOOLP256R1,
	"1.3.36.3.3.2.8.1.1.8":  primitive.BRAINPOOLP256T1,
	"1.3.36.3.3.2.8.1.1.9":  primitive.BRAINPOOLP320R1,
	"1.3.36.3.3.2.8.1.1.10": primitive.BRAINPOOLP320T1,
	"1.3.36.3.3.2.8.1.1.11": primitive.BRAINPOOLP384R1,
	"1.3.36.3.3.2.8.1.1.12": primitive.BRAINPOOLP384T1,
	"1.3.36.3.3.2.8.1.1.13": primitive.BRAINPOOLP512R1,
	"1.3.36.3.3.2.8.1.1.14": primitive.BRAINPOOLP512T1,
	"1.2.156.10197.1.301":   primitive.SM2,
}

// KeyInfo is the primitive-level view of a certificate's subject
// public key. Exactly one of the variant fields is meaningful, chosen
// by Family.
type KeyInfo struct {
	// Family is "ecc", "ifc", "ffc" or "pqc".
	Family string
	// Name is the display name of the key primitive, e.g.
	// "prime256v1", "rsa-2048", "dsa-2048-224", "ml-dsa-65".
	Name string

	Ecc primitive.Ecc
	Ifc primitive.Ifc
	Ffc primitive.Ffc
}

// KeyPrimitive resolves a certificate's subject public key to its
// catalog primitive. Lattice keys parse through circl so a malformed
// key is distinguished from an unknown algorithm, but they have no
// classical catalog entry and return ErrUnsupportedKey.
func KeyPrimitive(cert *x509.Certificate) (*KeyInfo, error) {
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		k := uint16(key.N.BitLen())
		return &KeyInfo{
			Family: "ifc",
			Name:   fmt.Sprintf("rsa-%d", k),
			Ifc:    primitive.Ifc{K: k},
		}, nil
	case *ecdsa.PublicKey:
		e := curveFromParams(key.Curve)
		if e.ID == primitive.NotSupportedID {
			return nil, NewAssessError("key", ErrUnsupportedKey)
		}
		return &KeyInfo{Family: "ecc", Name: primitive.EccName(e), Ecc: e}, nil
	case ed25519.PublicKey:
		return &KeyInfo{Family: "ecc", Name: primitive.EccName(primitive.ED25519), Ecc: primitive.ED25519}, nil
	case *dsa.PublicKey:
		l := uint16(key.P.BitLen())
		n := uint16(key.Q.BitLen())
		return &KeyInfo{
			Family: "ffc",
			Name:   fmt.Sprintf("dsa-%d-%d", l, n),
			Ffc:    primitive.Ffc{L: l, N: n},
		}, nil
	}
	return keyPrimitiveFromSPKI(cert.RawSubjectPublicKeyInfo)
}

// keyPrimitiveFromSPKI handles key algorithms Go's x509 parser leaves
// opaque.
func keyPrimitiveFromSPKI(raw []byte) (*KeyInfo, error) {
	info, err := parseSPKI(raw)
	if err != nil {
		return nil, err
	}
	switch {
	case info.Algorithm.Equal(oidKeyEd448):
		if len(info.PublicKey) != ed448.PublicKeySize {
			return nil, NewAssessError("key", ErrUnsupportedKey)
		}
		return &KeyInfo{Family: "ecc", Name: primitive.EccName(primitive.ED448), Ecc: primitive.ED448}, nil
	case info.Algorithm.Equal(oidKeyX25519):
		return &KeyInfo{Family: "ecc", Name: primitive.EccName(primitive.X25519), Ecc: primitive.X25519}, nil
	case info.Algorithm.Equal(oidKeyX448):
		return &KeyInfo{Family: "ecc", Name: primitive.EccName(primitive.X448), Ecc: primitive.X448}, nil
	case info.Algorithm.Equal(oidKeyMLDSA44):
		return pqcKey("ml-dsa-44", info.PublicKey, func(b []byte) error {
			_, err := mldsa44.Scheme().UnmarshalBinaryPublicKey(b)
			return err
		})
	case info.Algorithm.Equal(oidKeyMLDSA65):
		return pqcKey("ml-dsa-65", info.PublicKey, func(b []byte) error {
			_, err := mldsa65.Scheme().UnmarshalBinaryPublicKey(b)
			return err
		})
	case info.Algorithm.Equal(oidKeyMLDSA87):
		return pqcKey("ml-dsa-87", info.PublicKey, func(b []byte) error {
			_, err := mldsa87.Scheme().UnmarshalBinaryPublicKey(b)
			return err
		})
	}
	return nil, NewAssessError("key", ErrUnsupportedKey)
}

// pqcKey records a recognised post-quantum key. The catalog has no
// entry for these, so the caller reports them without classification.
func pqcKey(name string, raw []byte, parse func([]byte) error) (*KeyInfo, error) {
	if err := parse(raw); err != nil {
		return nil, NewAssessError("key", ErrUnsupportedKey)
	}
	return &KeyInfo{Family: "pqc", Name: name}, nil
}

func curveFromParams(c elliptic.Curve) primitive.Ecc {
	switch c {
	case elliptic.P224():
		return primitive.SECP224R1
	case elliptic.P256():
		return primitive.PRIME256V1
	case elliptic.P384():
		return primitive.SECP384R1
	case elliptic.P521():
		return primitive.SECP521R1
	}
	// Non-stdlib curves come back by name when the parser kept one.
	if params := c.Params(); params != nil {
		if e := primitive.EccByName(params.Name); e.ID != primitive.NotSupportedID {
			return e
		}
	}
	return primitive.EccNotSupported
}

// CurveByOID resolves a named curve OID to its catalog entry, for
// callers that work from raw SPKI parameters.
func CurveByOID(oid asn1.ObjectIdentifier) primitive.Ecc {
	if e, ok := curveByOID[oid.String()]; ok {
		return e
	}
	return primitive.EccNotSupported
}
