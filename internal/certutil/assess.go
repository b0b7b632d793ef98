package certutil

import (
	"crypto/x509"
	"errors"

	"github.com/keywarden/keywarden/internal/report"
	"github.com/keywarden/keywarden/pkg/primitive"
	"github.com/keywarden/keywarden/pkg/standard"
)

// Assess evaluates a certificate's public key and signature hash
// against a standard and returns the combined report. A key or
// signature algorithm outside the catalog becomes a non-compliant
// finding rather than an error; only unparsable input fails.
func Assess(cert *x509.Certificate, std standard.Standard, ctx standard.Context) (*report.Report, error) {
	r := report.New(std.Name(), ctx.Security(), ctx.Year())
	r.Subject = cert.Subject.String()

	key, err := KeyPrimitive(cert)
	switch {
	case errors.Is(err, ErrUnsupportedKey):
		r.Add(report.Finding{
			Aspect:      "public-key",
			Family:      "unknown",
			Primitive:   primitive.Unrecognised,
			Compliant:   false,
			Recommended: primitive.Unrecognised,
		})
	case err != nil:
		return nil, err
	default:
		r.Add(keyFinding(key, std, ctx))
	}

	hash, err := SignatureHash(cert)
	if err != nil {
		r.Add(report.Finding{
			Aspect:      "signature-hash",
			Family:      "hash",
			Primitive:   primitive.Unrecognised,
			Compliant:   false,
			Recommended: primitive.Unrecognised,
		})
		return r, nil
	}
	rec, ok := std.ValidateHash(ctx, hash)
	r.Add(report.Finding{
		Aspect:      "signature-hash",
		Family:      "hash",
		Primitive:   primitive.HashName(hash),
		Compliant:   ok,
		Recommended: primitive.HashName(rec),
	})
	return r, nil
}

func keyFinding(key *KeyInfo, std standard.Standard, ctx standard.Context) report.Finding {
	f := report.Finding{Aspect: "public-key", Family: key.Family, Primitive: key.Name}
	switch key.Family {
	case "ecc":
		rec, ok := std.ValidateEcc(ctx, key.Ecc)
		f.Compliant = ok
		f.Recommended = primitive.EccName(rec)
	case "ifc":
		rec, ok := std.ValidateIfc(ctx, key.Ifc)
		f.Compliant = ok
		f.Recommended = ifcName(rec)
	case "ffc":
		rec, ok := std.ValidateFfc(ctx, key.Ffc)
		f.Compliant = ok
		f.Recommended = ffcName(rec)
	default:
		// Recognised post-quantum keys have no classical tier to
		// place them in.
		f.Compliant = false
		f.Recommended = primitive.Unrecognised
	}
	return f
}
