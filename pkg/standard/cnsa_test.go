package standard

import (
	"testing"

	"github.com/keywarden/keywarden/pkg/primitive"
)

func TestU_CNSA_ValidateSymmetric(t *testing.T) {
	tests := []struct {
		name string
		key  primitive.Symmetric
		want primitive.Symmetric
		ok   bool
	}{
		{"aes-256", primitive.AES256, primitive.AES256, true},
		{"aes-192", primitive.AES192, primitive.AES256, false},
		{"aes-128", primitive.AES128, primitive.AES256, false},
		{"3tdea-outside-suite", primitive.TDEA3, primitive.AES256, false},
	}
	ctx := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := CNSA.ValidateSymmetric(ctx, tt.key)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateSymmetric(%v) = (%v, %v), want (%v, %v)", tt.key, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_CNSA_ValidateEcc(t *testing.T) {
	tests := []struct {
		name string
		key  primitive.Ecc
		want primitive.Ecc
		ok   bool
	}{
		{"p-384", primitive.P384, primitive.P384, true},
		{"p-256-outside-suite", primitive.P256, primitive.P384, false},
		{"p-521-outside-suite", primitive.P521, primitive.P384, false},
		{"brainpoolP384r1-outside-suite", primitive.BRAINPOOLP384R1, primitive.P384, false},
	}
	ctx := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := CNSA.ValidateEcc(ctx, tt.key)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateEcc(%v) = (%v, %v), want (%v, %v)", tt.key, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_CNSA_ValidateHash(t *testing.T) {
	tests := []struct {
		name string
		hash primitive.Hash
		want primitive.Hash
		ok   bool
	}{
		{"sha-384", primitive.SHA384, primitive.SHA384, true},
		{"sha-512", primitive.SHA512, primitive.SHA512, true},
		{"sha-256-outside-suite", primitive.SHA256, primitive.SHA384, false},
		{"sha3-384-outside-suite", primitive.SHA3_384, primitive.SHA384, false},
	}
	ctx := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := CNSA.ValidateHash(ctx, tt.hash)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateHash(%v) = (%v, %v), want (%v, %v)", tt.hash, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_CNSA_ValidateIfcFfc(t *testing.T) {
	ctx := Default()
	rec, ok := CNSA.ValidateIfc(ctx, primitive.IFC3072)
	if !ok || rec != primitive.IFC3072 {
		t.Errorf("ifc-3072: got (%v, %v), want (IFC3072, true)", rec, ok)
	}
	rec, ok = CNSA.ValidateIfc(ctx, primitive.IFC2048)
	if ok || rec != primitive.IFC3072 {
		t.Errorf("ifc-2048: got (%v, %v), want (IFC3072, false)", rec, ok)
	}
	frec, ok := CNSA.ValidateFfc(ctx, primitive.FFC3072_256)
	if !ok || frec != primitive.FFC3072_256 {
		t.Errorf("ffc-3072-256: got (%v, %v), want (FFC3072_256, true)", frec, ok)
	}
	frec, ok = CNSA.ValidateFfc(ctx, primitive.FFC2048_224)
	if ok || frec != primitive.FFC3072_256 {
		t.Errorf("ffc-2048-224: got (%v, %v), want (FFC3072_256, false)", frec, ok)
	}
}
