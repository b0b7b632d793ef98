package standard

import (
	"testing"

	"github.com/keywarden/keywarden/pkg/primitive"
)

func TestU_BSI_ValidateSymmetric(t *testing.T) {
	tests := []struct {
		name string
		key  primitive.Symmetric
		want primitive.Symmetric
		ok   bool
	}{
		{"aes-128", primitive.AES128, primitive.AES128, true},
		{"aes-192", primitive.AES192, primitive.AES192, true},
		{"aes-256", primitive.AES256, primitive.AES256, true},
		{"3tdea-unspecified", primitive.TDEA3, primitive.AES128, false},
		{"des-unspecified", primitive.DES, primitive.AES128, false},
	}
	ctx := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := BSI.ValidateSymmetric(ctx, tt.key)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateSymmetric(%v) = (%v, %v), want (%v, %v)", tt.key, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_BSI_ValidateEcc(t *testing.T) {
	tests := []struct {
		name string
		year uint16
		key  primitive.Ecc
		want primitive.Ecc
		ok   bool
	}{
		{"brainpoolP256r1", 2023, primitive.BRAINPOOLP256R1, primitive.BRAINPOOLP256R1, true},
		{"brainpoolP384r1", 2023, primitive.BRAINPOOLP384R1, primitive.BRAINPOOLP384R1, true},
		{"brainpoolP512r1", 2023, primitive.BRAINPOOLP512R1, primitive.BRAINPOOLP512R1, true},
		{"prime256v1", 2023, primitive.PRIME256V1, primitive.BRAINPOOLP256R1, true},
		{"224-bit-before-transition", 2022, primitive.BRAINPOOLP224R1, primitive.BRAINPOOLP224R1, true},
		{"224-bit-after-transition", 2023, primitive.BRAINPOOLP224R1, primitive.BRAINPOOLP256R1, false},
		{"secp256k1-unspecified", 2023, primitive.SECP256K1, primitive.BRAINPOOLP256R1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := BSI.ValidateEcc(NewContext(WithYear(tt.year)), tt.key)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateEcc(%v) = (%v, %v), want (%v, %v)", tt.key, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_BSI_ValidateHash(t *testing.T) {
	ctx := Default()
	// SHA-1 is not specified by the guideline at all, so it rejects
	// without any transition grace.
	rec, ok := BSI.ValidateHash(ctx, primitive.SHA1)
	if ok || rec != primitive.SHA256 {
		t.Errorf("sha1: got (%v, %v), want (SHA256, false)", rec, ok)
	}
	rec, ok = BSI.ValidateHash(ctx, primitive.SHA256)
	if !ok || rec != primitive.SHA256 {
		t.Errorf("sha256: got (%v, %v), want (SHA256, true)", rec, ok)
	}
	rec, ok = BSI.ValidateHash(ctx, primitive.SHA3_384)
	if !ok || rec != primitive.SHA384 {
		t.Errorf("sha3-384: got (%v, %v), want (SHA384, true)", rec, ok)
	}
}

func TestU_BSI_ValidateIfc_ModulusTransition(t *testing.T) {
	rec, ok := BSI.ValidateIfc(NewContext(WithYear(2023)), primitive.IFC2048)
	if !ok || rec != primitive.IFC2048 {
		t.Errorf("year 2023: got (%v, %v), want (IFC2048, true)", rec, ok)
	}
	rec, ok = BSI.ValidateIfc(NewContext(WithYear(2024)), primitive.IFC2048)
	if ok || rec != primitive.IFC3072 {
		t.Errorf("year 2024: got (%v, %v), want (IFC3072, false)", rec, ok)
	}
	rec, ok = BSI.ValidateIfc(Default(), primitive.IFC3072)
	if !ok || rec != primitive.IFC3072 {
		t.Errorf("ifc-3072: got (%v, %v), want (IFC3072, true)", rec, ok)
	}
}

func TestU_BSI_ValidateFfc(t *testing.T) {
	ctx := Default()
	rec, ok := BSI.ValidateFfc(ctx, primitive.FFC3072_256)
	if !ok || rec != primitive.FFC3072_256 {
		t.Errorf("ffc-3072-256: got (%v, %v), want (FFC3072_256, true)", rec, ok)
	}
	// The 2000-bit group transition ended in 2022.
	rec, ok = BSI.ValidateFfc(ctx, primitive.FFC2048_256)
	if ok || rec != primitive.FFC3072_256 {
		t.Errorf("ffc-2048-256: got (%v, %v), want (FFC3072_256, false)", rec, ok)
	}
	rec, ok = BSI.ValidateFfc(NewContext(WithYear(2022)), primitive.FFC2048_256)
	if !ok || rec != primitive.FFC2048_256 {
		t.Errorf("ffc-2048-256 in 2022: got (%v, %v), want (FFC2048_256, true)", rec, ok)
	}
}
