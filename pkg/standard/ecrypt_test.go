package standard

import (
	"testing"

	"github.com/keywarden/keywarden/pkg/primitive"
)

func TestU_ECRYPT_ValidateSymmetric(t *testing.T) {
	tests := []struct {
		name string
		year uint16
		key  primitive.Symmetric
		want primitive.Symmetric
		ok   bool
	}{
		{"aes-128", 2023, primitive.AES128, primitive.AES128, true},
		{"aes-256", 2023, primitive.AES256, primitive.AES256, true},
		{"camellia-192", 2023, primitive.CAMELLIA192, primitive.AES192, true},
		{"des", 2023, primitive.DES, primitive.AES128, false},
		{"2tdea-near-term", 2023, primitive.TDEA2, primitive.AES128, true},
		{"2tdea-past-horizon", 2029, primitive.TDEA2, primitive.AES128, false},
		{"3tdea-near-term", 2023, primitive.TDEA3, primitive.AES128, true},
		{"3tdea-past-horizon", 2029, primitive.TDEA3, primitive.AES128, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ECRYPT.ValidateSymmetric(NewContext(WithYear(tt.year)), tt.key)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateSymmetric(%v) = (%v, %v), want (%v, %v)", tt.key, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_ECRYPT_ValidateHash(t *testing.T) {
	tests := []struct {
		name string
		year uint16
		hash primitive.Hash
		want primitive.Hash
		ok   bool
	}{
		{"sha-1-legacy", 2023, primitive.SHA1, primitive.SHA224, true},
		{"sha-1-past-horizon", 2029, primitive.SHA1, primitive.SHA256, false},
		{"ripemd-160-legacy", 2023, primitive.RIPEMD160, primitive.SHA224, true},
		{"sha-256", 2023, primitive.SHA256, primitive.SHA256, true},
		{"sha3-512", 2023, primitive.SHA3_512, primitive.SHA512, true},
		{"md5-undiscussed", 2023, primitive.MD5, primitive.SHA256, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ECRYPT.ValidateHash(NewContext(WithYear(tt.year)), tt.hash)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateHash(%v) = (%v, %v), want (%v, %v)", tt.hash, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_ECRYPT_ValidateEcc(t *testing.T) {
	tests := []struct {
		name string
		year uint16
		key  primitive.Ecc
		want primitive.Ecc
		ok   bool
	}{
		{"p-224-near-term", 2023, primitive.SECP224R1, primitive.P224, true},
		{"p-224-past-horizon", 2029, primitive.SECP224R1, primitive.P256, false},
		{"p-256", 2023, primitive.PRIME256V1, primitive.P256, true},
		{"secp256k1", 2023, primitive.SECP256K1, primitive.P256, true},
		{"ed448", 2023, primitive.ED448, primitive.P521, true},
		{"sect571r1-undiscussed", 2023, primitive.SECT571R1, primitive.P256, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ECRYPT.ValidateEcc(NewContext(WithYear(tt.year)), tt.key)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateEcc(%v) = (%v, %v), want (%v, %v)", tt.key, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_ECRYPT_ValidateIfc_NearTermHorizon(t *testing.T) {
	rec, ok := ECRYPT.ValidateIfc(NewContext(WithYear(2023)), primitive.IFC1024)
	if !ok || rec != primitive.IFC2048 {
		t.Errorf("ifc-1024 in 2023: got (%v, %v), want (IFC2048, true)", rec, ok)
	}
	rec, ok = ECRYPT.ValidateIfc(NewContext(WithYear(2029)), primitive.IFC1024)
	if ok || rec != primitive.IFC3072 {
		t.Errorf("ifc-1024 in 2029: got (%v, %v), want (IFC3072, false)", rec, ok)
	}
	rec, ok = ECRYPT.ValidateIfc(Default(), primitive.IFC4096)
	if !ok || rec != primitive.IFC3072 {
		t.Errorf("ifc-4096: got (%v, %v), want (IFC3072, true)", rec, ok)
	}
}

func TestU_ECRYPT_ValidateFfc(t *testing.T) {
	rec, ok := ECRYPT.ValidateFfc(NewContext(WithYear(2023)), primitive.FFC1024_160)
	if !ok || rec != primitive.FFC2048_224 {
		t.Errorf("ffc-1024-160 in 2023: got (%v, %v), want (FFC2048_224, true)", rec, ok)
	}
	rec, ok = ECRYPT.ValidateFfc(NewContext(WithYear(2029)), primitive.FFC1024_160)
	if ok || rec != primitive.FFC3072_256 {
		t.Errorf("ffc-1024-160 in 2029: got (%v, %v), want (FFC3072_256, false)", rec, ok)
	}
	rec, ok = ECRYPT.ValidateFfc(Default(), primitive.FFC3072_256)
	if !ok || rec != primitive.FFC3072_256 {
		t.Errorf("ffc-3072-256: got (%v, %v), want (FFC3072_256, true)", rec, ok)
	}
}
