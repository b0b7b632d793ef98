package standard

import (
	"testing"

	"github.com/keywarden/keywarden/pkg/primitive"
)

func TestU_TestingBaseline_EchoesInput(t *testing.T) {
	ctx := Default()
	if rec, ok := Testing.ValidateHash(ctx, primitive.MD5); !ok || rec != primitive.MD5 {
		t.Errorf("md5: got (%v, %v), want (MD5, true)", rec, ok)
	}
	if rec, ok := Testing.ValidateSymmetric(ctx, primitive.DES); !ok || rec != primitive.DES {
		t.Errorf("des: got (%v, %v), want (DES, true)", rec, ok)
	}
	if rec, ok := Testing.ValidateEcc(ctx, primitive.SECP160R1); !ok || rec != primitive.SECP160R1 {
		t.Errorf("secp160r1: got (%v, %v), want (SECP160R1, true)", rec, ok)
	}
	if rec, ok := Testing.ValidateIfc(ctx, primitive.IFC1024); !ok || rec != primitive.IFC1024 {
		t.Errorf("ifc-1024: got (%v, %v), want (IFC1024, true)", rec, ok)
	}
}

func TestU_TestingBaseline_RejectsNotSupported(t *testing.T) {
	ctx := Default()
	if _, ok := Testing.ValidateHash(ctx, primitive.HashNotSupported); ok {
		t.Error("ValidateHash accepted the not-supported sentinel")
	}
	if _, ok := Testing.ValidateSymmetric(ctx, primitive.SymmetricNotSupported); ok {
		t.Error("ValidateSymmetric accepted the not-supported sentinel")
	}
	if _, ok := Testing.ValidateEcc(ctx, primitive.EccNotSupported); ok {
		t.Error("ValidateEcc accepted the not-supported sentinel")
	}
	if _, ok := Testing.ValidateIfc(ctx, primitive.Ifc{}); ok {
		t.Error("ValidateIfc accepted a zero modulus")
	}
	if _, ok := Testing.ValidateFfc(ctx, primitive.FfcNotSupported); ok {
		t.Error("ValidateFfc accepted the not-supported sentinel")
	}
}

func TestU_TestingBaseline_NotRegistered(t *testing.T) {
	if _, ok := ByName("testing"); ok {
		t.Error("the testing baseline must not be reachable by name")
	}
}
