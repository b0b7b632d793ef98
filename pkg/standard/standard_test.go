package standard

import (
	"testing"

	"github.com/keywarden/keywarden/pkg/primitive"
)

func TestU_Registry_ByName(t *testing.T) {
	for _, name := range []string{"bsi", "cnsa", "ecrypt", "lenstra", "nist"} {
		std, ok := ByName(name)
		if !ok {
			t.Fatalf("ByName(%q) not found", name)
		}
		if std.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, std.Name())
		}
	}
	if _, ok := ByName("testing"); ok {
		t.Error("the testing baseline must not be registered")
	}
	if _, ok := ByName("unknown"); ok {
		t.Error("unknown names must not resolve")
	}
}

func TestU_Registry_NamesSorted(t *testing.T) {
	names := Names()
	want := []string{"bsi", "cnsa", "ecrypt", "lenstra", "nist"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestU_ValidateAsymmetric_Dispatch(t *testing.T) {
	ctx := Default()
	tests := []struct {
		name string
		key  primitive.Asymmetric
		want primitive.Asymmetric
		ok   bool
	}{
		{"ecc", primitive.P256, primitive.P256, true},
		{"ifc", primitive.IFC1024, primitive.IFC2048, false},
		{"ffc", primitive.FFC2048_224, primitive.FFC2048_224, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ValidateAsymmetric(NIST, ctx, tt.key)
			if rec != tt.want || ok != tt.ok {
				t.Errorf("ValidateAsymmetric(%v) = (%v, %v), want (%v, %v)", tt.key, rec, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestU_ValidateAsymmetric_PreservesFamily(t *testing.T) {
	// The recommendation always comes back in the same family as the
	// input.
	ctx := Default()
	for _, name := range Names() {
		std, _ := ByName(name)
		if _, isEcc := first(ValidateAsymmetric(std, ctx, primitive.SECP160R1)).(primitive.Ecc); !isEcc {
			t.Errorf("%s: ecc input must yield ecc recommendation", name)
		}
		if _, isIfc := first(ValidateAsymmetric(std, ctx, primitive.IFC1024)).(primitive.Ifc); !isIfc {
			t.Errorf("%s: ifc input must yield ifc recommendation", name)
		}
		if _, isFfc := first(ValidateAsymmetric(std, ctx, primitive.FFC1024_160)).(primitive.Ffc); !isFfc {
			t.Errorf("%s: ffc input must yield ffc recommendation", name)
		}
	}
}

func first(rec primitive.Asymmetric, _ bool) primitive.Asymmetric { return rec }
