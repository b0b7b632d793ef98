package standard

import (
	"testing"

	"github.com/keywarden/keywarden/pkg/primitive"
)

// scalarTables collects every band table in the package so the
// partition properties can be checked in one sweep.
func scalarTables() map[string][]level[primitive.Symmetric] {
	return map[string][]level[primitive.Symmetric]{
		"nist-symmetric":   nistSymmetricLevels,
		"nist-3tdea":       nist3TDEALevels,
		"bsi-symmetric":    bsiSymmetricLevels,
		"cnsa-symmetric":   cnsaSymmetricLevels,
		"ecrypt-symmetric": ecryptSymmetricLevels,
	}
}

func hashTables() map[string][]level[primitive.Hash] {
	return map[string][]level[primitive.Hash]{
		"nist-hash":         nistHashLevels,
		"nist-hash-based":   nistHashBasedLevels,
		"bsi-hash":          bsiHashLevels,
		"bsi-hash-based":    bsiHashBasedLevels,
		"cnsa-hash":         cnsaHashLevels,
		"cnsa-hash-based":   cnsaHashBasedLevels,
		"ecrypt-hash":       ecryptHashLevels,
		"ecrypt-hash-based": ecryptHashBasedLevels,
	}
}

func checkPartition[T any](t *testing.T, name string, levels []level[T]) {
	t.Helper()
	if len(levels) == 0 {
		t.Fatalf("%s: empty table", name)
	}
	if levels[0].min != 0 {
		t.Errorf("%s: first band starts at %d, want 0", name, levels[0].min)
	}
	if levels[len(levels)-1].max != top {
		t.Errorf("%s: last band ends at %d, want unbounded", name, levels[len(levels)-1].max)
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].min != levels[i-1].max+1 {
			t.Errorf("%s: band %d starts at %d, previous ends at %d", name, i, levels[i].min, levels[i-1].max)
		}
	}
}

func TestU_Levels_PartitionTotalAndExclusive(t *testing.T) {
	for name, table := range scalarTables() {
		checkPartition(t, name, table)
	}
	for name, table := range hashTables() {
		checkPartition(t, name, table)
	}
	checkPartition(t, "nist-ecc", nistEccLevels)
	checkPartition(t, "bsi-ecc", bsiEccLevels)
	checkPartition(t, "cnsa-ecc", cnsaEccLevels)
	checkPartition(t, "ecrypt-ecc", ecryptEccLevels)
	checkPartition(t, "nist-ifc", nistIfcLevels)
	checkPartition(t, "bsi-ifc", bsiIfcLevels)
	checkPartition(t, "cnsa-ifc", cnsaIfcLevels)
	checkPartition(t, "ecrypt-ifc", ecryptIfcLevels)
}

func TestU_Levels_TotalityAndDeterminism(t *testing.T) {
	// Every measure yields exactly one verdict, and repeating the call
	// yields the same one.
	ctx := Default()
	for name, table := range hashTables() {
		for measure := uint16(0); measure <= 600; measure++ {
			rec1, ok1 := classify(ctx, measure, table)
			rec2, ok2 := classify(ctx, measure, table)
			if rec1 != rec2 || ok1 != ok2 {
				t.Fatalf("%s: measure %d not deterministic", name, measure)
			}
		}
	}
}

func TestU_Levels_MonotonicFloor(t *testing.T) {
	// Raising the floor must never lower the recommended tier and
	// must keep a primitive already above the new floor compliant.
	prev := uint16(0)
	for floor := uint16(0); floor <= 256; floor++ {
		ctx := NewContext(WithSecurity(floor))
		rec, ok := NIST.ValidateSymmetric(ctx, primitive.AES256)
		if !ok {
			t.Fatalf("floor %d: AES256 above floor must stay compliant", floor)
		}
		if rec.Security < prev {
			t.Fatalf("floor %d: recommendation dropped from %d to %d bits", floor, prev, rec.Security)
		}
		prev = rec.Security
	}
}

func TestU_Levels_CutoverEdge(t *testing.T) {
	// For a band with cutover year Y, year Y must behave like the
	// pre-cutover side and Y+1 like the post-cutover side.
	tests := []struct {
		name    string
		std     Standard
		hash    primitive.Hash
		cutover uint16
	}{
		{"nist-sha224", NIST, primitive.SHA224, nistCutoff},
		{"bsi-sha224", BSI, primitive.SHA224, bsiCutoffParams},
		{"ecrypt-sha224", ECRYPT, primitive.SHA224, ecryptNearTerm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, okAt := tt.std.ValidateHash(NewContext(WithYear(tt.cutover)), tt.hash)
			if !okAt {
				t.Errorf("year %d: want pre-cutover verdict (compliant)", tt.cutover)
			}
			_, okAfter := tt.std.ValidateHash(NewContext(WithYear(tt.cutover+1)), tt.hash)
			if okAfter {
				t.Errorf("year %d: want post-cutover verdict (non-compliant)", tt.cutover+1)
			}
		})
	}
}

func TestU_Levels_FfcCatchAll(t *testing.T) {
	// Pair tables end in a catch-all so mismatched (l, n) shapes still
	// produce a verdict.
	for _, std := range []Standard{NIST, BSI, ECRYPT, CNSA} {
		rec, ok := std.ValidateFfc(Default(), primitive.Ffc{L: 16000, N: 100})
		if ok {
			t.Errorf("%s: undersized subgroup must not be compliant", std.Name())
		}
		if rec == primitive.FfcNotSupported {
			t.Errorf("%s: catch-all must still recommend a canonical instance", std.Name())
		}
	}
}
