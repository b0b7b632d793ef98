package certutil

import (
	"fmt"

	"github.com/keywarden/keywarden/pkg/primitive"
)

// Display names for the structural families, which have no name table
// in the catalog.

func ifcName(k primitive.Ifc) string {
	return fmt.Sprintf("rsa-%d", k.K)
}

func ffcName(g primitive.Ffc) string {
	return fmt.Sprintf("dsa-%d-%d", g.L, g.N)
}
