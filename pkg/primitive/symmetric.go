package primitive

// Symmetric represents a symmetric cipher. Security is the declared
// strength in bits, which for broken or meet-in-the-middle affected
// ciphers is lower than the key length (two-key triple DES is rated 95
// bits, three-key 112 bits, per SP 800-57).
type Symmetric struct {
	ID       uint16
	Security uint16
}

var (
	AES128      = Symmetric{ID: 1, Security: 128}
	AES192      = Symmetric{ID: 2, Security: 192}
	AES256      = Symmetric{ID: 3, Security: 256}
	CAMELLIA128 = Symmetric{ID: 4, Security: 128}
	CAMELLIA192 = Symmetric{ID: 5, Security: 192}
	CAMELLIA256 = Symmetric{ID: 6, Security: 256}
	SERPENT128  = Symmetric{ID: 7, Security: 128}
	SERPENT192  = Symmetric{ID: 8, Security: 192}
	SERPENT256  = Symmetric{ID: 9, Security: 256}
	DES         = Symmetric{ID: 10, Security: 56}
	DESX        = Symmetric{ID: 11, Security: 120}
	IDEA        = Symmetric{ID: 12, Security: 126}
	TDEA2       = Symmetric{ID: 13, Security: 95}
	TDEA3       = Symmetric{ID: 14, Security: 112}
)

// SymmetricNotSupported is the sentinel for ciphers outside the catalog.
var SymmetricNotSupported = Symmetric{ID: NotSupportedID}
