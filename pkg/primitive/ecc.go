package primitive

// Ecc represents an elliptic curve group from the fixed catalog of
// named curves. Security is the estimated strength in bits, fixed at
// definition time (roughly half the order bit length).
type Ecc struct {
	ID       uint16
	Security uint16
}

func (Ecc) isAsymmetric() {}

// SEC 2 prime field curves.
var (
	SECP112R1 = Ecc{ID: 1, Security: 56}
	SECP112R2 = Ecc{ID: 2, Security: 56}
	SECP128R1 = Ecc{ID: 3, Security: 64}
	SECP128R2 = Ecc{ID: 4, Security: 64}
	SECP160K1 = Ecc{ID: 5, Security: 80}
	SECP160R1 = Ecc{ID: 6, Security: 80}
	SECP160R2 = Ecc{ID: 7, Security: 80}
	SECP192K1 = Ecc{ID: 8, Security: 96}
	SECP224K1 = Ecc{ID: 9, Security: 112}
	SECP224R1 = Ecc{ID: 10, Security: 112}
	SECP256K1 = Ecc{ID: 11, Security: 128}
	SECP384R1 = Ecc{ID: 12, Security: 192}
	SECP521R1 = Ecc{ID: 13, Security: 256}
)

// SEC 2 binary field curves.
var (
	SECT113R1 = Ecc{ID: 14, Security: 56}
	SECT113R2 = Ecc{ID: 15, Security: 56}
	SECT131R1 = Ecc{ID: 16, Security: 65}
	SECT131R2 = Ecc{ID: 17, Security: 65}
	SECT163K1 = Ecc{ID: 18, Security: 81}
	SECT163R1 = Ecc{ID: 19, Security: 81}
	SECT163R2 = Ecc{ID: 20, Security: 81}
	SECT193R1 = Ecc{ID: 21, Security: 96}
	SECT193R2 = Ecc{ID: 22, Security: 96}
	SECT233K1 = Ecc{ID: 23, Security: 116}
	SECT233R1 = Ecc{ID: 24, Security: 116}
	SECT239K1 = Ecc{ID: 25, Security: 119}
	SECT283K1 = Ecc{ID: 26, Security: 141}
	SECT283R1 = Ecc{ID: 27, Security: 141}
	SECT409K1 = Ecc{ID: 28, Security: 204}
	SECT409R1 = Ecc{ID: 29, Security: 204}
	SECT571K1 = Ecc{ID: 30, Security: 285}
	SECT571R1 = Ecc{ID: 31, Security: 285}
)

// ANSI X9.62 curves.
var (
	PRIME192V1 = Ecc{ID: 32, Security: 96}
	PRIME192V2 = Ecc{ID: 33, Security: 96}
	PRIME192V3 = Ecc{ID: 34, Security: 96}
	PRIME239V1 = Ecc{ID: 35, Security: 119}
	PRIME239V2 = Ecc{ID: 36, Security: 119}
	PRIME239V3 = Ecc{ID: 37, Security: 119}
	PRIME256V1 = Ecc{ID: 38, Security: 128}
	C2PNB163V1 = Ecc{ID: 39, Security: 81}
	C2PNB163V2 = Ecc{ID: 40, Security: 81}
	C2PNB163V3 = Ecc{ID: 41, Security: 81}
	C2PNB176V1 = Ecc{ID: 42, Security: 88}
	C2PNB208W1 = Ecc{ID: 43, Security: 104}
	C2PNB272W1 = Ecc{ID: 44, Security: 136}
	C2PNB304W1 = Ecc{ID: 45, Security: 152}
	C2PNB368W1 = Ecc{ID: 46, Security: 184}
	C2TNB191V1 = Ecc{ID: 47, Security: 95}
	C2TNB191V2 = Ecc{ID: 48, Security: 95}
	C2TNB191V3 = Ecc{ID: 49, Security: 95}
	C2TNB239V1 = Ecc{ID: 50, Security: 119}
	C2TNB239V2 = Ecc{ID: 51, Security: 119}
	C2TNB239V3 = Ecc{ID: 52, Security: 119}
	C2TNB359V1 = Ecc{ID: 53, Security: 179}
	C2TNB431R1 = Ecc{ID: 54, Security: 215}
)

// Brainpool curves (RFC 5639).
var (
	BRAINPOOLP160R1 = Ecc{ID: 55, Security: 80}
	BRAINPOOLP160T1 = Ecc{ID: 56, Security: 80}
	BRAINPOOLP192R1 = Ecc{ID: 57, Security: 96}
	BRAINPOOLP192T1 = Ecc{ID: 58, Security: 96}
	BRAINPOOLP224R1 = Ecc{ID: 59, Security: 112}
	BRAINPOOLP224T1 = Ecc{ID: 60, Security: 112}
	BRAINPOOLP256R1 = Ecc{ID: 61, Security: 128}
	BRAINPOOLP256T1 = Ecc{ID: 62, Security: 128}
	BRAINPOOLP320R1 = Ecc{ID: 63, Security: 160}
	BRAINPOOLP320T1 = Ecc{ID: 64, Security: 160}
	BRAINPOOLP384R1 = Ecc{ID: 65, Security: 192}
	BRAINPOOLP384T1 = Ecc{ID: 66, Security: 192}
	BRAINPOOLP512R1 = Ecc{ID: 67, Security: 256}
	BRAINPOOLP512T1 = Ecc{ID: 68, Security: 256}
)

// WTLS curves (WAP-261).
var (
	WAP_WSG_IDM_ECID_WTLS1  = Ecc{ID: 69, Security: 56}
	WAP_WSG_IDM_ECID_WTLS3  = Ecc{ID: 70, Security: 81}
	WAP_WSG_IDM_ECID_WTLS4  = Ecc{ID: 71, Security: 56}
	WAP_WSG_IDM_ECID_WTLS5  = Ecc{ID: 72, Security: 81}
	WAP_WSG_IDM_ECID_WTLS6  = Ecc{ID: 73, Security: 56}
	WAP_WSG_IDM_ECID_WTLS7  = Ecc{ID: 74, Security: 80}
	WAP_WSG_IDM_ECID_WTLS8  = Ecc{ID: 75, Security: 56}
	WAP_WSG_IDM_ECID_WTLS9  = Ecc{ID: 76, Security: 80}
	WAP_WSG_IDM_ECID_WTLS10 = Ecc{ID: 77, Security: 116}
	WAP_WSG_IDM_ECID_WTLS11 = Ecc{ID: 78, Security: 116}
	WAP_WSG_IDM_ECID_WTLS12 = Ecc{ID: 79, Security: 112}
)

// Edwards and Montgomery curves (RFC 7748, RFC 8032) and SM2.
var (
	ED25519 = Ecc{ID: 80, Security: 128}
	ED448   = Ecc{ID: 81, Security: 224}
	X25519  = Ecc{ID: 82, Security: 128}
	X448    = Ecc{ID: 83, Security: 224}
	SM2     = Ecc{ID: 84, Security: 128}
)

// NIST aliases for the SEC 2 / X9.62 curve definitions.
var (
	P192 = PRIME192V1
	P224 = SECP224R1
	P256 = PRIME256V1
	P384 = SECP384R1
	P521 = SECP521R1
)

// EccNotSupported is the sentinel for curves outside the catalog.
var EccNotSupported = Ecc{ID: NotSupportedID}
