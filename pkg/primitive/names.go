package primitive

import "strings"

// Human-readable name tables. Each family keeps a bidirectional,
// unique mapping between its catalog instances and the identifiers
// used for display and parsing (curve names follow the OpenSSL short
// names). Lookups never fail: an unrecognised name resolves to the
// family's *NotSupported sentinel and an unrecognised instance to
// "unrecognised", so callers can feed the result straight into an
// assessment and get a uniform non-compliance verdict.

// Unrecognised is the display name returned for instances outside the
// catalog.
const Unrecognised = "unrecognised"

var eccNames = map[string]Ecc{
	"secp112r1":               SECP112R1,
	"secp112r2":               SECP112R2,
	"secp128r1":               SECP128R1,
	"secp128r2":               SECP128R2,
	"secp160k1":               SECP160K1,
	"secp160r1":               SECP160R1,
	"secp160r2":               SECP160R2,
	"secp192k1":               SECP192K1,
	"secp224k1":               SECP224K1,
	"secp224r1":               SECP224R1,
	"secp256k1":               SECP256K1,
	"secp384r1":               SECP384R1,
	"secp521r1":               SECP521R1,
	"sect113r1":               SECT113R1,
	"sect113r2":               SECT113R2,
	"sect131r1":               SECT131R1,
	"sect131r2":               SECT131R2,
	"sect163k1":               SECT163K1,
	"sect163r1":               SECT163R1,
	"sect163r2":               SECT163R2,
	"sect193r1":               SECT193R1,
	"sect193r2":               SECT193R2,
	"sect233k1":               SECT233K1,
	"sect233r1":               SECT233R1,
	"sect239k1":               SECT239K1,
	"sect283k1":               SECT283K1,
	"sect283r1":               SECT283R1,
	"sect409k1":               SECT409K1,
	"sect409r1":               SECT409R1,
	"sect571k1":               SECT571K1,
	"sect571r1":               SECT571R1,
	"prime192v1":              PRIME192V1,
	"prime192v2":              PRIME192V2,
	"prime192v3":              PRIME192V3,
	"prime239v1":              PRIME239V1,
	"prime239v2":              PRIME239V2,
	"prime239v3":              PRIME239V3,
	"prime256v1":              PRIME256V1,
	"c2pnb163v1":              C2PNB163V1,
	"c2pnb163v2":              C2PNB163V2,
	"c2pnb163v3":              C2PNB163V3,
	"c2pnb176v1":              C2PNB176V1,
	"c2pnb208w1":              C2PNB208W1,
	"c2pnb272w1":              C2PNB272W1,
	"c2pnb304w1":              C2PNB304W1,
	"c2pnb368w1":              C2PNB368W1,
	"c2tnb191v1":              C2TNB191V1,
	"c2tnb191v2":              C2TNB191V2,
	"c2tnb191v3":              C2TNB191V3,
	"c2tnb239v1":              C2TNB239V1,
	"c2tnb239v2":              C2TNB239V2,
	"c2tnb239v3":              C2TNB239V3,
	"c2tnb359v1":              C2TNB359V1,
	"c2tnb431r1":              C2TNB431R1,
	"brainpoolP160r1":         BRAINPOOLP160R1,
	"brainpoolP160t1":         BRAINPOOLP160T1,
	"brainpoolP192r1":         BRAINPOOLP192R1,
	"brainpoolP192t1":         BRAINPOOLP192T1,
	"brainpoolP224r1":         BRAINPOOLP224R1,
	"brainpoolP224t1":         BRAINPOOLP224T1,
	"brainpoolP256r1":         BRAINPOOLP256R1,
	"brainpoolP256t1":         BRAINPOOLP256T1,
	"brainpoolP320r1":         BRAINPOOLP320R1,
	"brainpoolP320t1":         BRAINPOOLP320T1,
	"brainpoolP384r1":         BRAINPOOLP384R1,
	"brainpoolP384t1":         BRAINPOOLP384T1,
	"brainpoolP512r1":         BRAINPOOLP512R1,
	"brainpoolP512t1":         BRAINPOOLP512T1,
	"wap-wsg-idm-ecid-wtls1":  WAP_WSG_IDM_ECID_WTLS1,
	"wap-wsg-idm-ecid-wtls3":  WAP_WSG_IDM_ECID_WTLS3,
	"wap-wsg-idm-ecid-wtls4":  WAP_WSG_IDM_ECID_WTLS4,
	"wap-wsg-idm-ecid-wtls5":  WAP_WSG_IDM_ECID_WTLS5,
	"wap-wsg-idm-ecid-wtls6":  WAP_WSG_IDM_ECID_WTLS6,
	"wap-wsg-idm-ecid-wtls7":  WAP_WSG_IDM_ECID_WTLS7,
	"wap-wsg-idm-ecid-wtls8":  WAP_WSG_IDM_ECID_WTLS8,
	"wap-wsg-idm-ecid-wtls9":  WAP_WSG_IDM_ECID_WTLS9,
	"wap-wsg-idm-ecid-wtls10": WAP_WSG_IDM_ECID_WTLS10,
	"wap-wsg-idm-ecid-wtls11": WAP_WSG_IDM_ECID_WTLS11,
	"wap-wsg-idm-ecid-wtls12": WAP_WSG_IDM_ECID_WTLS12,
	"ed25519":                 ED25519,
	"ed448":                   ED448,
	"x25519":                  X25519,
	"x448":                    X448,
	"sm2":                     SM2,
}

// eccAliases are accepted on parse but never produced on display.
var eccAliases = map[string]Ecc{
	"p-192": P192,
	"p-224": P224,
	"p-256": P256,
	"p-384": P384,
	"p-521": P521,
}

var hashNames = map[string]Hash{
	"sha1":        SHA1,
	"sha224":      SHA224,
	"sha256":      SHA256,
	"sha384":      SHA384,
	"sha512":      SHA512,
	"sha512-224":  SHA512_224,
	"sha512-256":  SHA512_256,
	"sha3-224":    SHA3_224,
	"sha3-256":    SHA3_256,
	"sha3-384":    SHA3_384,
	"sha3-512":    SHA3_512,
	"shake128":    SHAKE128,
	"shake256":    SHAKE256,
	"md4":         MD4,
	"md5":         MD5,
	"ripemd160":   RIPEMD160,
	"blake2b-256": BLAKE2B_256,
	"blake2b-384": BLAKE2B_384,
	"blake2b-512": BLAKE2B_512,
	"blake2s-256": BLAKE2S_256,
	"whirlpool":   WHIRLPOOL,
}

var symmetricNames = map[string]Symmetric{
	"aes-128":      AES128,
	"aes-192":      AES192,
	"aes-256":      AES256,
	"camellia-128": CAMELLIA128,
	"camellia-192": CAMELLIA192,
	"camellia-256": CAMELLIA256,
	"serpent-128":  SERPENT128,
	"serpent-192":  SERPENT192,
	"serpent-256":  SERPENT256,
	"des":          DES,
	"desx":         DESX,
	"idea":         IDEA,
	"2tdea":        TDEA2,
	"3tdea":        TDEA3,
}

var (
	eccByID       map[uint16]string
	hashByID      map[uint16]string
	symmetricByID map[uint16]string
)

func init() {
	eccByID = make(map[uint16]string, len(eccNames))
	for name, e := range eccNames {
		eccByID[e.ID] = name
	}
	hashByID = make(map[uint16]string, len(hashNames))
	for name, h := range hashNames {
		hashByID[h.ID] = name
	}
	symmetricByID = make(map[uint16]string, len(symmetricNames))
	for name, s := range symmetricNames {
		symmetricByID[s.ID] = name
	}
}

// EccByName resolves a curve name, accepting the NIST aliases.
// Unknown names yield EccNotSupported.
func EccByName(name string) Ecc {
	if e, ok := eccNames[name]; ok {
		return e
	}
	if e, ok := eccAliases[strings.ToLower(name)]; ok {
		return e
	}
	return EccNotSupported
}

// EccName returns the display name of a curve.
func EccName(e Ecc) string {
	if name, ok := eccByID[e.ID]; ok {
		return name
	}
	return Unrecognised
}

// HashByName resolves a hash function name. Unknown names yield
// HashNotSupported.
func HashByName(name string) Hash {
	if h, ok := hashNames[strings.ToLower(name)]; ok {
		return h
	}
	return HashNotSupported
}

// HashName returns the display name of a hash function.
func HashName(h Hash) string {
	if name, ok := hashByID[h.ID]; ok {
		return name
	}
	return Unrecognised
}

// SymmetricByName resolves a cipher name. Unknown names yield
// SymmetricNotSupported.
func SymmetricByName(name string) Symmetric {
	if s, ok := symmetricNames[strings.ToLower(name)]; ok {
		return s
	}
	return SymmetricNotSupported
}

// SymmetricName returns the display name of a cipher.
func SymmetricName(s Symmetric) string {
	if name, ok := symmetricByID[s.ID]; ok {
		return name
	}
	return Unrecognised
}
