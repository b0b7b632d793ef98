package primitive

// Hash represents a hash function. The two resistance bounds are
// static per identifier, not derived at call time: Collision is the
// strength in bits against collision attacks (the bound that matters
// for digital signatures) and PreImage the strength against pre-image
// attacks (the bound that matters for MACs, KDFs and random bit
// generation).
type Hash struct {
	ID        uint16
	Collision uint16
	PreImage  uint16
}

// SHA-1 and the SHA-2 family (FIPS 180-4).
var (
	SHA1       = Hash{ID: 1, Collision: 80, PreImage: 160}
	SHA224     = Hash{ID: 2, Collision: 112, PreImage: 224}
	SHA256     = Hash{ID: 3, Collision: 128, PreImage: 256}
	SHA384     = Hash{ID: 4, Collision: 192, PreImage: 384}
	SHA512     = Hash{ID: 5, Collision: 256, PreImage: 512}
	SHA512_224 = Hash{ID: 6, Collision: 112, PreImage: 224}
	SHA512_256 = Hash{ID: 7, Collision: 128, PreImage: 256}
)

// The SHA-3 family and its extendable output functions (FIPS 202).
var (
	SHA3_224 = Hash{ID: 8, Collision: 112, PreImage: 224}
	SHA3_256 = Hash{ID: 9, Collision: 128, PreImage: 256}
	SHA3_384 = Hash{ID: 10, Collision: 192, PreImage: 384}
	SHA3_512 = Hash{ID: 11, Collision: 256, PreImage: 512}
	SHAKE128 = Hash{ID: 12, Collision: 64, PreImage: 128}
	SHAKE256 = Hash{ID: 13, Collision: 128, PreImage: 256}
)

// Non-NIST hash functions. MD4, MD5 and RIPEMD-160 carry their naive
// bounds; every standard in this module rejects them regardless.
var (
	MD4         = Hash{ID: 14, Collision: 64, PreImage: 128}
	MD5         = Hash{ID: 15, Collision: 64, PreImage: 128}
	RIPEMD160   = Hash{ID: 16, Collision: 80, PreImage: 160}
	BLAKE2B_256 = Hash{ID: 17, Collision: 128, PreImage: 256}
	BLAKE2B_384 = Hash{ID: 18, Collision: 192, PreImage: 384}
	BLAKE2B_512 = Hash{ID: 19, Collision: 256, PreImage: 512}
	BLAKE2S_256 = Hash{ID: 20, Collision: 128, PreImage: 256}
	WHIRLPOOL   = Hash{ID: 21, Collision: 256, PreImage: 512}
)

// HashNotSupported is the sentinel for hash functions outside the
// catalog, including names the display layer cannot resolve.
var HashNotSupported = Hash{ID: NotSupportedID}
