// Package primitive defines the closed catalog of cryptographic
// primitives the assessment engine classifies: elliptic curve groups,
// finite field groups, integer factorisation moduli, hash functions
// and symmetric ciphers.
//
// Instances are immutable values created once at package
// initialisation. Equality is by identifier (plain == on the small
// value structs), and every instance carries the intrinsic data a
// standard needs to classify it without external lookup. The engine
// never accepts free-form curve or hash parameters: unknown names
// resolve to the *NotSupported sentinel of the family so that
// downstream assessment can still report non-compliance uniformly.
package primitive

// NotSupportedID is the identifier shared by every family's sentinel
// for names and keys the catalog does not recognise.
const NotSupportedID uint16 = 65535
