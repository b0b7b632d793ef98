package standard

import "github.com/keywarden/keywarden/pkg/primitive"

// Classification tables. Each standard expresses its policy for a
// family as an ordered list of levels: contiguous bands of the
// classifying measure mapped to a verdict and a canonical recommended
// instance, with an optional cutover year after which the band's
// verdict and recommendation change. Bands are inclusive on both ends
// and the topmost band is unbounded above, so the partition of the
// input domain is total and exclusive.

const top = ^uint16(0)

type level[T any] struct {
	min, max uint16
	ok       bool
	rec      T
	cutover  uint16 // year; zero means the band is stable
	okAfter  bool
	recAfter T
}

// accept builds a stable compliant band.
func accept[T any](min, max uint16, rec T) level[T] {
	return level[T]{min: min, max: max, ok: true, rec: rec}
}

// reject builds a stable non-compliant band.
func reject[T any](min, max uint16, rec T) level[T] {
	return level[T]{min: min, max: max, ok: false, rec: rec}
}

// sunset builds a band that is compliant with recommendation rec
// through the cutover year, and non-compliant with recommendation
// after beyond it.
func sunset[T any](min, max uint16, rec T, cutover uint16, after T) level[T] {
	return level[T]{min: min, max: max, ok: true, rec: rec, cutover: cutover, recAfter: after}
}

// classify locates the band containing the effective requirement,
// which is the primitive's measure raised to the caller's floor, and
// returns that band's recommendation and verdict for the context
// year. Membership of the primitive in the standard's specified set
// must be established by the caller first.
func classify[T any](ctx Context, measure uint16, levels []level[T]) (T, bool) {
	effective := measure
	if ctx.security > effective {
		effective = ctx.security
	}
	return match(ctx, effective, levels)
}

// classifyRaw is classify for structural measures such as modulus bit
// lengths, where the caller's floor (a strength in bits) is not
// commensurable with the measure and contributes only the year.
func classifyRaw[T any](ctx Context, measure uint16, levels []level[T]) (T, bool) {
	return match(ctx, measure, levels)
}

func match[T any](ctx Context, effective uint16, levels []level[T]) (T, bool) {
	for _, l := range levels {
		if effective < l.min || effective > l.max {
			continue
		}
		if l.cutover != 0 && ctx.year > l.cutover {
			return l.recAfter, l.okAfter
		}
		return l.rec, l.ok
	}
	// Tables are total, so this is only reachable with an empty table.
	return levels[0].rec, false
}

// ffcLevel is a level over the (l, n) pair of a finite field group.
// Matching is first-wins, which lets tables express "l or n too small"
// with leading bands and end with a catch-all.
type ffcLevel struct {
	lmin, lmax uint16
	nmin, nmax uint16
	ok         bool
	rec        primitive.Ffc
	cutover    uint16
	okAfter    bool
	recAfter   primitive.Ffc
}

func acceptFfc(lmin, lmax, nmin, nmax uint16, rec primitive.Ffc) ffcLevel {
	return ffcLevel{lmin: lmin, lmax: lmax, nmin: nmin, nmax: nmax, ok: true, rec: rec}
}

func rejectFfc(lmin, lmax, nmin, nmax uint16, rec primitive.Ffc) ffcLevel {
	return ffcLevel{lmin: lmin, lmax: lmax, nmin: nmin, nmax: nmax, ok: false, rec: rec}
}

func sunsetFfc(lmin, lmax, nmin, nmax uint16, rec primitive.Ffc, cutover uint16, after primitive.Ffc) ffcLevel {
	return ffcLevel{
		lmin: lmin, lmax: lmax, nmin: nmin, nmax: nmax,
		ok: true, rec: rec, cutover: cutover, recAfter: after,
	}
}

func classifyFfc(ctx Context, key primitive.Ffc, levels []ffcLevel) (primitive.Ffc, bool) {
	for _, l := range levels {
		if key.L < l.lmin || key.L > l.lmax || key.N < l.nmin || key.N > l.nmax {
			continue
		}
		if l.cutover != 0 && ctx.year > l.cutover {
			return l.recAfter, l.okAfter
		}
		return l.rec, l.ok
	}
	return levels[0].rec, false
}
