package standard

// Defaults applied by Default and NewContext. A security floor of zero
// defers to the primitive's own assessed strength. The default year is
// the year the policy tables in this package were last reviewed
// against their source documents.
const (
	DefaultSecurity uint16 = 0
	DefaultYear     uint16 = 2023
)

// Context describes what the caller demands of an assessment: the
// minimum acceptable security strength in bits and the calendar year
// against which deprecation cutovers are evaluated. It is immutable;
// build one per assessment with NewContext or Default.
type Context struct {
	security uint16
	year     uint16
}

// Option configures a Context.
type Option func(*Context)

// WithSecurity sets the minimum security strength in bits the caller
// will accept. Zero keeps the default behaviour of deferring to the
// primitive's own strength.
func WithSecurity(bits uint16) Option {
	return func(c *Context) { c.security = bits }
}

// WithYear sets the reference year for cutover evaluation. Years
// outside a standard's known range never trigger that standard's
// cutover logic.
func WithYear(year uint16) Option {
	return func(c *Context) { c.year = year }
}

// NewContext builds a Context from the given options on top of the
// defaults.
func NewContext(opts ...Option) Context {
	c := Context{security: DefaultSecurity, year: DefaultYear}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Default returns the default context: no explicit security floor and
// the table review year.
func Default() Context {
	return NewContext()
}

// Security returns the caller's minimum acceptable strength in bits.
func (c Context) Security() uint16 { return c.security }

// Year returns the reference year for cutover evaluation.
func (c Context) Year() uint16 { return c.year }
