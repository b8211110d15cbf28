package decimal

import (
	"fmt"
	"io"
	"strings"

	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// DefaultPrecision is the number of significant digits used for the corpus.
const DefaultPrecision = 100

// FormatError is returned when a value cannot be rendered in canonical fixed
// point form. It is the only fatal formatting outcome and is returned
// unclassed: match it with errors.As, not Error.Has.
type FormatError struct {
	// Rendered is the offending text produced by the renderer.
	Rendered string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("decimal: not representable in fixed point: %q", e.Rendered)
}

// Context is an arithmetic configuration. Results of arithmetic are rounded
// half to even to the configured precision. It is safe for concurrent use
// once constructed.
type Context struct {
	precision uint32
	apd       *apd.Context
}

// NewContext returns a context keeping precision significant digits.
func NewContext(precision uint32) (_ *Context, err error) {
	if precision == 0 {
		return nil, Error.New("invalid precision: %d", precision)
	}

	ac := apd.BaseContext.WithPrecision(precision)
	ac.Rounding = apd.RoundHalfEven

	return &Context{
		precision: precision,
		apd:       ac,
	}, nil
}

// Precision returns the configured number of significant digits.
func (c *Context) Precision() uint32 {
	return c.precision
}

// Parse converts a decimal literal into a value. Literals are exact; only
// arithmetic rounds.
func (c *Context) Parse(s string) (d *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	d, _, err = apd.NewFromString(s)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// MustParse is like Parse but panics on error. It is intended for literal
// tables.
func (c *Context) MustParse(s string) *apd.Decimal {
	d, err := c.Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Add returns x + y.
func (c *Context) Add(x, y *apd.Decimal) (d *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	d = new(apd.Decimal)

	_, err = c.apd.Add(d, x, y)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Sub returns x - y.
func (c *Context) Sub(x, y *apd.Decimal) (d *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	d = new(apd.Decimal)

	_, err = c.apd.Sub(d, x, y)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Neg returns -x.
func (c *Context) Neg(x *apd.Decimal) (d *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	d = new(apd.Decimal)

	// Negation rounds like any other operation.
	_, err = c.apd.Round(d, d.Neg(x))
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Format returns the canonical fixed point text of x. A value that cannot be
// rendered without an exponent, or that is not finite, results in a
// *FormatError.
func (c *Context) Format(x *apd.Decimal) (s string, err error) {
	rendered := x.Text('f')

	if x.Form != apd.Finite {
		return "", &FormatError{Rendered: rendered}
	}

	return Canonical(rendered)
}

// Fprintln writes the canonical text of x followed by a newline.
func (c *Context) Fprintln(w io.Writer, x *apd.Decimal) (err error) {
	s, err := c.Format(x)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s+"\n")
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return nil
}

// Canonical converts fixed point text into its canonical form.
func Canonical(rendered string) (s string, err error) {
	if strings.ContainsAny(rendered, "eE") {
		return "", &FormatError{Rendered: rendered}
	}

	if strings.Contains(rendered, ".") {
		return strings.TrimRight(rendered, "0"), nil
	}

	return rendered + ".", nil
}
