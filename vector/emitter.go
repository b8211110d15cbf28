package vector

import (
	"io"

	"github.com/cockroachdb/apd"
	"github.com/zeebo/errs"

	"github.com/calebcase/calxvec/decimal"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("vector")

// Emitter writes the canonical text of sums and differences, one per line.
type Emitter struct {
	c     *decimal.Context
	w     io.Writer
	lines int
}

// NewEmitter returns an emitter writing to w.
func NewEmitter(c *decimal.Context, w io.Writer) *Emitter {
	return &Emitter{
		c: c,
		w: w,
	}
}

// Lines returns the number of lines written so far.
func (e *Emitter) Lines() int {
	return e.lines
}

func (e *Emitter) emit(op func(x, y *apd.Decimal) (*apd.Decimal, error), x, y *apd.Decimal) (err error) {
	d, err := op(x, y)
	if err != nil {
		return err
	}

	err = e.c.Fprintln(e.w, d)
	if err != nil {
		return err
	}

	e.lines++

	return nil
}

// Add writes a+b and then b+a.
func (e *Emitter) Add(a, b *apd.Decimal) (err error) {
	err = e.emit(e.c.Add, a, b)
	if err != nil {
		return err
	}

	return e.emit(e.c.Add, b, a)
}

// Sub writes a-b and then b-a.
func (e *Emitter) Sub(a, b *apd.Decimal) (err error) {
	err = e.emit(e.c.Sub, a, b)
	if err != nil {
		return err
	}

	return e.emit(e.c.Sub, b, a)
}

// AddSub writes Add(a, b) followed by Sub(a, b).
func (e *Emitter) AddSub(a, b *apd.Decimal) (err error) {
	err = e.Add(a, b)
	if err != nil {
		return err
	}

	return e.Sub(a, b)
}
