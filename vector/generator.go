package vector

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"

	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/calxvec/decimal"
)

// Generator drives the sweep over base pairs, fraction offsets and signs.
type Generator struct {
	c       *decimal.Context
	log     *zap.Logger
	workers int

	offsets []*apd.Decimal
	pairs   [][2]*apd.Decimal
}

// Option configures a Generator.
type Option func(g *Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithWorkers sets how many fraction cells are rendered concurrently. Output
// order does not depend on it.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// New returns a generator using c for all arithmetic.
func New(c *decimal.Context, opts ...Option) (_ *Generator, err error) {
	defer Error.WrapP(&err)

	g := &Generator{
		c:       c,
		log:     zap.NewNop(),
		workers: 1,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.workers < 1 {
		return nil, Error.New("invalid workers: %d", g.workers)
	}

	for _, s := range FractionOffsets {
		d, err := c.Parse(s)
		if err != nil {
			return nil, err
		}

		g.offsets = append(g.offsets, d)
	}

	for _, p := range BasePairs {
		a, err := c.Parse(p.A)
		if err != nil {
			return nil, err
		}

		b, err := c.Parse(p.B)
		if err != nil {
			return nil, err
		}

		g.pairs = append(g.pairs, [2]*apd.Decimal{a, b})
	}

	return g, nil
}

func (g *Generator) signed(s Sign, d *apd.Decimal) (*apd.Decimal, error) {
	if s == Minus {
		return g.c.Neg(d)
	}

	return d, nil
}

// SignSweep runs AddSub on (a, b) for every entry of SignSweep.
func (g *Generator) SignSweep(e *Emitter, a, b *apd.Decimal) (err error) {
	for _, s := range SignSweep {
		sa, err := g.signed(s.A, a)
		if err != nil {
			return err
		}

		sb, err := g.signed(s.B, b)
		if err != nil {
			return err
		}

		err = e.AddSub(sa, sb)
		if err != nil {
			return err
		}
	}

	return nil
}

// cell is one (fa, fb) combination of a fraction sweep.
type cell struct {
	pair   int
	a, b   *apd.Decimal
	fa, fb int
}

func (g *Generator) cells(pair int, a, b *apd.Decimal) (cs []cell) {
	for fa := range g.offsets {
		for fb := range g.offsets {
			cs = append(cs, cell{
				pair: pair,
				a:    a,
				b:    b,
				fa:   fa,
				fb:   fb,
			})
		}
	}

	return cs
}

func (g *Generator) run(e *Emitter, c cell) (err error) {
	a, err := g.c.Add(c.a, g.offsets[c.fa])
	if err != nil {
		return err
	}

	b, err := g.c.Add(c.b, g.offsets[c.fb])
	if err != nil {
		return err
	}

	g.log.Debug("sign sweep",
		zap.Int("pair", c.pair),
		zap.String("a", a.String()),
		zap.String("b", b.String()),
	)

	return g.SignSweep(e, a, b)
}

// FractionSweep runs SignSweep(a+fa, b+fb) for every fa (outer) and fb
// (inner) of FractionOffsets.
func (g *Generator) FractionSweep(e *Emitter, a, b *apd.Decimal) (err error) {
	for _, c := range g.cells(-1, a, b) {
		err = g.run(e, c)
		if err != nil {
			return err
		}
	}

	return nil
}

// Corpus writes the complete corpus to w: a FractionSweep for each of the
// BasePairs. Lines written before a failure are left in w.
func (g *Generator) Corpus(ctx context.Context, w io.Writer) (err error) {
	var cs []cell
	for i, p := range g.pairs {
		cs = append(cs, g.cells(i, p[0], p[1])...)
	}

	var lines int
	if g.workers == 1 {
		lines, err = g.serial(ctx, w, cs)
	} else {
		lines, err = g.parallel(ctx, w, cs)
	}

	if err != nil {
		g.log.Error("corpus failed", zap.Int("lines", lines), zap.Error(err))

		return err
	}

	g.log.Info("corpus written",
		zap.Int("lines", lines),
		zap.Int("workers", g.workers),
		zap.Uint32("precision", g.c.Precision()),
	)

	return nil
}

func (g *Generator) serial(ctx context.Context, w io.Writer, cs []cell) (lines int, err error) {
	e := NewEmitter(g.c, w)

	for _, c := range cs {
		err = ctx.Err()
		if err != nil {
			return e.Lines(), err
		}

		err = g.run(e, c)
		if err != nil {
			return e.Lines(), err
		}
	}

	return e.Lines(), nil
}

// parallel renders cells into separate buffers and writes them in cell order.
// Cells after the first failed cell are skipped, cells before it always run,
// so the written prefix is the same as for a serial run.
func (g *Generator) parallel(ctx context.Context, w io.Writer, cs []cell) (lines int, err error) {
	bufs := make([]bytes.Buffer, len(cs))
	counts := make([]int, len(cs))
	errs := make([]error, len(cs))

	var failed atomic.Int64
	failed.Store(int64(len(cs)))

	var eg errgroup.Group
	eg.SetLimit(g.workers)

	for i := range cs {
		eg.Go(func() error {
			if int64(i) > failed.Load() {
				return nil
			}

			err := ctx.Err()
			if err == nil {
				e := NewEmitter(g.c, &bufs[i])
				err = g.run(e, cs[i])
				counts[i] = e.Lines()
			}

			if err != nil {
				errs[i] = err

				for {
					f := failed.Load()
					if int64(i) >= f || failed.CompareAndSwap(f, int64(i)) {
						break
					}
				}
			}

			return nil
		})
	}

	err = eg.Wait()
	if err != nil {
		return 0, err
	}

	for i := range cs {
		if bufs[i].Len() > 0 {
			_, err = w.Write(bufs[i].Bytes())
			if err != nil {
				return lines, Error.Wrap(oops.Trace(err))
			}
		}

		lines += counts[i]

		if errs[i] != nil {
			return lines, errs[i]
		}
	}

	return lines, nil
}
