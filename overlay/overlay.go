// Package overlay implements spec.md §4.6's top-level overlay operation:
// union, intersection, difference and symmetric difference over two
// geometries, dispatching between the point-only, mixed-points and full
// noder/graph/label/extract pipelines.
package overlay

import (
	"context"
	"log/slog"

	"github.com/danielcohen/geomkernel/gerr"
	"github.com/danielcohen/geomkernel/geom"
	"github.com/danielcohen/geomkernel/noding"
	"github.com/danielcohen/geomkernel/overlay/edge"
	"github.com/danielcohen/geomkernel/overlay/extract"
	"github.com/danielcohen/geomkernel/overlay/graph"
	"github.com/danielcohen/geomkernel/overlay/label"
)

// Op is the overlay operation code (spec.md §6), re-exported from extract
// so callers never need to import that package directly.
type Op = extract.Op

const (
	Intersection        = extract.Intersection
	Union                = extract.Union
	Difference           = extract.Difference
	SymmetricDifference  = extract.SymmetricDifference
)

// ZInterpolator is a hook that computes a result vertex's elevation from
// the two inputs' Z values at (or near) that location (spec.md §9
// "Elevation interpolation hook").
type ZInterpolator func(xy geom.XY, a, b geom.Geometry) float64

type config struct {
	pm       geom.PrecisionModel
	logger   *slog.Logger
	ctx      context.Context
	zInterp  ZInterpolator
}

// Option configures a call to Overlay.
type Option func(*config)

// WithPrecisionModel sets the grid every result coordinate is rounded to
// (spec.md §4.1). Defaults to floating (no rounding).
func WithPrecisionModel(pm geom.PrecisionModel) Option {
	return func(c *config) { c.pm = pm }
}

// WithLogger sets the *slog.Logger used for Debug-level pipeline tracing.
// Defaults to slog.Default() when nil.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContext sets the context checked at the noder-entry, post-labelling
// and pre-extraction checkpoints (spec.md §5 "Cancellation").
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithZInterpolator stores a Z hook in the overlay configuration. Overlay
// never calls it: the pipeline carries X and Y only, so result vertices
// get no interpolated Z.
func WithZInterpolator(fn ZInterpolator) Option {
	return func(c *config) { c.zInterp = fn }
}

func newConfig(opts []Option) *config {
	c := &config{
		pm:     geom.NewPrecisionModelFloating(),
		logger: slog.Default(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func checkpoint(ctx context.Context, at string) error {
	select {
	case <-ctx.Done():
		return gerr.NewCancelledError(at)
	default:
		return nil
	}
}

// Overlay computes op(a, b) per spec.md §4.6's operation pipeline: empty
// short-circuit, point-only dispatch, mixed-points dispatch, else the full
// noder → edge merge → graph → labeller → extractor pipeline, with a
// one-shot SnapIfNeeded fallback to fixed precision on a topology
// exception.
func Overlay(a, b geom.Geometry, op Op, opts ...Option) (geom.Geometry, error) {
	cfg := newConfig(opts)
	cfg.logger.Debug("overlay: start", "op", op.String())

	if a == nil || b == nil {
		return nil, gerr.NewInvalidArgumentError("overlay: nil input geometry")
	}

	if a.IsEmpty() && b.IsEmpty() {
		return emptyResult(a, b, op), nil
	}

	switch {
	case geom.IsPuntal(a) && geom.IsPuntal(b):
		cfg.logger.Debug("overlay: point-only dispatch")
		return pointOnlyOverlay(a, b, op), nil
	case geom.IsPuntal(a) && !geom.IsPuntal(b):
		cfg.logger.Debug("overlay: mixed-points dispatch", "puntal", "a")
		return mixedPointsOverlay(a, b, op, true), nil
	case geom.IsPuntal(b) && !geom.IsPuntal(a):
		cfg.logger.Debug("overlay: mixed-points dispatch", "puntal", "b")
		return mixedPointsOverlay(b, a, op, false), nil
	}

	result, err := runPipeline(a, b, op, cfg)
	if err == nil {
		return result, nil
	}

	if _, ok := gerr.AsTopology(err); ok {
		cfg.logger.Debug("overlay: topology exception, retrying with snap-rounding", "error", err)
		snapped, snapErr := runPipelineSnapped(a, b, op, cfg)
		if snapErr == nil {
			return snapped, nil
		}
		return nil, gerr.NewTopologyError(geom.XY{}, "overlay: failed at floating precision (%v) and after snap-rounding retry (%v)", err, snapErr)
	}
	return nil, err
}

func runPipeline(a, b geom.Geometry, op Op, cfg *config) (geom.Geometry, error) {
	noder := noding.NewValidatingNoder(noding.NewMCIndexNoder())
	return run(a, b, op, cfg, noder)
}

// runPipelineSnapped retries the pipeline with a fixed-precision
// snap-rounding noder derived from the inputs' magnitude, per spec.md
// §9's SnapIfNeeded description.
func runPipelineSnapped(a, b geom.Geometry, op Op, cfg *config) (geom.Geometry, error) {
	scale := snapScale(a, b)
	pm := geom.NewPrecisionModelFixed(scale)
	snapCfg := *cfg
	snapCfg.pm = pm
	noder := noding.NewSnapRoundingNoder(pm)
	return run(a, b, op, &snapCfg, noder)
}

// snapScale picks a fixed-precision scale tight enough to resolve the
// inputs' coordinate magnitude without losing meaningful precision: about
// 10 significant decimal digits of grid resolution.
func snapScale(a, b geom.Geometry) float64 {
	env := a.Envelope().Union(b.Envelope())
	magnitude := 1.0
	for _, v := range []float64{env.MaxX - env.MinX, env.MaxY - env.MinY} {
		if v > magnitude {
			magnitude = v
		}
	}
	return 1e10 / magnitude
}

func run(a, b geom.Geometry, op Op, cfg *config, noder noding.Noder) (geom.Geometry, error) {
	if err := checkpoint(cfg.ctx, "noder entry"); err != nil {
		return nil, err
	}

	var inputs []*noding.SegmentString
	inputs = append(inputs, edge.BuildInputSegmentStrings(a, 0)...)
	inputs = append(inputs, edge.BuildInputSegmentStrings(b, 1)...)

	subs, err := noder.Node(inputs)
	if err != nil {
		return nil, err
	}

	edges, err := edge.Merge(subs)
	if err != nil {
		return nil, err
	}

	g := graph.Build(edges)

	lbl := label.New(g, a, b)
	if err := lbl.Label(); err != nil {
		return nil, err
	}

	if err := checkpoint(cfg.ctx, "post-labelling"); err != nil {
		return nil, err
	}
	if err := checkpoint(cfg.ctx, "pre-extraction"); err != nil {
		return nil, err
	}

	return extract.Run(g, op, cfg.pm)
}

// emptyResult predicts the dimension of op applied to two empty inputs
// per spec.md §4.6 step 1: intersection can be at most as high-dimensional
// as the lower input, difference is bounded by the minuend's (A's)
// dimension alone, and union/symmetric difference by the higher of the
// two.
func emptyResult(a, b geom.Geometry, op Op) geom.Geometry {
	var dim int
	switch op {
	case Intersection:
		dim = a.Dimension()
		if b.Dimension() < dim {
			dim = b.Dimension()
		}
	case Difference:
		dim = a.Dimension()
	default: // Union, SymmetricDifference
		dim = a.Dimension()
		if b.Dimension() > dim {
			dim = b.Dimension()
		}
	}
	switch dim {
	case 2:
		return geom.NewMultiPolygon(nil)
	case 1:
		return geom.NewMultiLineString(nil)
	default:
		return geom.NewMultiPoint(nil)
	}
}
