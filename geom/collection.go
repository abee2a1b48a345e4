package geom

// GeometryCollection is a heterogeneous collection of geometries.
type GeometryCollection struct {
	geoms []Geometry
}

func NewGeometryCollection(geoms []Geometry) GeometryCollection {
	cp := make([]Geometry, len(geoms))
	copy(cp, geoms)
	return GeometryCollection{cp}
}

func (c GeometryCollection) Type() GeometryType { return TypeGeometryCollection }

func (c GeometryCollection) IsEmpty() bool {
	for _, g := range c.geoms {
		if !g.IsEmpty() {
			return false
		}
	}
	return true
}

// Dimension is the maximum dimension of any component, or -1 if empty.
func (c GeometryCollection) Dimension() int {
	dim := -1
	for _, g := range c.geoms {
		if d := g.Dimension(); d > dim {
			dim = d
		}
	}
	return dim
}

func (c GeometryCollection) BoundaryDimension() int {
	dim := -1
	for _, g := range c.geoms {
		if d := g.BoundaryDimension(); d > dim {
			dim = d
		}
	}
	return dim
}

func (c GeometryCollection) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, g := range c.geoms {
		env = env.Union(g.Envelope())
	}
	return env
}

func (c GeometryCollection) NumGeometries() int { return len(c.geoms) }

func (c GeometryCollection) GeometryN(i int) Geometry { return c.geoms[i] }

func (c GeometryCollection) AsLines() []Sequence {
	var out []Sequence
	for _, g := range c.geoms {
		out = append(out, g.AsLines()...)
	}
	return out
}

// walk visits every leaf (non-collection) geometry reachable from c.
func (c GeometryCollection) walk(fn func(Geometry)) {
	walk(c, fn)
}
