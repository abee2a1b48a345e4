package geom

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalGeoJSON and UnmarshalGeoJSON provide the thin coordinate-sequence
// codec spec.md §1 allows as an external collaborator; adapted from the
// teacher's geom/geojson_geometry.go, generalized from its GeometryX
// hierarchy onto this package's Geometry interface.

func xyToFloats(xy XY) []float64 { return []float64{xy.X, xy.Y} }

func floatsToXY(fs []float64) (XY, error) {
	if len(fs) < 2 {
		return XY{}, fmt.Errorf("geom: GeoJSON coordinate needs at least 2 ordinates, got %d", len(fs))
	}
	return XY{fs[0], fs[1]}, nil
}

func seqToFloats(seq Sequence) [][]float64 {
	out := make([][]float64, seq.Length())
	for i := 0; i < seq.Length(); i++ {
		out[i] = xyToFloats(seq.GetXY(i))
	}
	return out
}

func floatsToSeq(fss [][]float64) (Sequence, error) {
	xys := make([]XY, len(fss))
	for i, fs := range fss {
		xy, err := floatsToXY(fs)
		if err != nil {
			return Sequence{}, err
		}
		xys[i] = xy
	}
	return NewSequenceXY(xys), nil
}

type geojsonGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Geometries  []geojsonGeometry `json:"geometries,omitempty"`
}

// MarshalGeoJSON encodes g as a GeoJSON geometry object.
func MarshalGeoJSON(g Geometry) ([]byte, error) {
	switch g := g.(type) {
	case Point:
		xy, ok := g.XY()
		if !ok {
			return json.Marshal(geojsonGeometry{Type: "Point", Coordinates: json.RawMessage("[]")})
		}
		coords, err := json.Marshal(xyToFloats(xy))
		if err != nil {
			return nil, err
		}
		return json.Marshal(geojsonGeometry{Type: "Point", Coordinates: coords})
	case LineString:
		coords, err := json.Marshal(seqToFloats(g.Coordinates()))
		if err != nil {
			return nil, err
		}
		return json.Marshal(geojsonGeometry{Type: "LineString", Coordinates: coords})
	case Polygon:
		var rings [][][]float64
		if !g.IsEmpty() {
			rings = append(rings, seqToFloats(g.ExteriorRing().Coordinates()))
			for i := 0; i < g.NumInteriorRings(); i++ {
				rings = append(rings, seqToFloats(g.InteriorRingN(i).Coordinates()))
			}
		}
		coords, err := json.Marshal(rings)
		if err != nil {
			return nil, err
		}
		return json.Marshal(geojsonGeometry{Type: "Polygon", Coordinates: coords})
	case MultiPoint:
		coords, err := json.Marshal(func() [][]float64 {
			out := make([][]float64, 0, g.NumPoints())
			for _, xy := range g.XYs() {
				out = append(out, xyToFloats(xy))
			}
			return out
		}())
		if err != nil {
			return nil, err
		}
		return json.Marshal(geojsonGeometry{Type: "MultiPoint", Coordinates: coords})
	case MultiLineString:
		out := make([][][]float64, g.NumLineStrings())
		for i := 0; i < g.NumLineStrings(); i++ {
			out[i] = seqToFloats(g.LineStringN(i).Coordinates())
		}
		coords, err := json.Marshal(out)
		if err != nil {
			return nil, err
		}
		return json.Marshal(geojsonGeometry{Type: "MultiLineString", Coordinates: coords})
	case MultiPolygon:
		out := make([][][][]float64, g.NumPolygons())
		for i := 0; i < g.NumPolygons(); i++ {
			p := g.PolygonN(i)
			var rings [][][]float64
			if !p.IsEmpty() {
				rings = append(rings, seqToFloats(p.ExteriorRing().Coordinates()))
				for j := 0; j < p.NumInteriorRings(); j++ {
					rings = append(rings, seqToFloats(p.InteriorRingN(j).Coordinates()))
				}
			}
			out[i] = rings
		}
		coords, err := json.Marshal(out)
		if err != nil {
			return nil, err
		}
		return json.Marshal(geojsonGeometry{Type: "MultiPolygon", Coordinates: coords})
	case GeometryCollection:
		geoms := make([]geojsonGeometry, g.NumGeometries())
		for i := 0; i < g.NumGeometries(); i++ {
			b, err := MarshalGeoJSON(g.GeometryN(i))
			if err != nil {
				return nil, err
			}
			var gg geojsonGeometry
			if err := json.Unmarshal(b, &gg); err != nil {
				return nil, err
			}
			geoms[i] = gg
		}
		return json.Marshal(geojsonGeometry{Type: "GeometryCollection", Geometries: geoms})
	default:
		return nil, fmt.Errorf("geom: unsupported geometry type %T for GeoJSON", g)
	}
}

// UnmarshalGeoJSON decodes a GeoJSON geometry object into a Geometry.
func UnmarshalGeoJSON(input []byte) (Geometry, error) {
	var gg geojsonGeometry
	if err := json.NewDecoder(bytes.NewReader(input)).Decode(&gg); err != nil {
		return nil, err
	}
	return geojsonToGeometry(gg)
}

func geojsonToGeometry(gg geojsonGeometry) (Geometry, error) {
	switch gg.Type {
	case "Point":
		var fs []float64
		if len(gg.Coordinates) > 0 {
			if err := json.Unmarshal(gg.Coordinates, &fs); err != nil {
				return nil, err
			}
		}
		if len(fs) == 0 {
			return NewEmptyPoint(), nil
		}
		xy, err := floatsToXY(fs)
		if err != nil {
			return nil, err
		}
		return NewPoint(xy), nil
	case "LineString":
		var fss [][]float64
		if err := json.Unmarshal(gg.Coordinates, &fss); err != nil {
			return nil, err
		}
		seq, err := floatsToSeq(fss)
		if err != nil {
			return nil, err
		}
		return NewLineString(seq)
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(gg.Coordinates, &rings); err != nil {
			return nil, err
		}
		return polygonFromRings(rings)
	case "MultiPoint":
		var fss [][]float64
		if err := json.Unmarshal(gg.Coordinates, &fss); err != nil {
			return nil, err
		}
		pts := make([]Point, len(fss))
		for i, fs := range fss {
			xy, err := floatsToXY(fs)
			if err != nil {
				return nil, err
			}
			pts[i] = NewPoint(xy)
		}
		return NewMultiPoint(pts), nil
	case "MultiLineString":
		var fsss [][][]float64
		if err := json.Unmarshal(gg.Coordinates, &fsss); err != nil {
			return nil, err
		}
		lss := make([]LineString, len(fsss))
		for i, fss := range fsss {
			seq, err := floatsToSeq(fss)
			if err != nil {
				return nil, err
			}
			ls, err := NewLineString(seq)
			if err != nil {
				return nil, err
			}
			lss[i] = ls
		}
		return NewMultiLineString(lss), nil
	case "MultiPolygon":
		var ringsList [][][][]float64
		if err := json.Unmarshal(gg.Coordinates, &ringsList); err != nil {
			return nil, err
		}
		polys := make([]Polygon, len(ringsList))
		for i, rings := range ringsList {
			g, err := polygonFromRings(rings)
			if err != nil {
				return nil, err
			}
			polys[i] = g.(Polygon)
		}
		return NewMultiPolygon(polys), nil
	case "GeometryCollection":
		geoms := make([]Geometry, len(gg.Geometries))
		for i, child := range gg.Geometries {
			g, err := geojsonToGeometry(child)
			if err != nil {
				return nil, err
			}
			geoms[i] = g
		}
		return NewGeometryCollection(geoms), nil
	default:
		return nil, fmt.Errorf("geom: unsupported GeoJSON type %q", gg.Type)
	}
}

func polygonFromRings(rings [][][]float64) (Geometry, error) {
	if len(rings) == 0 {
		return NewEmptyPolygon(), nil
	}
	shellSeq, err := floatsToSeq(rings[0])
	if err != nil {
		return nil, err
	}
	shell, err := NewLinearRing(shellSeq)
	if err != nil {
		return nil, err
	}
	holes := make([]LinearRing, len(rings)-1)
	for i, r := range rings[1:] {
		seq, err := floatsToSeq(r)
		if err != nil {
			return nil, err
		}
		hole, err := NewLinearRing(seq)
		if err != nil {
			return nil, err
		}
		holes[i] = hole
	}
	return NewPolygon(shell, holes), nil
}
