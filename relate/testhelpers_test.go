package relate

import "github.com/danielcohen/geomkernel/geom"

func square(minX, minY, maxX, maxY float64) geom.Polygon {
	ring, err := geom.NewLinearRing(geom.NewSequenceXY([]geom.XY{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
		{X: minX, Y: minY},
	}))
	if err != nil {
		panic(err)
	}
	return geom.NewPolygon(ring, nil)
}

func line(coords ...float64) geom.LineString {
	var xys []geom.XY
	for i := 0; i+1 < len(coords); i += 2 {
		xys = append(xys, geom.XY{X: coords[i], Y: coords[i+1]})
	}
	ls, err := geom.NewLineString(geom.NewSequenceXY(xys))
	if err != nil {
		panic(err)
	}
	return ls
}
