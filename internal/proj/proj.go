// Package proj converts geometries between the CRS used by the Polish
// datasets (EPSG:2180, ETRS89 / Poland CS92) and WGS84. The transform is the
// standard transverse Mercator expansion on the GRS80 ellipsoid; the datum
// shift between ETRS89 and WGS84 is below coordinate precision at map scale.
package proj

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

const (
	SRIDWGS84    = 4326
	SRIDPoland92 = 2180
)

// GRS80 ellipsoid and EPSG:2180 projection parameters.
const (
	a  = 6378137.0
	f  = 1.0 / 298.257222101
	k0 = 0.9993
	// central meridian 19°E
	lon0 = 19.0 * math.Pi / 180.0
	// false easting / northing
	fe = 500000.0
	fn = -5300000.0
)

var (
	e2  = f * (2 - f)
	e4  = e2 * e2
	e6  = e4 * e2
	ep2 = e2 / (1 - e2)
	e1  = (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
)

// ToWGS84 reprojects a geometry from the given source SRID into WGS84.
// WGS84 input passes through unchanged.
func ToWGS84(srid int, g orb.Geometry) (orb.Geometry, error) {
	switch srid {
	case SRIDWGS84:
		return g, nil
	case SRIDPoland92:
		return project.Geometry(orb.Clone(g), inverse), nil
	default:
		return nil, fmt.Errorf("unsupported source SRID %d", srid)
	}
}

// FromWGS84 projects a WGS84 geometry into the given target SRID.
func FromWGS84(srid int, g orb.Geometry) (orb.Geometry, error) {
	switch srid {
	case SRIDWGS84:
		return g, nil
	case SRIDPoland92:
		return project.Geometry(orb.Clone(g), forward), nil
	default:
		return nil, fmt.Errorf("unsupported target SRID %d", srid)
	}
}

// forward maps a WGS84 point (lon, lat in degrees) to EPSG:2180 (x, y meters).
func forward(p orb.Point) orb.Point {
	lon := p[0] * math.Pi / 180.0
	lat := p[1] * math.Pi / 180.0

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)

	n := a / math.Sqrt(1-e2*sinLat*sinLat)
	t := tanLat * tanLat
	c := ep2 * cosLat * cosLat
	aa := cosLat * (lon - lon0)

	m := meridianArc(lat)

	x := fe + k0*n*(aa+
		(1-t+c)*math.Pow(aa, 3)/6+
		(5-18*t+t*t+72*c-58*ep2)*math.Pow(aa, 5)/120)

	y := fn + k0*(m+n*tanLat*(aa*aa/2+
		(5-t+9*c+4*c*c)*math.Pow(aa, 4)/24+
		(61-58*t+t*t+600*c-330*ep2)*math.Pow(aa, 6)/720))

	return orb.Point{x, y}
}

// inverse maps an EPSG:2180 point (x, y meters) to WGS84 (lon, lat degrees).
func inverse(p orb.Point) orb.Point {
	x := p[0] - fe
	y := p[1] - fn

	m := y / k0
	mu := m / (a * (1 - e2/4 - 3*e4/64 - 5*e6/256))

	lat1 := mu +
		(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu) +
		(1097*math.Pow(e1, 4)/512)*math.Sin(8*mu)

	sinLat1 := math.Sin(lat1)
	cosLat1 := math.Cos(lat1)
	tanLat1 := math.Tan(lat1)

	c1 := ep2 * cosLat1 * cosLat1
	t1 := tanLat1 * tanLat1
	n1 := a / math.Sqrt(1-e2*sinLat1*sinLat1)
	r1 := a * (1 - e2) / math.Pow(1-e2*sinLat1*sinLat1, 1.5)
	d := x / (n1 * k0)

	lat := lat1 - (n1*tanLat1/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*math.Pow(d, 6)/720)

	lon := lon0 + (d-
		(1+2*t1+c1)*math.Pow(d, 3)/6+
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*math.Pow(d, 5)/120)/cosLat1

	return orb.Point{lon * 180.0 / math.Pi, lat * 180.0 / math.Pi}
}

func meridianArc(lat float64) float64 {
	return a * ((1-e2/4-3*e4/64-5*e6/256)*lat -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*lat) +
		(15*e4/256+45*e6/1024)*math.Sin(4*lat) -
		(35*e6/3072)*math.Sin(6*lat))
}
