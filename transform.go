package geodesy

import "github.com/tzneal/geodesy/number"

// ToCartesian converts geodetic longitude and latitude (radians) and
// ellipsoidal height to Earth-centered Cartesian coordinates.
func (e *Ellipsoid[T]) ToCartesian(lon, lat, h T) Cartesian[T] {
	sinLat, cosLat := number.SinCos(lat)
	sinLon, cosLon := number.SinCos(lon)
	one := number.One[T]()

	n := e.semiMajorAxis / number.Sqrt(one-e.e2*sinLat*sinLat)

	return Cartesian[T]{
		X: (n + h) * cosLat * cosLon,
		Y: (n + h) * cosLat * sinLon,
		Z: ((one-e.e2)*n + h) * sinLat,
	}
}

// ToGeodetic converts Earth-centered Cartesian coordinates to geodetic
// coordinates using Bowring's method with a single refinement of the
// parametric latitude. Longitude is atan(y/x), shifted by π when x < 0, so
// it lies in (-π/2, 3π/2) and is not normalized.
//
// Points with x == 0, on the polar axis or at the center are not handled
// specially. They yield NaN or infinite components, or finite but wrong
// ones: on the polar axis the latitude comes out as -π/2 and the height is
// about -N.
func (e *Ellipsoid[T]) ToGeodetic(x, y, z T) Geodetic[T] {
	a, b := e.semiMajorAxis, e.semiMinorAxis
	a2, b2 := e.SemiMajorAxisSquared(), e.SemiMinorAxisSquared()

	n := a2 - b2
	p := number.Sqrt(x*x + y*y)

	o := number.Atan(a / p / b * z)
	so, co := number.SinCos(o)

	o = number.Atan((z + n/b*so*so*so) / (p - n/a*co*co*co))
	so, co = number.SinCos(o)

	n = a2 / number.Sqrt(a2*co*co+b2*so*so)

	lon := number.Atan(y / x)
	if x < number.Zero[T]() {
		lon += number.Pi[T]()
	}

	return Geodetic[T]{
		Longitude: lon,
		Latitude:  o,
		Height:    p/co - n,
	}
}

// GeodeticToCartesian is ToCartesian for a Geodetic value.
func (e *Ellipsoid[T]) GeodeticToCartesian(g Geodetic[T]) Cartesian[T] {
	return e.ToCartesian(g.Longitude, g.Latitude, g.Height)
}

// CartesianToGeodetic is ToGeodetic for a Cartesian value.
func (e *Ellipsoid[T]) CartesianToGeodetic(c Cartesian[T]) Geodetic[T] {
	return e.ToGeodetic(c.X, c.Y, c.Z)
}

// GeocentricLatitude converts a geodetic latitude to the geocentric latitude,
// the angle between the equatorial plane and the line to the center.
func (e *Ellipsoid[T]) GeocentricLatitude(lat T) T {
	return number.Atan((number.One[T]() - e.e2) * number.Tan(lat))
}
