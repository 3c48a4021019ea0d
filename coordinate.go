package geodesy

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/geodesy/number"
)

// Geodetic is an ellipsoidal coordinate. Longitude and Latitude are in
// radians, Height is in the unit of the ellipsoid axes.
type Geodetic[T number.Real] struct {
	Longitude T
	Latitude  T
	Height    T
}

// GeodeticFromLatLng builds a Geodetic coordinate from an s2.LatLng and a
// height above the ellipsoid.
func GeodeticFromLatLng[T number.Real](ll s2.LatLng, height T) Geodetic[T] {
	return Geodetic[T]{
		Longitude: T(ll.Lng.Radians()),
		Latitude:  T(ll.Lat.Radians()),
		Height:    height,
	}
}

// LatLng returns the horizontal position as an s2.LatLng. The height is
// dropped and the longitude is left as is, so callers wanting a normalized
// position should call Normalized on the result.
func (g Geodetic[T]) LatLng() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(g.Latitude), Lng: s1.Angle(g.Longitude)}
}

// Cartesian is an Earth-centered coordinate in the unit of the ellipsoid
// axes.
type Cartesian[T number.Real] struct {
	X T
	Y T
	Z T
}

// CartesianFromVector converts an r3.Vector to a Cartesian coordinate.
func CartesianFromVector[T number.Real](v r3.Vector) Cartesian[T] {
	return Cartesian[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// Vector returns c as an r3.Vector.
func (c Cartesian[T]) Vector() r3.Vector {
	return r3.Vector{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}

// Norm returns the distance from the center of the ellipsoid.
func (c Cartesian[T]) Norm() T {
	return T(c.Vector().Norm())
}
