package geodesy

import "fmt"

// WGS84 is the World Geodetic System 1984 ellipsoid, in meters.
var WGS84 *Ellipsoid[float64]

func init() {
	const semiMajorAxis = 6378137.0
	const semiMinorAxis = 6356752.3142
	var err error
	WGS84, err = NewEllipsoid(semiMajorAxis, semiMinorAxis)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
}
