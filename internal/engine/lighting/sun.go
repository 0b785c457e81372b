package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/hmdview/pkg/math"
)

// SunDirection converts sun angles in degrees to a unit direction pointing
// towards the sun. Longitude rotates around the Y axis, latitude is the
// elevation above the horizon.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lon := longitude * math32.Pi / 180
	lat := latitude * math32.Pi / 180

	sinLon, cosLon := math32.Sincos(lon)
	sinLat, cosLat := math32.Sincos(lat)

	return math.Vec3{
		X: cosLat * sinLon,
		Y: sinLat,
		Z: cosLat * cosLon,
	}
}
