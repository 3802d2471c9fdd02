// file: internals/helpers/geo/haversine.go
package geo

import "math"

// Radius bumi rata-rata (meter)
const EarthRadiusM = 6371000.0

// Haversine menghitung jarak great-circle (meter) antara dua koordinat
// dalam derajat desimal. Input dianggap valid (kontrak pemanggil).
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

// WithinRadius true jika jarak titik ke pusat <= radius (meter).
func WithinRadius(lat, lon, centerLat, centerLon, radiusM float64) (float64, bool) {
	d := Haversine(lat, lon, centerLat, centerLon)
	return d, d <= radiusM
}
