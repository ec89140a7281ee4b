// Package geo derives a stable pseudo-coordinate for a complaint from its
// free-text location. This is not geocoding: the point is a small
// deterministic offset around a fixed base coordinate, giving the admin
// hotspot map some spatial variety while keeping identical locations on the
// same spot. Real mapping is out of scope.
package geo

import (
	"crypto/sha1"
	"math/big"
)

// Base coordinate the offsets spread around (the service area's center).
const (
	BaseLatitude  = 12.9150
	BaseLongitude = 76.6025
)

// PseudoLocate hashes the location string into an offset of at most ±0.005
// degrees on each axis. The same input always yields the same coordinate.
func PseudoLocate(location string) (lat, lon float64) {
	sum := sha1.Sum([]byte(location))

	n := new(big.Int).SetBytes(sum[:])
	n.Mod(n, big.NewInt(1000))

	offset := float64(n.Int64())/100000.0 - 0.005
	return BaseLatitude + offset, BaseLongitude + offset
}
