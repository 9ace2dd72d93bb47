package mesh

import (
	"errors"

	"github.com/achilleasa/objview/types"
)

var ErrEmptyMesh = errors.New("mesh: cannot calculate centroid of an empty position list")

// Calculate the arithmetic mean of a list of positions. An empty list yields
// ErrEmptyMesh.
func Centroid(positions []types.Vec3) (types.Vec3, error) {
	if len(positions) == 0 {
		return types.Vec3{}, ErrEmptyMesh
	}

	// Accumulate in float64 to limit drift on large meshes.
	var sum [3]float64
	for _, p := range positions {
		sum[0] += float64(p[0])
		sum[1] += float64(p[1])
		sum[2] += float64(p[2])
	}

	n := float64(len(positions))
	return types.XYZ(float32(sum[0]/n), float32(sum[1]/n), float32(sum[2]/n)), nil
}

// Subtract centroid from every position in place. Calling Center more than
// once shifts the positions again.
func Center(positions []types.Vec3, centroid types.Vec3) {
	for i := range positions {
		positions[i] = positions[i].Sub(centroid)
	}
}
