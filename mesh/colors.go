package mesh

import (
	"math/rand"

	"github.com/achilleasa/objview/types"
)

// Generate count decorative colors with each component sampled uniformly from
// [0, 1). The colors carry no geometric meaning; they let flat-shaded
// variants tell neighboring faces apart.
func GenerateColors(count int, rng *rand.Rand) []types.Vec3 {
	colors := make([]types.Vec3, count)
	for i := range colors {
		colors[i] = types.XYZ(rng.Float32(), rng.Float32(), rng.Float32())
	}
	return colors
}
