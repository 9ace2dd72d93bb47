package mesh

import (
	"math"

	"github.com/achilleasa/objview/types"
)

// Split a polygon into a triangle fan around its first vertex. For a face
// with n vertices this emits n-2 triangles (v0, vi, vi+1). Faces with fewer
// than 3 vertices produce no triangles.
//
// The result is only correct for convex, planar polygons. Concave or
// non-planar faces are split anyway and will render incorrectly.
func FanTriangulate(face []uint32) [][3]uint32 {
	if len(face) < 3 {
		return nil
	}

	tris := make([][3]uint32, 0, len(face)-2)
	for i := 1; i < len(face)-1; i++ {
		tris = append(tris, [3]uint32{face[0], face[i], face[i+1]})
	}
	return tris
}

// Generate a local uv frame for a triangle from its edge lengths. Corners
// receive (0,0), (|p1-p0|*s, 0) and (0, |p2-p1|*s) where s is the inverse of
// the longest edge, so no coordinate exceeds 1.
//
// Each triangle gets its own frame; adjacent triangles do not share
// coordinates and textures show seams along shared edges. A triangle whose
// edges all have zero length maps every corner to (0,0).
func SynthesizeUV(p0, p1, p2 types.Vec3) [3]types.Vec2 {
	e01 := p1.Sub(p0).Len()
	e12 := p2.Sub(p1).Len()
	e02 := p2.Sub(p0).Len()

	maxEdge := float32(math.Max(float64(e01), math.Max(float64(e12), float64(e02))))
	if maxEdge == 0 {
		return [3]types.Vec2{}
	}

	uvScale := 1.0 / maxEdge
	return [3]types.Vec2{
		{0, 0},
		{e01 * uvScale, 0},
		{0, e12 * uvScale},
	}
}
