package mesh

import "github.com/achilleasa/objview/types"

// Compute smooth per-vertex normals. Each triangle contributes its unit face
// normal (counter-clockwise winding) to its three vertices and the sums are
// normalized. Vertices that are only referenced by zero-area triangles, or
// not referenced at all, get a zero normal.
//
// Indices must satisfy the Mesh invariants.
func ComputeNormals(positions []types.Vec3, indices []uint32) []types.Vec3 {
	normals := make([]types.Vec3, len(positions))

	for tri := 0; tri+2 < len(indices); tri += 3 {
		i0, i1, i2 := indices[tri], indices[tri+1], indices[tri+2]
		e01 := positions[i1].Sub(positions[i0])
		e02 := positions[i2].Sub(positions[i0])
		faceNormal := e01.Cross(e02).Normalize()

		normals[i0] = normals[i0].Add(faceNormal)
		normals[i1] = normals[i1].Add(faceNormal)
		normals[i2] = normals[i2].Add(faceNormal)
	}

	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}
