package mesh

import (
	"fmt"

	"github.com/achilleasa/objview/types"
)

// A Mesh holds renderer-ready geometry: flat attribute arrays plus a triangle
// index list referencing Positions.
type Mesh struct {
	Positions []types.Vec3

	// Normals as read from the file (unrelated in count to Positions) or,
	// when computed, one per position.
	Normals []types.Vec3

	// Texture coordinates as read from the file or, when SyntheticUV is set,
	// one per entry in Indices.
	TexCoords []types.Vec2

	// Decorative per-position colors. Either empty or len(Positions).
	Colors []types.Vec3

	// Triangle list; 3 entries per triangle.
	Indices []uint32

	// Optional per-corner references into TexCoords/Normals, parallel to
	// Indices. A value of -1 marks a face token that omitted the field.
	TexCoordIndices []int32
	NormalIndices   []int32

	// True if TexCoords were generated per triangle corner.
	SyntheticUV bool
}

// Get the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Returns true if the mesh contains no positions.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Check the mesh invariants.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: index count %d is not a multiple of 3", len(m.Indices))
	}

	posCount := uint32(len(m.Positions))
	for i, index := range m.Indices {
		if index >= posCount {
			return fmt.Errorf("mesh: index %d at offset %d out of range; mesh has %d positions", index, i, posCount)
		}
	}

	if len(m.Colors) != 0 && len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh: expected %d colors; got %d", len(m.Positions), len(m.Colors))
	}

	if m.SyntheticUV && len(m.TexCoords) != len(m.Indices) {
		return fmt.Errorf("mesh: expected %d synthetic uv coords; got %d", len(m.Indices), len(m.TexCoords))
	}

	if err := checkAttributeRefs("tex coord", m.TexCoordIndices, len(m.Indices), len(m.TexCoords)); err != nil {
		return err
	}
	return checkAttributeRefs("normal", m.NormalIndices, len(m.Indices), len(m.Normals))
}

func checkAttributeRefs(kind string, refs []int32, indexCount, attrCount int) error {
	if refs == nil {
		return nil
	}

	if len(refs) != indexCount {
		return fmt.Errorf("mesh: expected %d %s references; got %d", indexCount, kind, len(refs))
	}

	for i, ref := range refs {
		if ref < -1 || int(ref) >= attrCount {
			return fmt.Errorf("mesh: %s reference %d at offset %d out of range", kind, ref, i)
		}
	}
	return nil
}
