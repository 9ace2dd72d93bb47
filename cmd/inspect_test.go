package cmd

import (
	"strings"
	"testing"

	"github.com/achilleasa/objview/mesh"
	"github.com/achilleasa/objview/types"
)

func TestMeshStats(t *testing.T) {
	m := &mesh.Mesh{
		Positions:   []types.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
		Indices:     []uint32{0, 1, 2},
		TexCoords:   make([]types.Vec2, 3),
		SyntheticUV: true,
	}

	out := meshStats(m)
	for _, exp := range []string{"Vertices", "Triangles", "synthesized", "Centroid", "BBox max"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, out)
		}
	}
}

func TestMeshStatsForEmptyMesh(t *testing.T) {
	out := meshStats(&mesh.Mesh{})
	if strings.Contains(out, "Centroid") {
		t.Fatalf("expected empty mesh stats to omit the centroid; got:\n%s", out)
	}
}
