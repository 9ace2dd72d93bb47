package shading

import (
	"fmt"
	"strings"

	"github.com/achilleasa/objview/mesh"
	"github.com/achilleasa/objview/mesh/reader"
)

// A shader variant that a rendering driver can use to draw a mesh.
type Variant uint8

// The supported variants in toggle order.
const (
	Wireframe Variant = iota
	VertexColor
	Textured
	Phong
	numVariants
)

var variantNames = [numVariants]string{
	Wireframe:   "wireframe",
	VertexColor: "color",
	Textured:    "textured",
	Phong:       "phong",
}

func (v Variant) String() string {
	if v >= numVariants {
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
	return variantNames[v]
}

// Lookup a variant by name.
func ParseVariant(name string) (Variant, error) {
	for v, vName := range variantNames {
		if strings.EqualFold(name, vName) {
			return Variant(v), nil
		}
	}
	return Wireframe, fmt.Errorf("shading: unknown variant %q; expected one of %s", name, strings.Join(variantNames[:], ", "))
}

// Get the variant that follows v in toggle order.
func (v Variant) Next() Variant {
	return (v + 1) % numVariants
}

// Get loader options that provide the attributes consumed by this variant.
func (v Variant) LoaderOptions() reader.Options {
	switch v {
	case VertexColor:
		return reader.Options{GenerateColors: true}
	case Textured:
		return reader.Options{ReadTexCoords: true, SynthesizeUV: true}
	case Phong:
		return reader.Options{ComputeNormals: true}
	}
	return reader.Options{}
}

// Verify that a mesh carries the attributes required by this variant.
func (v Variant) Check(m *mesh.Mesh) error {
	switch v {
	case VertexColor:
		if len(m.Colors) != len(m.Positions) {
			return fmt.Errorf("shading: %s variant requires one color per vertex; got %d colors for %d vertices", v, len(m.Colors), len(m.Positions))
		}
	case Textured:
		if len(m.TexCoords) == 0 {
			return fmt.Errorf("shading: %s variant requires tex coords", v)
		}
	case Phong:
		if m.NormalIndices == nil && len(m.Normals) != len(m.Positions) {
			return fmt.Errorf("shading: %s variant requires normals; got %d normals for %d vertices", v, len(m.Normals), len(m.Positions))
		}
	}
	return nil
}
