package shading

import "github.com/go-gl/mathgl/mgl32"

// Camera and projection settings.
const (
	FieldOfView  float32 = 45.0
	NearPlane    float32 = 0.1
	FarPlane     float32 = 100.0
	CameraOffset float32 = -5.0
)

// The placement of the mesh in world space.
type Transform struct {
	Position mgl32.Vec3

	// Rotation around the Y axis in radians.
	Angle float32
}

// The transformation matrices uploaded as shader uniforms.
type Matrices struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Build the model, view and projection matrices for a viewport with the
// given aspect ratio. The model matrix translates then rotates around Y.
func (t Transform) Matrices(aspect float32) Matrices {
	return Matrices{
		Model:      mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).Mul4(mgl32.HomogRotate3DY(t.Angle)),
		View:       mgl32.Translate3D(0, 0, CameraOffset),
		Projection: mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane),
	}
}

// The single light used by the Phong variant.
type PhongLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3

	Ambient   float32
	Specular  float32
	Shininess float32
}

// Get the default light: white, above and in front of the camera.
func DefaultLight() PhongLight {
	return PhongLight{
		Position:  mgl32.Vec3{2, 4, 4},
		Color:     mgl32.Vec3{1, 1, 1},
		Ambient:   0.1,
		Specular:  0.5,
		Shininess: 32,
	}
}

// Everything a driver needs to draw one frame.
type Frame struct {
	Variant  Variant
	Matrices Matrices
	Light    PhongLight
}
