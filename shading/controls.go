package shading

const (
	// Object movement speed in units per second.
	MoveSpeed float32 = 2.5

	// Object spin speed in radians per second.
	SpinSpeed float32 = 1.0
)

// A snapshot of the keys the driver polls each frame.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool

	// The variant toggle key.
	Toggle bool
}

// Controls turn polled input into object placement and variant selection.
// They hold no reference to a window so drivers and tests can feed them
// input directly.
type Controls struct {
	Transform Transform
	Variant   Variant
	Light     PhongLight

	toggleHeld bool
}

// Create controls that start with the given variant.
func NewControls(variant Variant) *Controls {
	return &Controls{
		Variant: variant,
		Light:   DefaultLight(),
	}
}

// Apply input collected over dt seconds. The variant advances once per
// toggle key press no matter how many frames the key stays down.
func (c *Controls) Update(in Input, dt float32) {
	step := MoveSpeed * dt
	if in.Forward {
		c.Transform.Position[2] -= step
	}
	if in.Back {
		c.Transform.Position[2] += step
	}
	if in.Left {
		c.Transform.Position[0] -= step
	}
	if in.Right {
		c.Transform.Position[0] += step
	}

	c.Transform.Angle += SpinSpeed * dt

	if in.Toggle && !c.toggleHeld {
		c.Variant = c.Variant.Next()
	}
	c.toggleHeld = in.Toggle
}

// Get the uniforms for the current state.
func (c *Controls) Frame(aspect float32) Frame {
	return Frame{
		Variant:  c.Variant,
		Matrices: c.Transform.Matrices(aspect),
		Light:    c.Light,
	}
}
