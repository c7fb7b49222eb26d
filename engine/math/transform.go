package math

/**
 * @brief Represents the transform of an object in the world. Rotation is
 * kept as Euler angles in radians and applied X, then Y, then Z; there is
 * no protection against gimbal lock. Transforms can have a parent whose own
 * transform is then taken into account. Mutate it only through its methods
 * so the cached local matrix stays in sync.
 */
type Transform struct {
	position Vec3
	rotation Vec3
	scale    Vec3

	isDirty bool
	local   Mat4

	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform
}

// ModelMatrix composes RotX * RotY * RotZ * Scale * Translate. With row
// vectors the point is rotated first, then scaled, then translated.
func ModelMatrix(position, rotation, scale Vec3) Mat4 {
	return NewMat4EulerXYZ(rotation.X, rotation.Y, rotation.Z).
		Mul(NewMat4Scale(scale)).
		Mul(NewMat4Translation(position))
}

func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), NewVec3Zero(), NewVec3One())
}

func NewTransformFromPosition(position Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, NewVec3Zero(), NewVec3One())
}

func NewTransformFromPositionRotationScale(position, rotation, scale Vec3) *Transform {
	return &Transform{
		position: position,
		rotation: rotation,
		scale:    scale,
		isDirty:  true,
		local:    NewMat4Identity(),
	}
}

func (t *Transform) Position() Vec3 {
	return t.position
}

// Rotation returns the Euler angles in radians.
func (t *Transform) Rotation() Vec3 {
	return t.rotation
}

func (t *Transform) Scale() Vec3 {
	return t.scale
}

func (t *Transform) SetPosition(position Vec3) {
	t.position = position
	t.isDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.position = t.position.Add(translation)
	t.isDirty = true
}

func (t *Transform) SetRotation(rotation Vec3) {
	t.rotation = rotation
	t.isDirty = true
}

// Rotate adds delta, in radians, to the current Euler angles.
func (t *Transform) Rotate(delta Vec3) {
	t.rotation = t.rotation.Add(delta)
	t.isDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.scale = scale
	t.isDirty = true
}

// ScaleBy multiplies the current scale component-wise.
func (t *Transform) ScaleBy(scale Vec3) {
	t.scale = t.scale.Mul(scale)
	t.isDirty = true
}

func (t *Transform) SetPositionRotationScale(position, rotation, scale Vec3) {
	t.position = position
	t.rotation = rotation
	t.scale = scale
	t.isDirty = true
}

// GetLocal returns the model matrix of the transform alone, recomputing it
// only after a change.
func (t *Transform) GetLocal() Mat4 {
	if t.isDirty {
		t.local = ModelMatrix(t.position, t.rotation, t.scale)
		t.isDirty = false
	}
	return t.local
}

// GetWorld returns the local matrix followed by every parent's transform.
func (t *Transform) GetWorld() Mat4 {
	l := t.GetLocal()
	if t.Parent != nil {
		return l.Mul(t.Parent.GetWorld())
	}
	return l
}
