package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/**
 * @brief A 4x4 matrix stored row-major: element (row, col) lives at
 * Data[row*4+col]. Vectors are treated as rows (v' = v * M), so the
 * translation sits in the last row.
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 2d object.
 */
type Extents2D struct {
	/** @brief The minimum extents of the object. */
	Min Vec2
	/** @brief The maximum extents of the object. */
	Max Vec2
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

// Size is the length of the box on each axis.
func (e Extents3D) Size() Vec3 {
	return e.Max.Sub(e.Min)
}

func (e Extents3D) Center() Vec3 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

// Intersects reports whether the two boxes overlap. Touching faces count.
func (e Extents3D) Intersects(other Extents3D) bool {
	return e.Min.X <= other.Max.X && e.Max.X >= other.Min.X &&
		e.Min.Y <= other.Max.Y && e.Max.Y >= other.Min.Y &&
		e.Min.Z <= other.Max.Z && e.Max.Z >= other.Min.Z
}

func (e Extents3D) Contains(p Vec3) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X &&
		p.Y >= e.Min.Y && p.Y <= e.Max.Y &&
		p.Z >= e.Min.Z && p.Z <= e.Max.Z
}
