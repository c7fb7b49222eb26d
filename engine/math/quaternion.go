package math

func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

/**
 * @brief Creates a quaternion rotating angle radians around axis.
 * The axis is expected to be normalized.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	half := angle * 0.5
	s, c := ksin(half), kcos(half)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// NewQuatFromYawPitchRoll builds a rotation from yaw (Y), pitch (X) and
// roll (Z) angles in radians.
func NewQuatFromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	sr, cr := ksin(roll*0.5), kcos(roll*0.5)
	sp, cp := ksin(pitch*0.5), kcos(pitch*0.5)
	sy, cy := ksin(yaw*0.5), kcos(yaw*0.5)

	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// NewQuatFromRotationMatrix extracts the rotation of the upper 3x3 part of
// m, which must be orthonormal.
func NewQuatFromRotationMatrix(m Mat4) Quaternion {
	d := &m.Data
	m11, m12, m13 := d[0], d[1], d[2]
	m21, m22, m23 := d[4], d[5], d[6]
	m31, m32, m33 := d[8], d[9], d[10]

	var q Quaternion
	trace := m11 + m22 + m33
	switch {
	case trace > 0:
		s := ksqrt(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m23 - m32) * s
		q.Y = (m31 - m13) * s
		q.Z = (m12 - m21) * s
	case m11 >= m22 && m11 >= m33:
		s := ksqrt(1 + m11 - m22 - m33)
		inv := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m12 + m21) * inv
		q.Z = (m13 + m31) * inv
		q.W = (m23 - m32) * inv
	case m22 > m33:
		s := ksqrt(1 + m22 - m11 - m33)
		inv := 0.5 / s
		q.X = (m21 + m12) * inv
		q.Y = 0.5 * s
		q.Z = (m32 + m23) * inv
		q.W = (m31 - m13) * inv
	default:
		s := ksqrt(1 + m33 - m11 - m22)
		inv := 0.5 / s
		q.X = (m31 + m13) * inv
		q.Y = (m32 + m23) * inv
		q.Z = 0.5 * s
		q.W = (m12 - m21) * inv
	}
	return q
}

// Normal is the length of the quaternion.
func (q Quaternion) Normal() float32 {
	return Vec4(q).Length()
}

func (q Quaternion) Normalize() Quaternion {
	n := q.Normal()
	if n == 0 {
		return NewQuatIdentity()
	}
	return Quaternion{q.X / n, q.Y / n, q.Z / n, q.W / n}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Normalize()
}

/**
 * @brief Hamilton product of q and other. The result rotates by other
 * first, then by q.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.X*other.W + q.Y*other.Z - q.Z*other.Y + q.W*other.X,
		Y: -q.X*other.Z + q.Y*other.W + q.Z*other.X + q.W*other.Y,
		Z: q.X*other.Y - q.Y*other.X + q.Z*other.W + q.W*other.Z,
		W: -q.X*other.X - q.Y*other.Y - q.Z*other.Z + q.W*other.W,
	}
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return Vec4(q).Dot(Vec4(other))
}

// Compare treats q and -q as the same rotation.
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	if Vec4(q).Compare(Vec4(other), tolerance) {
		return true
	}
	return Vec4(q).Compare(Vec4(other).MulScalar(-1), tolerance)
}

/**
 * @brief Creates a rotation matrix from q, laid out for row vectors like
 * every other matrix of this package.
 */
func (q Quaternion) ToMat4() Mat4 {
	n := q.Normalize()
	xx, yy, zz := n.X*n.X, n.Y*n.Y, n.Z*n.Z
	xy, wz := n.X*n.Y, n.Z*n.W
	xz, wy := n.Z*n.X, n.Y*n.W
	yz, wx := n.Y*n.Z, n.X*n.W

	out := NewMat4Identity()
	out.Data[0] = 1 - 2*(yy+zz)
	out.Data[1] = 2 * (xy + wz)
	out.Data[2] = 2 * (xz - wy)

	out.Data[4] = 2 * (xy - wz)
	out.Data[5] = 1 - 2*(zz+xx)
	out.Data[6] = 2 * (yz + wx)

	out.Data[8] = 2 * (xz + wy)
	out.Data[9] = 2 * (yz - wx)
	out.Data[10] = 1 - 2*(yy+xx)
	return out
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	return v.TransformNormal(q.ToMat4())
}

/**
 * @brief Calculates a spherical linear interpolation of a given percentage
 * between two quaternions.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)
	// take the short path
	if dot < 0 {
		v1 = Quaternion(Vec4(v1).MulScalar(-1))
		dot = -dot
	}

	const dotThreshold float32 = 0.9995
	if dot > dotThreshold {
		out := Vec4(v0).Add(Vec4(v1).Sub(Vec4(v0)).MulScalar(percentage))
		return Quaternion(out).Normalize()
	}

	theta0 := kacos(dot)
	theta := theta0 * percentage
	sinTheta := ksin(theta)
	sinTheta0 := ksin(theta0)

	s0 := kcos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0
	return Quaternion(Vec4(v0).MulScalar(s0).Add(Vec4(v1).MulScalar(s1)))
}
