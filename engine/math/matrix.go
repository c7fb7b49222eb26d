package math

import (
	"fmt"

	"github.com/spaghettifunk/kestrel/engine/core"
)

const decomposeEpsilon float32 = 1e-4

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMat4Identity() Mat4 {
	return Mat4{Data: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// At returns the element at the zero based row and column.
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[row*4+col]
}

/**
 * @brief Returns the result of multiplying mt and other. With row vectors
 * the result applies mt first, then other.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	a, b := &mt.Data, &other.Data
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Data[row*4+col] = a[row*4+0]*b[0*4+col] +
				a[row*4+1]*b[1*4+col] +
				a[row*4+2]*b[2*4+col] +
				a[row*4+3]*b[3*4+col]
		}
	}
	return out
}

func (mt Mat4) Transposed() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Data[col*4+row] = mt.Data[row*4+col]
		}
	}
	return out
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	return out
}

func NewMat4UniformScale(scale float32) Mat4 {
	return NewMat4Scale(Vec3{scale, scale, scale})
}

func NewMat4RotationX(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c, s := kcos(angleRadians), ksin(angleRadians)
	out.Data[5] = c
	out.Data[6] = s
	out.Data[9] = -s
	out.Data[10] = c
	return out
}

func NewMat4RotationY(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c, s := kcos(angleRadians), ksin(angleRadians)
	out.Data[0] = c
	out.Data[2] = -s
	out.Data[8] = s
	out.Data[10] = c
	return out
}

func NewMat4RotationZ(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c, s := kcos(angleRadians), ksin(angleRadians)
	out.Data[0] = c
	out.Data[1] = s
	out.Data[4] = -s
	out.Data[5] = c
	return out
}

// NewMat4EulerXYZ rotates around X, then Y, then Z.
func NewMat4EulerXYZ(xRadians, yRadians, zRadians float32) Mat4 {
	return NewMat4RotationX(xRadians).
		Mul(NewMat4RotationY(yRadians)).
		Mul(NewMat4RotationZ(zRadians))
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * Fails with core.ErrOutOfRange unless 0 < fov < PI, 0 < near, 0 < far and
 * near < far.
 */
func NewMat4PerspectiveFieldOfView(fovRadians, aspectRatio, nearClip, farClip float32) (Mat4, error) {
	if fovRadians <= 0 || fovRadians >= Pi {
		return Mat4{}, fmt.Errorf("field of view %f: %w", fovRadians, core.ErrOutOfRange)
	}
	if nearClip <= 0 {
		return Mat4{}, fmt.Errorf("near plane distance %f: %w", nearClip, core.ErrOutOfRange)
	}
	if farClip <= 0 {
		return Mat4{}, fmt.Errorf("far plane distance %f: %w", farClip, core.ErrOutOfRange)
	}
	if nearClip >= farClip {
		return Mat4{}, fmt.Errorf("near plane %f not closer than far plane %f: %w", nearClip, farClip, core.ErrOutOfRange)
	}
	if aspectRatio <= 0 {
		return Mat4{}, fmt.Errorf("aspect ratio %f: %w", aspectRatio, core.ErrOutOfRange)
	}

	yScale := 1.0 / ktan(fovRadians*0.5)
	xScale := yScale / aspectRatio
	depth := farClip / (nearClip - farClip)

	var out Mat4
	out.Data[0] = xScale
	out.Data[5] = yScale
	out.Data[10] = depth
	out.Data[11] = -1
	out.Data[14] = nearClip * depth
	return out, nil
}

/**
 * @brief Creates and returns an orthographic projection matrix for the box
 * bounded by the given planes. Typically used to render flat or 2D scenes.
 */
func NewMat4OrthographicOffCenter(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	out := NewMat4Identity()
	out.Data[0] = 2.0 / (right - left)
	out.Data[5] = 2.0 / (top - bottom)
	out.Data[10] = 1.0 / (nearClip - farClip)
	out.Data[12] = (left + right) / (left - right)
	out.Data[13] = (top + bottom) / (bottom - top)
	out.Data[14] = nearClip / (nearClip - farClip)
	return out
}

// NewMat4Orthographic centers a width x height box on the origin.
func NewMat4Orthographic(width, height, nearClip, farClip float32) Mat4 {
	return NewMat4OrthographicOffCenter(-width/2, width/2, -height/2, height/2, nearClip, farClip)
}

/**
 * @brief Creates and returns a view matrix looking from position at target.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	zAxis := position.Sub(target).Normalized()
	xAxis := up.Cross(zAxis).Normalized()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{Data: [16]float32{
		xAxis.X, yAxis.X, zAxis.X, 0,
		xAxis.Y, yAxis.Y, zAxis.Y, 0,
		xAxis.Z, yAxis.Z, zAxis.Z, 0,
		-xAxis.Dot(position), -yAxis.Dot(position), -zAxis.Dot(position), 1,
	}}
}

func (mt Mat4) Determinant() float32 {
	d := &mt.Data
	a, b, c, dd := d[0], d[1], d[2], d[3]
	e, f, g, h := d[4], d[5], d[6], d[7]
	i, j, k, l := d[8], d[9], d[10], d[11]
	m, n, o, p := d[12], d[13], d[14], d[15]

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*m
	ioKm := i*o - k*m
	inJm := i*n - j*m

	return a*(f*kpLo-g*jpLn+h*joKn) -
		b*(e*kpLo-g*ipLm+h*ioKm) +
		c*(e*jpLn-f*ipLm+h*inJm) -
		dd*(e*joKn-f*ioKm+g*inJm)
}

// Inverse returns the inverse of mt and false when mt is singular.
func (mt Mat4) Inverse() (Mat4, bool) {
	d := &mt.Data
	a, b, c, dd := d[0], d[1], d[2], d[3]
	e, f, g, h := d[4], d[5], d[6], d[7]
	i, j, k, l := d[8], d[9], d[10], d[11]
	m, n, o, p := d[12], d[13], d[14], d[15]

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*m
	ioKm := i*o - k*m
	inJm := i*n - j*m

	a11 := f*kpLo - g*jpLn + h*joKn
	a12 := -(e*kpLo - g*ipLm + h*ioKm)
	a13 := e*jpLn - f*ipLm + h*inJm
	a14 := -(e*joKn - f*ioKm + g*inJm)

	det := a*a11 + b*a12 + c*a13 + dd*a14
	if det == 0 {
		return NewMat4Identity(), false
	}
	inv := 1.0 / det

	gpHo := g*p - h*o
	fpHn := f*p - h*n
	foGn := f*o - g*n
	epHm := e*p - h*m
	eoGm := e*o - g*m
	enFm := e*n - f*m

	glHk := g*l - h*k
	flHj := f*l - h*j
	fkGj := f*k - g*j
	elHi := e*l - h*i
	ekGi := e*k - g*i
	ejFi := e*j - f*i

	var out Mat4
	o2 := &out.Data
	o2[0] = a11 * inv
	o2[4] = a12 * inv
	o2[8] = a13 * inv
	o2[12] = a14 * inv

	o2[1] = -(b*kpLo - c*jpLn + dd*joKn) * inv
	o2[5] = (a*kpLo - c*ipLm + dd*ioKm) * inv
	o2[9] = -(a*jpLn - b*ipLm + dd*inJm) * inv
	o2[13] = (a*joKn - b*ioKm + c*inJm) * inv

	o2[2] = (b*gpHo - c*fpHn + dd*foGn) * inv
	o2[6] = -(a*gpHo - c*epHm + dd*eoGm) * inv
	o2[10] = (a*fpHn - b*epHm + dd*enFm) * inv
	o2[14] = -(a*foGn - b*eoGm + c*enFm) * inv

	o2[3] = -(b*glHk - c*flHj + dd*fkGj) * inv
	o2[7] = (a*glHk - c*elHi + dd*ekGi) * inv
	o2[11] = -(a*flHj - b*elHi + dd*ejFi) * inv
	o2[15] = (a*fkGj - b*ekGi + c*ejFi) * inv
	return out, true
}

// Decompose splits a scale * rotation * translation matrix into its parts.
// ok is false when mt is a projection, is degenerate or carries shear.
func (mt Mat4) Decompose() (scale Vec3, rotation Quaternion, translation Vec3, ok bool) {
	d := &mt.Data
	rotation = NewQuatIdentity()
	translation = Vec3{d[12], d[13], d[14]}

	if kabs(d[3]) > decomposeEpsilon || kabs(d[7]) > decomposeEpsilon ||
		kabs(d[11]) > decomposeEpsilon || kabs(d[15]-1) > decomposeEpsilon {
		return scale, rotation, translation, false
	}

	rows := [3]Vec3{
		{d[0], d[1], d[2]},
		{d[4], d[5], d[6]},
		{d[8], d[9], d[10]},
	}
	scale = Vec3{rows[0].Length(), rows[1].Length(), rows[2].Length()}
	if scale.X < decomposeEpsilon || scale.Y < decomposeEpsilon || scale.Z < decomposeEpsilon {
		return scale, rotation, translation, false
	}
	// a reflection shows up as a negative determinant
	if rows[0].Cross(rows[1]).Dot(rows[2]) < 0 {
		scale = scale.Negate()
	}
	rows[0] = rows[0].MulScalar(1 / scale.X)
	rows[1] = rows[1].MulScalar(1 / scale.Y)
	rows[2] = rows[2].MulScalar(1 / scale.Z)

	const orthoTolerance = 1e-3
	if kabs(rows[0].Dot(rows[1])) > orthoTolerance ||
		kabs(rows[0].Dot(rows[2])) > orthoTolerance ||
		kabs(rows[1].Dot(rows[2])) > orthoTolerance {
		return scale, rotation, translation, false
	}

	r := NewMat4Identity()
	for i, row := range rows {
		r.Data[i*4+0] = row.X
		r.Data[i*4+1] = row.Y
		r.Data[i*4+2] = row.Z
	}
	return scale, NewQuatFromRotationMatrix(r), translation, true
}

/**
 * @brief Returns a forward vector relative to the provided view matrix.
 */
func (mt Mat4) Forward() Vec3 {
	return Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}.Normalized()
}

func (mt Mat4) Backward() Vec3 {
	return Vec3{mt.Data[2], mt.Data[6], mt.Data[10]}.Normalized()
}

func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}.Normalized()
}

func (mt Mat4) Down() Vec3 {
	return Vec3{-mt.Data[1], -mt.Data[5], -mt.Data[9]}.Normalized()
}

func (mt Mat4) Left() Vec3 {
	return Vec3{-mt.Data[0], -mt.Data[4], -mt.Data[8]}.Normalized()
}

func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}.Normalized()
}
